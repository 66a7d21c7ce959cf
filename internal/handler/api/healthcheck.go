package api

import (
	"database/sql"
	"net/http"
)

// HealthcheckHandler reports service liveness. The database ping doubles
// as a readiness signal.
func HealthcheckHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			WriteError(w, http.StatusServiceUnavailable, "Database unreachable", err)
			return
		}

		RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
