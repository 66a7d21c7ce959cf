package api

import (
	"log"
	"net/http"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
)

func ListMemorialsHandler(svc port.MemorialLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memorials, err := svc.ListMemorials(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list memorials", err)
			return
		}
		if memorials == nil {
			memorials = []model.Memorial{}
		}

		RespondJSON(w, http.StatusOK, memorials)
		log.Printf("✅  Successfully returned %d memorials", len(memorials))
	}
}
