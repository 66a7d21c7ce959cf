package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/fhuszti/memorials-ms-go/internal/api_context"
	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/memorial"
)

// DeleteMemorialHandler removes a memorial and queues the purge of its
// stored media.
func DeleteMemorialHandler(svc port.MemorialDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug, ok := api_context.SlugFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "slug is required", nil)
			return
		}

		if err := svc.DeleteMemorial(r.Context(), slug); err != nil {
			if errors.Is(err, memorial.ErrMemorialNotFound) {
				WriteError(w, http.StatusNotFound, "Memorial not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to delete memorial", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully deleted memorial %q", slug)
	}
}
