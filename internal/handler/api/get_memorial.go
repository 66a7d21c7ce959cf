package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/fhuszti/memorials-ms-go/internal/api_context"
	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/memorial"
)

func GetMemorialHandler(renderer port.HTTPRenderer, svc port.MemorialGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug, ok := api_context.SlugFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "slug is required", nil)
			return
		}

		raw, etag, err := renderer.RenderGetMemorial(r.Context(), svc, slug)
		if err != nil {
			if errors.Is(err, memorial.ErrMemorialNotFound) {
				WriteError(w, http.StatusNotFound, "Memorial not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get memorial details", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached memorial %q", slug)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned details for memorial %q", slug)
	}
}
