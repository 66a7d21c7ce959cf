package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fhuszti/memorials-ms-go/internal/api_context"
	"github.com/fhuszti/memorials-ms-go/internal/logger"
	"github.com/fhuszti/memorials-ms-go/internal/port"
)

type UpdateMemorialRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=255"`
	Biography     *string  `json:"biography" validate:"omitempty,min=10,max=10000"`
	Slug          *string  `json:"slug" validate:"omitempty,slug,max=255"`
	MainPhoto     *string  `json:"main_photo"`
	ThemeColour   *string  `json:"theme_colour" validate:"omitempty,hexcolor"`
	GalleryPhotos []string `json:"gallery_photos"`
	GalleryVideos []string `json:"gallery_videos"`
	BirthYear     *int     `json:"birth_year" validate:"omitempty,min=1000,max=3000"`
	DeathYear     *int     `json:"death_year" validate:"omitempty,min=1000,max=3000"`
	DeathCause    *string  `json:"death_cause" validate:"omitempty,max=500"`
}

func UpdateMemorialHandler(svc port.MemorialUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug, ok := api_context.SlugFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "slug is required", nil)
			return
		}

		var req UpdateMemorialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if !validateRequest(w, r, req) {
			return
		}

		in := port.UpdateMemorialInput(req)
		out, err := svc.UpdateMemorial(r.Context(), slug, in)
		if err != nil {
			writeMemorialError(w, err, "Could not update memorial")
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully updated memorial %q", out.Slug)
	}
}
