package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fhuszti/memorials-ms-go/internal/logger"
	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/media"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/memorial"
	"github.com/fhuszti/memorials-ms-go/internal/validation"
)

type CreateMemorialRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Biography     string   `json:"biography" validate:"required,min=10,max=10000"`
	Slug          string   `json:"slug" validate:"required,slug,max=255"`
	MainPhoto     string   `json:"main_photo" validate:"required"`
	ThemeColour   string   `json:"theme_colour" validate:"omitempty,hexcolor"`
	GalleryPhotos []string `json:"gallery_photos"`
	GalleryVideos []string `json:"gallery_videos"`
	BirthYear     *int     `json:"birth_year" validate:"omitempty,min=1000,max=3000"`
	DeathYear     *int     `json:"death_year" validate:"omitempty,min=1000,max=3000"`
	DeathCause    *string  `json:"death_cause" validate:"omitempty,max=500"`
}

func CreateMemorialHandler(svc port.MemorialCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateMemorialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if !validateRequest(w, r, req) {
			return
		}

		in := port.CreateMemorialInput(req)
		out, err := svc.CreateMemorial(r.Context(), in)
		if err != nil {
			writeMemorialError(w, err, "Could not create memorial")
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully created memorial %q", out.Slug)
	}
}

// validateRequest runs struct validation and writes the error payload on
// failure. It reports whether the request passed.
func validateRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	errs := validation.ValidateStruct(req)
	if errs == nil {
		return true
	}

	errsJSON, err := validation.ErrorsToJson(errs)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
		return false
	}

	RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
	logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
	return false
}

func writeMemorialError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, memorial.ErrMemorialNotFound):
		WriteError(w, http.StatusNotFound, "Memorial not found", nil)
	case errors.Is(err, memorial.ErrSlugTaken):
		WriteError(w, http.StatusConflict, "Slug is already taken", nil)
	case errors.Is(err, media.ErrInvalidMediaReference),
		errors.Is(err, media.ErrUnsupportedMediaType),
		errors.Is(err, media.ErrPayloadTooLarge):
		WriteError(w, http.StatusBadRequest, err.Error(), nil)
	default:
		WriteError(w, http.StatusInternalServerError, fallback, err)
	}
}
