package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fhuszti/memorials-ms-go/internal/api_context"
	"github.com/fhuszti/memorials-ms-go/internal/logger"
	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/memorial"
)

type CreateCommentRequest struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
	Text string  `json:"text" validate:"required,max=2000"`
}

func ListCommentsHandler(svc port.CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug, ok := api_context.SlugFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "slug is required", nil)
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		out, err := svc.ListComments(r.Context(), port.ListCommentsInput{Slug: slug, Page: page, Limit: limit})
		if err != nil {
			if errors.Is(err, memorial.ErrMemorialNotFound) {
				WriteError(w, http.StatusNotFound, "Memorial not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not list comments", err)
			return
		}
		if out.Comments == nil {
			out.Comments = []model.Comment{}
		}

		RespondJSON(w, http.StatusOK, out)
	}
}

func CreateCommentHandler(svc port.CommentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug, ok := api_context.SlugFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "slug is required", nil)
			return
		}

		var req CreateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if !validateRequest(w, r, req) {
			return
		}

		out, err := svc.CreateComment(r.Context(), port.CreateCommentInput{Slug: slug, Name: req.Name, Text: req.Text})
		if err != nil {
			if errors.Is(err, memorial.ErrMemorialNotFound) {
				WriteError(w, http.StatusNotFound, "Memorial not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not create comment", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  New comment posted on memorial %q", slug)
	}
}
