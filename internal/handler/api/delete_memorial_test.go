package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/memorials-ms-go/internal/api_context"
	"github.com/fhuszti/memorials-ms-go/internal/mock"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/memorial"
)

func TestDeleteMemorialHandler(t *testing.T) {
	tests := []struct {
		name       string
		withSlug   bool
		svcErr     error
		wantStatus int
	}{
		{"happy path", true, nil, http.StatusNoContent},
		{"unknown memorial", true, memorial.ErrMemorialNotFound, http.StatusNotFound},
		{"internal error", true, errors.New("db down"), http.StatusInternalServerError},
		{"missing slug", false, nil, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mock.MemorialDeleter{Err: tt.svcErr}
			h := DeleteMemorialHandler(svc)

			req := httptest.NewRequest(http.MethodDelete, "/memorials/jane_doe", nil)
			if tt.withSlug {
				req = req.WithContext(api_context.WithSlug(req.Context(), "jane_doe"))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tt.wantStatus)
			}
			if tt.withSlug && svc.Slug != "jane_doe" {
				t.Errorf("service called with slug %q", svc.Slug)
			}
			if !tt.withSlug && svc.Called {
				t.Error("service should not be called without a slug")
			}
		})
	}
}
