package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fhuszti/memorials-ms-go/internal/api_context"
	"github.com/fhuszti/memorials-ms-go/internal/mock"
	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/memorial"
	"github.com/fhuszti/memorials-ms-go/internal/uuid"
)

func TestListCommentsHandler(t *testing.T) {
	out := &port.ListCommentsOutput{
		Comments:   []model.Comment{{ID: uuid.NewUUID(), Text: "hello"}},
		Total:      41,
		Page:       2,
		Limit:      20,
		TotalPages: 3,
	}

	t.Run("parses page and limit", func(t *testing.T) {
		svc := &mock.CommentLister{Out: out}
		h := ListCommentsHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/memorials/jane_doe/comments?page=2&limit=20", nil)
		req = req.WithContext(api_context.WithSlug(req.Context(), "jane_doe"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want 200", rec.Code)
		}
		if svc.In.Slug != "jane_doe" || svc.In.Page != 2 || svc.In.Limit != 20 {
			t.Errorf("unexpected input: %+v", svc.In)
		}
		if !strings.Contains(rec.Body.String(), `"total_pages":3`) {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("non numeric paging falls back to zero", func(t *testing.T) {
		svc := &mock.CommentLister{Out: out}
		h := ListCommentsHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/memorials/jane_doe/comments?page=abc", nil)
		req = req.WithContext(api_context.WithSlug(req.Context(), "jane_doe"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want 200", rec.Code)
		}
		if svc.In.Page != 0 || svc.In.Limit != 0 {
			t.Errorf("unexpected paging input: %+v", svc.In)
		}
	})

	t.Run("unknown memorial", func(t *testing.T) {
		svc := &mock.CommentLister{Err: memorial.ErrMemorialNotFound}
		h := ListCommentsHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/memorials/ghost/comments", nil)
		req = req.WithContext(api_context.WithSlug(req.Context(), "ghost"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d; want 404", rec.Code)
		}
	})
}

func TestCreateCommentHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "happy path",
			body:       `{"name":"A friend","text":"She will be missed."}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "anonymous comment",
			body:       `{"text":"Rest in peace."}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing text",
			body:       `{"name":"A friend"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"text":"required"`,
		},
		{
			name:       "unknown memorial",
			body:       `{"text":"hello"}`,
			svcErr:     memorial.ErrMemorialNotFound,
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mock.CommentCreator{Out: &model.Comment{ID: uuid.NewUUID(), Text: "x"}, Err: tt.svcErr}
			h := CreateCommentHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/memorials/jane_doe/comments", strings.NewReader(tt.body))
			req = req.WithContext(api_context.WithSlug(req.Context(), "jane_doe"))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d; want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %s; want it to contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
