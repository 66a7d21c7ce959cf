package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fhuszti/memorials-ms-go/internal/mock"
	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/auth"
)

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcOut     port.LoginOutput
		svcErr     error
		wantStatus int
		wantBody   string
		wantCalled bool
	}{
		{
			name:       "happy path",
			body:       `{"email":"admin@example.com","password":"s3cret"}`,
			svcOut:     port.LoginOutput{Token: "tok", Email: "admin@example.com", Name: "Administrator"},
			wantStatus: http.StatusOK,
			wantBody:   `"token":"tok"`,
			wantCalled: true,
		},
		{
			name:       "bad credentials",
			body:       `{"email":"admin@example.com","password":"wrong"}`,
			svcErr:     auth.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid credentials",
			wantCalled: true,
		},
		{
			name:       "invalid email format",
			body:       `{"email":"not-an-email","password":"s3cret"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"email":"email"`,
		},
		{
			name:       "missing password",
			body:       `{"email":"admin@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"password":"required"`,
		},
		{
			name:       "invalid JSON",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid request",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mock.Authenticator{Out: tt.svcOut, Err: tt.svcErr}
			h := LoginHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d; want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %s; want it to contain %q", rec.Body.String(), tt.wantBody)
			}
			if svc.Called != tt.wantCalled {
				t.Errorf("service called = %v; want %v", svc.Called, tt.wantCalled)
			}
		})
	}
}
