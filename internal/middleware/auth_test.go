package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hkarls/teamdeck/internal/auth"
	"github.com/hkarls/teamdeck/internal/models"
)

func TestUserContext(t *testing.T) {
	ctx := WithUser(context.Background(), "user-1", "alice@example.com")

	if got := GetUserID(ctx); got != "user-1" {
		t.Errorf("GetUserID = %q, want %q", got, "user-1")
	}
	if got := GetEmail(ctx); got != "alice@example.com" {
		t.Errorf("GetEmail = %q, want %q", got, "alice@example.com")
	}

	if got := GetUserID(context.Background()); got != "" {
		t.Errorf("GetUserID on empty context = %q, want empty", got)
	}
	if got := GetEmail(context.Background()); got != "" {
		t.Errorf("GetEmail on empty context = %q, want empty", got)
	}
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret-key-for-tests", time.Hour)
	token, err := jwtManager.Generate(&models.User{ID: "user-1", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	var gotUserID, gotEmail string
	handler := RequireAuth(jwtManager, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		gotEmail = GetEmail(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "valid token", authHeader: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", authHeader: "Token " + token, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID, gotEmail = "", ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if gotUserID != "user-1" {
					t.Errorf("user ID in context = %q, want %q", gotUserID, "user-1")
				}
				if gotEmail != "alice@example.com" {
					t.Errorf("email in context = %q, want %q", gotEmail, "alice@example.com")
				}
			}
		})
	}
}
