package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"interviewai/server/internal/utils"
)

func protectedEcho(t *testing.T, wantUserID uint) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := UserID(r); got != wantUserID {
			t.Errorf("handler saw user id %d, want %d", got, wantUserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticatePassesValidToken(t *testing.T) {
	token, err := utils.SignToken(42, "alice", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	Authenticate("secret")(protectedEcho(t, 42)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })
	Authenticate("secret")(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Error("handler must not run without a token")
	}
}

func TestAuthenticateRejectsWrongSecret(t *testing.T) {
	token, err := utils.SignToken(42, "alice", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })
	Authenticate("other-secret")(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Error("handler must not run with a forged token")
	}
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	Authenticate("secret")(http.NotFoundHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
