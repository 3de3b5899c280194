package handlers

import (
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"interviewai/server/internal/models"
	"interviewai/server/internal/repositories"
)

const testSecret = "test-secret"

func TestRegisterCreatesAccountAndLedger(t *testing.T) {
	var created *models.User
	users := &mockUserRepo{
		getUserByUsernameFn: func(string) (*models.User, error) { return nil, repositories.ErrUserNotFound },
		getUserByEmailFn:    func(string) (*models.User, error) { return nil, repositories.ErrUserNotFound },
		createUserFn: func(user *models.User) error {
			user.ID = 3
			created = user
			return nil
		},
	}
	ledgerInitialized := false
	progress := &mockProgressRepo{
		ensureExistsFn: func(userID uint) error {
			ledgerInitialized = userID == 3
			return nil
		},
	}
	handler := NewAuthHandler(users, progress, testSecret, testLogger())

	rec := postJSON[*models.RegisterRequest](t, handler.RegisterHandler, 0, models.RegisterRequest{
		Username:          "alice",
		Email:             "alice@example.com",
		Password:          "s3cret-pass",
		PreferredPosition: "Backend Engineer",
		ExperienceLevel:   "mid",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[models.AuthResponse](t, rec)
	if resp.Token == "" {
		t.Error("expected a signed token")
	}
	if resp.User.ID != 3 || resp.User.Username != "alice" {
		t.Errorf("unexpected profile: %+v", resp.User)
	}
	if created == nil || created.PasswordHash == "s3cret-pass" {
		t.Fatal("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret-pass")) != nil {
		t.Error("stored hash does not match the password")
	}
	if !ledgerInitialized {
		t.Error("progress ledger row must be created at registration")
	}
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	users := &mockUserRepo{
		getUserByUsernameFn: func(string) (*models.User, error) {
			return &models.User{Model: gorm.Model{ID: 1}, Username: "alice"}, nil
		},
	}
	handler := NewAuthHandler(users, &mockProgressRepo{}, testSecret, testLogger())

	rec := postJSON[*models.RegisterRequest](t, handler.RegisterHandler, 0, models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	resp := decodeBody[models.ErrorResponse](t, rec)
	if resp.Code != "username_taken" {
		t.Errorf("expected username_taken, got %q", resp.Code)
	}
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	handler := NewAuthHandler(&mockUserRepo{}, &mockProgressRepo{}, testSecret, testLogger())

	rec := postJSON[*models.RegisterRequest](t, handler.RegisterHandler, 0, models.RegisterRequest{
		Username: "alice",
		Email:    "not-an-email",
		Password: "s3cret-pass",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func loginUsers(t *testing.T, password string) *mockUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &mockUserRepo{
		getUserByEmailFn: func(email string) (*models.User, error) {
			if email != "alice@example.com" {
				return nil, repositories.ErrUserNotFound
			}
			return &models.User{
				Model:        gorm.Model{ID: 3},
				Username:     "alice",
				Email:        email,
				PasswordHash: string(hash),
			}, nil
		},
	}
}

func TestLoginWithValidCredentials(t *testing.T) {
	handler := NewAuthHandler(loginUsers(t, "s3cret-pass"), &mockProgressRepo{}, testSecret, testLogger())

	rec := postJSON[*models.LoginRequest](t, handler.LoginHandler, 0, models.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[models.AuthResponse](t, rec)
	if resp.Token == "" || resp.User.ID != 3 {
		t.Errorf("unexpected auth response: %+v", resp)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	handler := NewAuthHandler(loginUsers(t, "s3cret-pass"), &mockProgressRepo{}, testSecret, testLogger())

	rec := postJSON[*models.LoginRequest](t, handler.LoginHandler, 0, models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-pass",
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginUnknownEmailLooksLikeBadCredentials(t *testing.T) {
	handler := NewAuthHandler(loginUsers(t, "s3cret-pass"), &mockProgressRepo{}, testSecret, testLogger())

	rec := postJSON[*models.LoginRequest](t, handler.LoginHandler, 0, models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	resp := decodeBody[models.ErrorResponse](t, rec)
	if resp.Code != "invalid_credentials" {
		t.Errorf("expected invalid_credentials, got %q", resp.Code)
	}
}
