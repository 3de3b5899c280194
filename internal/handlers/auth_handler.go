package handlers

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"interviewai/server/internal/middleware"
	"interviewai/server/internal/models"
	"interviewai/server/internal/utils"
)

// AuthHandler manages registration and login.
type AuthHandler struct {
	users     UserRepository
	progress  ProgressRepository
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthHandler(users UserRepository, progress ProgressRepository, jwtSecret string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, progress: progress, jwtSecret: jwtSecret, logger: logger}
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.RegisterRequest](r)

	if existing, _ := h.users.GetUserByUsername(req.Username); existing != nil {
		utils.JSONError(w, http.StatusConflict, "username_taken", "Username is already in use")
		return
	}
	if existing, _ := h.users.GetUserByEmail(req.Email); existing != nil {
		utils.JSONError(w, http.StatusConflict, "email_taken", "Email is already in use")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to create account")
		return
	}

	user := &models.User{
		Username:          req.Username,
		Email:             req.Email,
		PasswordHash:      string(hash),
		PreferredPosition: req.PreferredPosition,
		ExperienceLevel:   req.ExperienceLevel,
	}
	if err := h.users.CreateUser(user); err != nil {
		h.logger.Error("Failed to create user", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to create account")
		return
	}

	// The ledger row is created up front so first reads see zeroes, not a miss.
	if err := h.progress.EnsureExists(user.ID); err != nil {
		h.logger.Error("Failed to initialize progress", zap.Error(err), zap.Uint("user_id", user.ID))
	}

	token, err := utils.SignToken(user.ID, user.Username, user.Email, h.jwtSecret)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to sign token")
		return
	}

	utils.JSON(w, http.StatusCreated, models.AuthResponse{
		Token: token,
		User: models.ProfileBrief{
			ID:                user.ID,
			Username:          user.Username,
			Email:             user.Email,
			PreferredPosition: user.PreferredPosition,
			ExperienceLevel:   user.ExperienceLevel,
		},
	})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.LoginRequest](r)

	user, err := h.users.GetUserByEmail(req.Email)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
		return
	}

	token, err := utils.SignToken(user.ID, user.Username, user.Email, h.jwtSecret)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to sign token")
		return
	}

	utils.JSON(w, http.StatusOK, models.AuthResponse{
		Token: token,
		User: models.ProfileBrief{
			ID:                user.ID,
			Username:          user.Username,
			Email:             user.Email,
			PreferredPosition: user.PreferredPosition,
			ExperienceLevel:   user.ExperienceLevel,
		},
	})
}
