package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"interviewai/server/internal/middleware"
	"interviewai/server/internal/models"
	"interviewai/server/internal/utils"
)

// ProfileHandler serves the user's account details and ledger aggregates.
type ProfileHandler struct {
	users    UserRepository
	progress ProgressRepository
	logger   *zap.Logger
}

func NewProfileHandler(users UserRepository, progress ProgressRepository, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{users: users, progress: progress, logger: logger}
}

func (h *ProfileHandler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	user, err := h.users.GetUserByID(userID)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "not_found", "User not found")
		return
	}

	progress, err := h.progress.Get(userID)
	if err != nil {
		h.logger.Error("Failed to load progress", zap.Error(err), zap.Uint("user_id", userID))
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to load profile")
		return
	}

	utils.JSON(w, http.StatusOK, models.ProfileResponse{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		PreferredPosition: user.PreferredPosition,
		ExperienceLevel:   user.ExperienceLevel,
		Progress:          progress,
	})
}
