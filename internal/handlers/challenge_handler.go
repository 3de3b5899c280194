package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"

	"interviewai/server/internal/middleware"
	"interviewai/server/internal/models"
	"interviewai/server/internal/utils"
)

// DailyChallengeScore is the coarse fixed score every submitted challenge
// receives. A product decision carried over, not a placeholder.
const DailyChallengeScore = 80

// challengePool is the fixed question pool. Selection is uniform random with
// replacement across days, so repeats on consecutive days are possible.
var challengePool = []string{
	"What is the difference between var, let, and const in JavaScript?",
	"Explain the concept of closure in JavaScript with an example.",
	"How would you optimize a React component for performance?",
	"What are the key differences between SQL and NoSQL databases?",
	"Explain the time complexity of common sorting algorithms.",
}

// ChallengeHandler issues at most one challenge per user per calendar day.
type ChallengeHandler struct {
	challenges ChallengeRepository
	logger     *zap.Logger
	now        func() time.Time
	pick       func(n int) int
}

func NewChallengeHandler(challenges ChallengeRepository, logger *zap.Logger) *ChallengeHandler {
	return &ChallengeHandler{
		challenges: challenges,
		logger:     logger,
		now:        time.Now,
		pick:       rand.Intn,
	}
}

func (h *ChallengeHandler) GetTodayHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	today := h.now().Format("2006-01-02")
	question := challengePool[h.pick(len(challengePool))]

	challenge, err := h.challenges.GetOrCreate(userID, today, question)
	if err != nil {
		h.logger.Error("Failed to issue daily challenge", zap.Error(err), zap.Uint("user_id", userID))
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Error creating challenge")
		return
	}
	utils.JSON(w, http.StatusOK, challenge)
}

func (h *ChallengeHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.ChallengeSubmitRequest](r)
	userID := middleware.UserID(r)

	updated, err := h.challenges.Submit(req.ChallengeID, userID, req.Answer, DailyChallengeScore)
	if err != nil {
		h.logger.Error("Failed to submit challenge", zap.Error(err), zap.Uint("user_id", userID))
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Error submitting challenge")
		return
	}
	if !updated {
		// A mismatched (challenge, user) pair is a silent no-op.
		h.logger.Info("Challenge submit did not match a record",
			zap.Uint("challenge_id", req.ChallengeID),
			zap.Uint("user_id", userID))
	}

	utils.JSON(w, http.StatusOK, models.ChallengeSubmitResponse{
		Message: "Challenge completed!",
		Score:   DailyChallengeScore,
	})
}
