package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"go.uber.org/zap"

	"interviewai/server/internal/llm"
	"interviewai/server/internal/middleware"
	"interviewai/server/internal/models"
	"interviewai/server/internal/repositories"
	"interviewai/server/internal/utils"
)

// InterviewHandler runs the interview session lifecycle: question generation,
// answer evaluation, and completion scoring.
type InterviewHandler struct {
	sessions      SessionRepository
	provider      llm.Provider
	oracleTimeout time.Duration
	logger        *zap.Logger
}

func NewInterviewHandler(sessions SessionRepository, provider llm.Provider, oracleTimeout time.Duration, logger *zap.Logger) *InterviewHandler {
	if oracleTimeout <= 0 {
		oracleTimeout = 30 * time.Second
	}
	return &InterviewHandler{
		sessions:      sessions,
		provider:      provider,
		oracleTimeout: oracleTimeout,
		logger:        logger,
	}
}

func (h *InterviewHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.GenerateRequest](r)
	userID := middleware.UserID(r)

	ctx, cancel := context.WithTimeout(r.Context(), h.oracleTimeout)
	defer cancel()

	questions, err := h.provider.GenerateQuestions(ctx, req.Position, req.Difficulty, req.QuestionCount)
	if err != nil {
		// No session is persisted from a failed generation.
		h.logger.Error("Question generation failed",
			zap.Error(err),
			zap.Uint("user_id", userID),
			zap.String("provider", h.provider.GetProviderName()))
		utils.JSONError(w, http.StatusBadGateway, "generation_failed", "Could not generate questions, please try again")
		return
	}

	session := &models.InterviewSession{
		UserID:     userID,
		Position:   req.Position,
		Difficulty: req.Difficulty,
		Questions:  questions,
		Answers:    make(models.AnswerList, len(questions)),
	}
	if err := h.sessions.Create(session); err != nil {
		h.logger.Error("Failed to save session", zap.Error(err), zap.Uint("user_id", userID))
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to save interview session")
		return
	}

	items := make([]models.QuestionItem, len(questions))
	for i, q := range questions {
		items[i] = models.QuestionItem{ID: i + 1, Question: q, Answer: nil}
	}
	utils.JSON(w, http.StatusOK, models.GenerateResponse{SessionID: session.ID, Questions: items})
}

func (h *InterviewHandler) AnswerHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.AnswerRequest](r)
	userID := middleware.UserID(r)

	session, err := h.sessions.GetForUser(req.SessionID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			utils.JSONError(w, http.StatusNotFound, "not_found", "Session not found")
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to load session")
		return
	}

	if req.QuestionID > len(session.Questions) {
		utils.JSONError(w, http.StatusBadRequest, "invalid_question_id", "Question id is out of range")
		return
	}
	question := session.Questions[req.QuestionID-1]

	ctx, cancel := context.WithTimeout(r.Context(), h.oracleTimeout)
	defer cancel()

	feedback, err := h.provider.EvaluateAnswer(ctx, question, req.Answer)
	if err != nil {
		// Evaluation outages degrade: the answer is still recorded.
		h.logger.Warn("Answer evaluation degraded",
			zap.Error(err),
			zap.Uint("session_id", session.ID))
		feedback = models.FallbackFeedback("Your answer was recorded, but automated feedback is unavailable right now.")
	}

	if len(session.Answers) < len(session.Questions) {
		grown := make(models.AnswerList, len(session.Questions))
		copy(grown, session.Answers)
		session.Answers = grown
	}
	session.Answers[req.QuestionID-1] = &models.Answer{
		Question: question,
		Answer:   req.Answer,
		Feedback: feedback,
	}
	if err := h.sessions.SaveAnswers(session); err != nil {
		h.logger.Error("Failed to save answer", zap.Error(err), zap.Uint("session_id", session.ID))
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to save answer")
		return
	}

	utils.JSON(w, http.StatusOK, models.AnswerResponse{Feedback: feedback})
}

func (h *InterviewHandler) CompleteHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CompleteRequest](r)
	userID := middleware.UserID(r)

	session, err := h.sessions.GetForUser(req.SessionID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			utils.JSONError(w, http.StatusNotFound, "not_found", "Session not found")
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to load session")
		return
	}

	answered := 0
	totalScore := 0
	feedback := []*models.Feedback{}
	for _, answer := range session.Answers {
		if answer == nil || answer.Feedback == nil {
			continue
		}
		answered++
		totalScore += answer.Feedback.Score
		feedback = append(feedback, answer.Feedback)
	}

	// Zero answered questions score 0, not an error.
	score := 0
	if answered > 0 {
		score = int(math.Round(float64(totalScore) / float64(answered)))
	}

	transitioned, err := h.sessions.CompleteOnce(session.ID, userID, score)
	if err != nil {
		h.logger.Error("Failed to complete session", zap.Error(err), zap.Uint("session_id", session.ID))
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to complete session")
		return
	}
	if !transitioned {
		h.logger.Info("Session already completed, ledger unchanged", zap.Uint("session_id", session.ID))
	}

	utils.JSON(w, http.StatusOK, models.CompleteResponse{
		Score:             score,
		TotalQuestions:    len(session.Questions),
		AnsweredQuestions: answered,
		Feedback:          feedback,
	})
}

func (h *InterviewHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	sessions, err := h.sessions.ListForUser(userID)
	if err != nil {
		h.logger.Error("Failed to fetch history", zap.Error(err), zap.Uint("user_id", userID))
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to fetch history")
		return
	}
	utils.JSON(w, http.StatusOK, sessions)
}
