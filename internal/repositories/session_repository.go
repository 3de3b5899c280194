package repositories

import (
	"errors"
	"time"

	"interviewai/server/internal/models"

	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository struct {
	DB *gorm.DB
}

func (r *SessionRepository) Create(session *models.InterviewSession) error {
	return r.DB.Create(session).Error
}

// GetForUser loads a session scoped to its owner. A session belonging to a
// different user is reported as not found, never as forbidden.
func (r *SessionRepository) GetForUser(sessionID, userID uint) (*models.InterviewSession, error) {
	var session models.InterviewSession
	err := r.DB.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// SaveAnswers persists the session's current answer list.
func (r *SessionRepository) SaveAnswers(session *models.InterviewSession) error {
	return r.DB.Model(session).Update("answers", session.Answers).Error
}

// CompleteOnce marks the session completed with the given score and applies
// the progress-ledger update in the same transaction. The conditional update
// guarantees the transition happens at most once: a session that is already
// completed leaves the ledger untouched and returns false.
func (r *SessionRepository) CompleteOnce(sessionID, userID uint, score int) (bool, error) {
	transitioned := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.InterviewSession{}).
			Where("id = ? AND user_id = ? AND completed = ?", sessionID, userID, false).
			Updates(map[string]any{"completed": true, "score": score})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		transitioned = true
		return recordCompletion(tx, userID, score, time.Now())
	})
	return transitioned, err
}

// ListForUser returns the user's sessions, newest first.
func (r *SessionRepository) ListForUser(userID uint) ([]models.InterviewSession, error) {
	sessions := []models.InterviewSession{}
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&sessions).Error
	return sessions, err
}
