package repositories

import (
	"errors"

	"interviewai/server/internal/models"

	"gorm.io/gorm"
)

type ChallengeRepository struct {
	DB *gorm.DB
}

// GetOrCreate returns the user's challenge for the given day, creating one
// with the supplied question when absent. When a concurrent request wins the
// insert race on the (user, date) unique index, the winner's row is returned.
func (r *ChallengeRepository) GetOrCreate(userID uint, date, question string) (*models.DailyChallenge, error) {
	var challenge models.DailyChallenge
	err := r.DB.Where("user_id = ? AND challenge_date = ?", userID, date).First(&challenge).Error
	if err == nil {
		return &challenge, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	challenge = models.DailyChallenge{
		UserID:        userID,
		ChallengeDate: date,
		Question:      question,
	}
	if createErr := r.DB.Create(&challenge).Error; createErr != nil {
		if getErr := r.DB.Where("user_id = ? AND challenge_date = ?", userID, date).First(&challenge).Error; getErr == nil {
			return &challenge, nil
		}
		return nil, createErr
	}
	return &challenge, nil
}

// Submit records the answer with the given score and marks the challenge
// completed. The update only applies when the challenge belongs to the user;
// a mismatched pair is a silent no-op and returns false.
func (r *ChallengeRepository) Submit(challengeID, userID uint, answer string, score int) (bool, error) {
	res := r.DB.Model(&models.DailyChallenge{}).
		Where("id = ? AND user_id = ?", challengeID, userID).
		Updates(map[string]any{
			"answer":    answer,
			"score":     score,
			"completed": true,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
