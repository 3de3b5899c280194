package repositories

import (
	"errors"
	"time"

	"interviewai/server/internal/models"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

// Get returns the user's aggregates, or a zero-valued record when none exists
// yet. It never reports absence as an error.
func (r *ProgressRepository) Get(userID uint) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.DB.Where("user_id = ?", userID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.UserProgress{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// EnsureExists creates the progress row for a new user if it is missing.
func (r *ProgressRepository) EnsureExists(userID uint) error {
	progress := models.UserProgress{UserID: userID}
	return r.DB.Where(models.UserProgress{UserID: userID}).FirstOrCreate(&progress).Error
}

// recordCompletion applies the ledger update for one completed session inside
// the caller's transaction. The increments are single atomic column updates so
// concurrent completions for the same user cannot lose counts; the average is
// recomputed from the post-increment totals in the same statement.
func recordCompletion(tx *gorm.DB, userID uint, score int, now time.Time) error {
	progress := models.UserProgress{UserID: userID}
	if err := tx.Where(models.UserProgress{UserID: userID}).FirstOrCreate(&progress).Error; err != nil {
		return err
	}

	return tx.Model(&models.UserProgress{}).
		Where("id = ?", progress.ID).
		Updates(map[string]any{
			"total_interviews": gorm.Expr("total_interviews + 1"),
			"total_score":      gorm.Expr("total_score + ?", score),
			"average_score":    gorm.Expr("CAST(total_score + ? AS REAL) / (total_interviews + 1)", score),
			"streak_days":      nextStreak(progress.LastActivity, progress.StreakDays, now),
			"last_activity":    now,
		}).Error
}

// nextStreak extends the streak when the previous activity was yesterday,
// keeps it for repeat activity on the same day, and restarts it otherwise.
func nextStreak(lastActivity *time.Time, current int, now time.Time) int {
	if lastActivity == nil {
		return 1
	}
	today := now.Format("2006-01-02")
	last := lastActivity.Format("2006-01-02")
	if last == today {
		if current == 0 {
			return 1
		}
		return current
	}
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	if last == yesterday {
		return current + 1
	}
	return 1
}
