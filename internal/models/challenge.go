package models

import (
	"gorm.io/gorm"
)

// DailyChallenge is the single practice question issued to a user for one
// calendar day. ChallengeDate is the day in YYYY-MM-DD form; the composite
// unique index enforces at most one challenge per user per day.
type DailyChallenge struct {
	gorm.Model
	UserID        uint   `gorm:"not null;uniqueIndex:idx_user_challenge_date" json:"userId"`
	ChallengeDate string `gorm:"not null;uniqueIndex:idx_user_challenge_date" json:"challengeDate"`
	Question      string `gorm:"type:text;not null" json:"question"`
	Answer        string `gorm:"type:text" json:"answer"`
	Score         *int   `json:"score"`
	Completed     bool   `gorm:"not null;default:false" json:"completed"`
}
