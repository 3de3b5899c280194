package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProgress keeps per-user running aggregates, updated once per completed
// interview session.
type UserProgress struct {
	gorm.Model
	UserID          uint       `gorm:"uniqueIndex;not null" json:"userId"`
	TotalInterviews int        `gorm:"not null;default:0" json:"totalInterviews"`
	TotalScore      int        `gorm:"not null;default:0" json:"totalScore"`
	AverageScore    float64    `gorm:"not null;default:0" json:"averageScore"`
	StreakDays      int        `gorm:"not null;default:0" json:"streakDays"`
	LastActivity    *time.Time `json:"lastActivity"`
}
