package models

import (
	"gorm.io/gorm"
)

// User represents a registered user in the system.
type User struct {
	gorm.Model
	Username          string `gorm:"uniqueIndex;not null" json:"username"`
	Email             string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string `gorm:"not null" json:"-"`
	Role              string `gorm:"not null;default:'candidate'" json:"role"`
	PreferredPosition string `json:"preferredPosition"`
	ExperienceLevel   string `json:"experienceLevel"`
}
