package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment statuses.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// ScheduledInterview is a peer-to-peer appointment between a host and a guest.
type ScheduledInterview struct {
	gorm.Model
	HostID        uint      `gorm:"not null;index" json:"hostId"`
	GuestID       uint      `gorm:"not null;index" json:"guestId"`
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	ScheduledTime time.Time `gorm:"not null;index" json:"scheduledTime"`
	DurationMin   int       `gorm:"not null;default:60" json:"duration"`
	Status        string    `gorm:"not null;default:'scheduled'" json:"status"`
	RoomID        string    `gorm:"uniqueIndex;not null" json:"roomId"`
	MeetingLink   string    `json:"meetingLink"`
	JoinedHost    bool      `gorm:"not null;default:false" json:"joinedHost"`
	JoinedGuest   bool      `gorm:"not null;default:false" json:"joinedGuest"`
}
