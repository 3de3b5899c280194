package handlers

import (
	"context"

	"interviewai/server/internal/meeting"
	"interviewai/server/internal/models"
	"interviewai/server/internal/services"
)

// UserRepository captures the persistence operations required by handlers.
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(userID uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
}

// SessionRepository captures the interview-session persistence operations.
type SessionRepository interface {
	Create(session *models.InterviewSession) error
	GetForUser(sessionID, userID uint) (*models.InterviewSession, error)
	SaveAnswers(session *models.InterviewSession) error
	CompleteOnce(sessionID, userID uint, score int) (bool, error)
	ListForUser(userID uint) ([]models.InterviewSession, error)
}

// ProgressRepository exposes the per-user aggregate ledger.
type ProgressRepository interface {
	Get(userID uint) (*models.UserProgress, error)
	EnsureExists(userID uint) error
}

// ScheduleRepository captures appointment persistence.
type ScheduleRepository interface {
	Create(interview *models.ScheduledInterview) error
	ListForUser(userID uint) ([]models.ScheduledInterviewView, error)
	GetByRoomID(roomID string) (*models.ScheduledInterview, error)
	SetJoined(roomID string, host bool) error
	DeleteByRoomID(roomID string) error
}

// ChallengeRepository captures daily-challenge persistence.
type ChallengeRepository interface {
	GetOrCreate(userID uint, date, question string) (*models.DailyChallenge, error)
	Submit(challengeID, userID uint, answer string, score int) (bool, error)
}

// MeetingClient acquires a meeting link for an appointment. Failures degrade
// to a placeholder link.
type MeetingClient interface {
	CreateMeeting(ctx context.Context, ev meeting.Event) (string, error)
}

// EventPublisher hands schedule events to the notification pipeline.
type EventPublisher interface {
	PublishScheduled(ctx context.Context, event services.InterviewScheduledEvent) error
}
