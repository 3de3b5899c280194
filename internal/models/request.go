package models

import (
	"strings"
	"time"
)

// ValidDifficulties lists the accepted interview difficulties (in lowercase).
var ValidDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

func ValidDifficultiesList() []string {
	return []string{"easy", "medium", "hard"}
}

// MaxQuestionCount bounds one generation request.
const MaxQuestionCount = 20

type RegisterRequest struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	PreferredPosition string `json:"preferredPosition"`
	ExperienceLevel   string `json:"experienceLevel"`
}

func (r *RegisterRequest) Validate() error {
	if r.Username == "" || r.Email == "" || r.Password == "" {
		return &ErrorResponse{
			Code:    "missing_fields",
			Message: "Username, email and password are required",
		}
	}
	if !strings.Contains(r.Email, "@") {
		return &ErrorResponse{
			Code:    "invalid_email",
			Message: "Email address is not valid",
		}
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return &ErrorResponse{
			Code:    "missing_fields",
			Message: "Email and password are required",
		}
	}
	return nil
}

type GenerateRequest struct {
	Position      string `json:"position"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"questionCount"`
}

func (r *GenerateRequest) Validate() error {
	if r.Position == "" {
		return &ErrorResponse{
			Code:    "missing_position",
			Message: "Position field is required",
		}
	}
	r.Difficulty = strings.ToLower(r.Difficulty)
	if !ValidDifficulties[r.Difficulty] {
		return &ErrorResponse{
			Code:    "invalid_difficulty",
			Message: "Difficulty must be one of: easy, medium, hard",
		}
	}
	if r.QuestionCount == 0 {
		r.QuestionCount = 5
	}
	if r.QuestionCount < 1 || r.QuestionCount > MaxQuestionCount {
		return &ErrorResponse{
			Code:    "invalid_question_count",
			Message: "Question count must be between 1 and 20",
		}
	}
	return nil
}

type AnswerRequest struct {
	SessionID  uint   `json:"sessionId"`
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
}

func (r *AnswerRequest) Validate() error {
	if r.SessionID == 0 {
		return &ErrorResponse{
			Code:    "missing_session",
			Message: "Session id is required",
		}
	}
	if r.QuestionID < 1 {
		return &ErrorResponse{
			Code:    "invalid_question_id",
			Message: "Question id must be a positive integer",
		}
	}
	if r.Answer == "" {
		return &ErrorResponse{
			Code:    "missing_answer",
			Message: "Answer field is required",
		}
	}
	return nil
}

type CompleteRequest struct {
	SessionID uint `json:"sessionId"`
}

func (r *CompleteRequest) Validate() error {
	if r.SessionID == 0 {
		return &ErrorResponse{
			Code:    "missing_session",
			Message: "Session id is required",
		}
	}
	return nil
}

type ScheduleRequest struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ScheduledTime time.Time `json:"scheduledTime"`
	DurationMin   int       `json:"duration"`
	GuestEmail    string    `json:"guestEmail"`
}

func (r *ScheduleRequest) Validate() error {
	if r.Title == "" || r.ScheduledTime.IsZero() || r.GuestEmail == "" {
		return &ErrorResponse{
			Code:    "missing_fields",
			Message: "Title, scheduled time, and guest email are required",
		}
	}
	if r.DurationMin == 0 {
		r.DurationMin = 60
	}
	if r.DurationMin < 0 {
		return &ErrorResponse{
			Code:    "invalid_duration",
			Message: "Duration must be a positive number of minutes",
		}
	}
	return nil
}

type ChallengeSubmitRequest struct {
	ChallengeID uint   `json:"challengeId"`
	Answer      string `json:"answer"`
}

func (r *ChallengeSubmitRequest) Validate() error {
	if r.ChallengeID == 0 {
		return &ErrorResponse{
			Code:    "missing_challenge",
			Message: "Challenge id is required",
		}
	}
	if r.Answer == "" {
		return &ErrorResponse{
			Code:    "missing_answer",
			Message: "Answer field is required",
		}
	}
	return nil
}
