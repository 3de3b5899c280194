package models

import "time"

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// satisfies the error interface so request validation can return it directly
func (e *ErrorResponse) Error() string {
	return e.Message
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  ProfileBrief `json:"user"`
}

type ProfileBrief struct {
	ID                uint   `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	PreferredPosition string `json:"preferredPosition"`
	ExperienceLevel   string `json:"experienceLevel"`
}

type ProfileResponse struct {
	ID                uint          `json:"id"`
	Username          string        `json:"username"`
	Email             string        `json:"email"`
	PreferredPosition string        `json:"preferredPosition"`
	ExperienceLevel   string        `json:"experienceLevel"`
	Progress          *UserProgress `json:"progress"`
}

// one generated question as presented to the candidate, 1-indexed
type QuestionItem struct {
	ID       int     `json:"id"`
	Question string  `json:"question"`
	Answer   *string `json:"answer"`
}

type GenerateResponse struct {
	SessionID uint           `json:"sessionId"`
	Questions []QuestionItem `json:"questions"`
}

type AnswerResponse struct {
	Feedback *Feedback `json:"feedback"`
}

type CompleteResponse struct {
	Score             int         `json:"score"`
	TotalQuestions    int         `json:"totalQuestions"`
	AnsweredQuestions int         `json:"answeredQuestions"`
	Feedback          []*Feedback `json:"feedback"`
}

type ScheduleResponse struct {
	Message     string `json:"message"`
	MeetLink    string `json:"meetLink"`
	RoomID      string `json:"roomId"`
	InterviewID uint   `json:"interviewId"`
}

// appointment row expanded with both participants' identities
type ScheduledInterviewView struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ScheduledTime time.Time `json:"scheduledTime"`
	DurationMin   int       `json:"duration"`
	Status        string    `json:"status"`
	RoomID        string    `json:"roomId"`
	MeetingLink   string    `json:"meetingLink"`
	JoinedHost    bool      `json:"joinedHost"`
	JoinedGuest   bool      `json:"joinedGuest"`
	HostID        uint      `json:"hostId"`
	HostUsername  string    `json:"hostUsername"`
	HostEmail     string    `json:"hostEmail"`
	GuestID       uint      `json:"guestId"`
	GuestUsername string    `json:"guestUsername"`
	GuestEmail    string    `json:"guestEmail"`
}

type ChallengeSubmitResponse struct {
	Message string `json:"message"`
	Score   int    `json:"score"`
}
