package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// Feedback is the structured evaluation of a single answer.
type Feedback struct {
	Score            int      `json:"score"`
	Summary          string   `json:"summary"`
	Strengths        []string `json:"strengths"`
	Improvements     []string `json:"improvements"`
	DetailedFeedback string   `json:"detailedFeedback"`
}

// FallbackFeedback wraps raw evaluator output that could not be parsed into
// the structured shape. The fixed score marks it as low-confidence.
func FallbackFeedback(raw string) *Feedback {
	return &Feedback{
		Score:            70,
		Summary:          raw,
		Strengths:        []string{},
		Improvements:     []string{},
		DetailedFeedback: raw,
	}
}

// Answer holds one answered question together with its feedback.
type Answer struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Feedback *Feedback `json:"feedback"`
}

// StringList is a JSON-encoded string slice column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	return b, err
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported column type %T for StringList", value)
}

// AnswerList is a JSON-encoded answer slice column. The entry at index i
// belongs to question i+1; unanswered questions are nil entries.
type AnswerList []*Answer

func (l AnswerList) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	return b, err
}

func (l *AnswerList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported column type %T for AnswerList", value)
}

// InterviewSession is one interview attempt: the generated questions plus the
// candidate's answers and per-answer feedback. Score stays null until the
// session is completed.
type InterviewSession struct {
	gorm.Model
	UserID      uint       `gorm:"not null;index" json:"userId"`
	Position    string     `gorm:"not null" json:"position"`
	Difficulty  string     `gorm:"not null" json:"difficulty"`
	Questions   StringList `gorm:"type:text" json:"questions"`
	Answers     AnswerList `gorm:"type:text" json:"answers"`
	Score       *int       `json:"score"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	DurationSec int        `json:"durationSeconds"`
}
