package llm

import (
	"context"

	"interviewai/server/internal/models"
)

// Provider is the question-generation and answer-evaluation capability
// backing the interview engine.
type Provider interface {
	// GenerateQuestions produces count interview questions for the role and
	// difficulty. An error here is fatal for the caller: no session should be
	// created from a failed generation.
	GenerateQuestions(ctx context.Context, role, difficulty string, count int) ([]string, error)
	// EvaluateAnswer scores one answer. Malformed upstream output is absorbed
	// by the provider, which substitutes a low-confidence fallback shape
	// instead of failing.
	EvaluateAnswer(ctx context.Context, question, answer string) (*models.Feedback, error)
	GetProviderName() string
}

// represents an error from an LLM provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

// Common error codes
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeRateLimit    = "rate_limit_exceeded"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeTimeout      = "timeout"
)
