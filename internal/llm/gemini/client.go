package gemini

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"unicode"

	"google.golang.org/genai"

	"interviewai/server/internal/llm"
	"interviewai/server/internal/models"
	"interviewai/server/internal/prompts"
)

// Client represents a Gemini LLM client

type Client struct {
	client  *genai.Client
	config  *Config
	prompts *prompts.Manager
}

func NewClient(config *Config, promptManager *prompts.Manager) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client:  client,
		config:  config,
		prompts: promptManager,
	}, nil
}

func (c *Client) GenerateQuestions(ctx context.Context, role, difficulty string, count int) ([]string, error) {
	prompt, err := c.prompts.BuildPrompt("generate", map[string]string{
		"Role":       role,
		"Difficulty": difficulty,
		"Count":      strconv.Itoa(count),
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to build generation prompt",
			Err:      err,
		}
	}

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions := parseQuestions(text)
	if len(questions) == 0 {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No questions in model output",
		}
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

func (c *Client) EvaluateAnswer(ctx context.Context, question, answer string) (*models.Feedback, error) {
	prompt, err := c.prompts.BuildPrompt("evaluate", map[string]string{
		"Question": question,
		"Answer":   answer,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to build evaluation prompt",
			Err:      err,
		}
	}

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// Malformed model output degrades to the fallback shape instead of failing.
	return parseFeedback(text), nil
}

func (c *Client) GetProviderName() string {
	return "gemini"
}

// generate runs one content-generation call and extracts the response text.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.config.Model,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate content",
			Err:      err,
		}
	}
	if result == nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No response generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	if text == "" {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}
	return text, nil
}

// parseQuestions splits model output into one question per line, dropping
// blank lines and any leading numbering the model added.
func parseQuestions(text string) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = stripNumbering(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}
	return questions
}

// stripNumbering removes prefixes like "1.", "2)" or "3:" from a line.
func stripNumbering(line string) string {
	i := 0
	for i < len(line) && unicode.IsDigit(rune(line[i])) {
		i++
	}
	if i == 0 || i >= len(line) {
		return line
	}
	switch line[i] {
	case '.', ')', ':':
		return strings.TrimSpace(line[i+1:])
	}
	return line
}

// parseFeedback decodes the model's JSON evaluation. Output that is not valid
// JSON, or parses to an empty shape, is wrapped whole into the fallback
// feedback rather than rejected.
func parseFeedback(text string) *models.Feedback {
	cleaned := stripFences(text)

	var feedback models.Feedback
	if err := json.Unmarshal([]byte(cleaned), &feedback); err != nil {
		return models.FallbackFeedback(text)
	}
	if feedback.Summary == "" && feedback.DetailedFeedback == "" {
		return models.FallbackFeedback(text)
	}

	if feedback.Score < 0 {
		feedback.Score = 0
	}
	if feedback.Score > 100 {
		feedback.Score = 100
	}
	if feedback.Strengths == nil {
		feedback.Strengths = []string{}
	}
	if feedback.Improvements == nil {
		feedback.Improvements = []string{}
	}
	return &feedback
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
