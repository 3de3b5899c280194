package prompts

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// embeds all .yaml files in the templates folder at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// loaded prompt template file
type promptTemplate struct {
	Prompt string `yaml:"prompt"`
}

type Manager struct {
	prompts map[string]string // mode -> prompt text with {{.Key}} placeholders
}

// creates a new prompt manager and loads templates
func NewManager() (*Manager, error) {
	m := &Manager{prompts: make(map[string]string)}
	if err := m.loadPrompts(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}
	return m, nil
}

// BuildPrompt renders the template for the given mode, substituting every
// {{.Key}} placeholder from data.
func (m *Manager) BuildPrompt(mode string, data map[string]string) (string, error) {
	prompt, exists := m.prompts[mode]
	if !exists {
		return "", fmt.Errorf("template not found for mode: %s", mode)
	}
	for key, value := range data {
		prompt = strings.ReplaceAll(prompt, "{{."+key+"}}", value)
	}
	return prompt, nil
}

func (m *Manager) loadPrompts() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var tmpl promptTemplate
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}
		if strings.TrimSpace(tmpl.Prompt) == "" {
			return fmt.Errorf("template file %s has an empty prompt", entry.Name())
		}

		m.prompts[strings.TrimSuffix(entry.Name(), ".yaml")] = tmpl.Prompt
	}

	return nil
}
