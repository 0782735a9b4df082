// Package agent selects the LLM provider used for summary generation based
// on config.
package agent

import "sme_valuation/pkg/core/llm"

type Config struct {
	ActiveProvider string `yaml:"active_provider"`
	Model          string `yaml:"model"`
}

// Manager maps provider names to instances. Only Gemini ships today; the
// registry exists so another provider can be added without touching callers.
type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"gemini": &llm.GeminiProvider{Model: config.Model},
		},
	}
}

// GetProvider returns the configured active provider, defaulting to Gemini.
func (m *Manager) GetProvider() llm.Provider {
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}
	return m.providers["gemini"]
}
