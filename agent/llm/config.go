package llm

import (
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	// Provider selects the delegated back-end.
	Provider string `envconfig:"PROVIDER" split_words:"true" default:"openai"`

	// Deterministic forces the rule/template strategies regardless of
	// credentials.
	Deterministic bool `envconfig:"DETERMINISTIC" split_words:"true" default:"false"`
}

func (c Config) Validate() error {
	switch c.provider() {
	case ProviderOpenAI, ProviderGemini:
		return nil
	default:
		return fmt.Errorf("%w: unknown llm provider %q", contractx.ErrConfig, c.Provider)
	}
}

func (c Config) provider() string {
	return strings.ToLower(strings.TrimSpace(c.Provider))
}
