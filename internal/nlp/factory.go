package nlp

import (
	"fmt"

	"github.com/jkratochvil/stavex/internal/model"
)

// NewEngine constructs the NLP engine selected by the configuration.
// An unknown or misconfigured provider is an error: the pipeline cannot run
// without its NLP capability, so this must never degrade silently.
func NewEngine(cfg model.NLPConfig) (Engine, error) {
	switch cfg.Provider {
	case "", "rules":
		return NewRuleEngine(), nil
	case "openai":
		engine, err := NewOpenAIEngine(OpenAIOptions{
			APIKey:            cfg.APIKey,
			Model:             cfg.Model,
			BaseURL:           cfg.BaseURL,
			RequestsPerSecond: cfg.RequestsPerSecond,
			Burst:             cfg.Burst,
		})
		if err != nil {
			return nil, fmt.Errorf("create openai engine: %w", err)
		}
		return engine, nil
	default:
		return nil, fmt.Errorf("unknown NLP provider %q (want rules or openai)", cfg.Provider)
	}
}
