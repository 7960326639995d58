package model

import "time"

// Config holds the complete stavex configuration
type Config struct {
	NLP         NLPConfig         `yaml:"nlp" json:"nlp"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// NLPConfig selects and configures the NLP engine binding
type NLPConfig struct {
	// Provider is "rules" (built-in deterministic engine) or "openai"
	// (hosted NER, local tokenization)
	Provider string `yaml:"provider" json:"provider"`

	// Model is the hosted model name (openai provider only)
	Model string `yaml:"model" json:"model"`

	// APIKey authenticates the hosted provider; read from env by the CLI
	APIKey string `yaml:"-" json:"-"`

	// BaseURL overrides the hosted provider endpoint (proxies, self-hosted)
	BaseURL string `yaml:"base_url,omitempty" json:"base_url,omitempty"`

	// RequestsPerSecond rate-limits hosted NER calls
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`

	// Burst is the rate limiter burst size
	Burst int `yaml:"burst" json:"burst"`
}

// CacheConfig controls result caching. Extraction is deterministic over the
// input text, so results are cached under a hash of the normalized text.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	Dir     string        `yaml:"dir" json:"dir"` // Empty disables the disk layer
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		NLP: NLPConfig{
			Provider:          "rules",
			Model:             "gpt-4o-mini",
			RequestsPerSecond: 2,
			Burst:             2,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
