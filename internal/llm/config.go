package llm

import (
	"fmt"
	"time"
)

// Config contains configuration for the extraction client.
type Config struct {
	// APIKey authenticates against the provider
	APIKey string

	// BaseURL is the provider's OpenAI-compatible API base URL
	// Default: https://openrouter.ai/api/v1
	BaseURL string

	// DefaultModel is the model used when a task does not pick one
	// Example: openai/gpt-4.1
	DefaultModel string

	// Timeout is the HTTP request timeout
	// Default: 60 seconds (EPD texts run long)
	Timeout time.Duration

	// MaxRetries is the maximum number of validation retries
	// Default: 3
	MaxRetries int
}

// Validate checks that required config fields are set.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("APIKey is required")
	}

	if c.BaseURL == "" {
		return fmt.Errorf("BaseURL is required")
	}

	if c.DefaultModel == "" {
		return fmt.Errorf("DefaultModel is required")
	}

	return nil
}

// SetDefaults fills in default values for optional fields.
func (c *Config) SetDefaults() {
	if c.Timeout == 0 {
		c.Timeout = 60 * time.Second
	}

	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
}
