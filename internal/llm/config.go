// Package llm provides the text-generation client used to score ticket transcripts.
package llm

import "os"

// DefaultModel is the Gemini model used when nothing else is configured.
const DefaultModel = "gemini-1.5-flash"

// Config holds the model configuration for the evaluation client.
type Config struct {
	// Model is the Gemini model name.
	Model string
	// Temperature for generation. Kept low so scores are reproducible.
	Temperature float32
}

// DefaultConfig returns the default model configuration.
// The model can be overridden with the QA_COACH_MODEL environment variable.
func DefaultConfig() *Config {
	model := os.Getenv("QA_COACH_MODEL")
	if model == "" {
		model = DefaultModel
	}
	return &Config{
		Model:       model,
		Temperature: 0.1,
	}
}

// WithModel returns a copy of the config with a specific model name.
func (c *Config) WithModel(model string) *Config {
	out := *c
	if model != "" {
		out.Model = model
	}
	return &out
}
