package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("QA_COACH_MODEL", "")
	cfg := DefaultConfig()
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.InDelta(t, 0.1, cfg.Temperature, 0.001)
}

func TestDefaultConfig_EnvOverride(t *testing.T) {
	t.Setenv("QA_COACH_MODEL", "gemini-1.5-pro")
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-1.5-pro", cfg.Model)
}

func TestWithModel(t *testing.T) {
	cfg := &Config{Model: "a", Temperature: 0.1}

	override := cfg.WithModel("b")
	assert.Equal(t, "b", override.Model)
	assert.Equal(t, "a", cfg.Model, "original config must not change")

	same := cfg.WithModel("")
	assert.Equal(t, "a", same.Model, "empty override keeps the configured model")
}
