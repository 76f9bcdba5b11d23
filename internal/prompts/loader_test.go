package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	prompt, err := Get("coaching.json", "score-ticket")
	require.NoError(t, err)
	assert.Contains(t, prompt, "QA coach")
	assert.Contains(t, prompt, "escalation_awareness")
	assert.Contains(t, prompt, "overall_score = sum(criteria)")
	assert.Contains(t, prompt, "{{.Transcript}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("coaching.json", "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "score-ticket")
	require.Error(t, err)
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("coaching.json", "nonexistent")
	})
}

func TestFormat(t *testing.T) {
	out := Format("Hello {{.Name}}, score {{.Score}}", map[string]string{
		"Name":  "agent",
		"Score": "4",
	})
	assert.Equal(t, "Hello agent, score 4", out)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	out := Format("static text", map[string]string{"Name": "x"})
	assert.Equal(t, "static text", out)
}
