package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{"model": "gemini-1.5-pro", "port": 9090, "strict": true}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-pro", cfg.Model)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Strict)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoad_BadJSON(t *testing.T) {
	path := writeConfig(t, `{"model": `)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
}

func TestResolveAPIKey_EnvWins(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	cfg := &Config{APIKey: "file-key"}

	key, err := cfg.ResolveAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "env-key", key)
}

func TestResolveAPIKey_ConfigFallback(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	cfg := &Config{APIKey: "file-key"}

	key, err := cfg.ResolveAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "file-key", key)
}

func TestResolveAPIKey_Missing(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	cfg := &Config{}

	_, err := cfg.ResolveAPIKey()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
	// The message must be instructive, not opaque.
	assert.Contains(t, err.Error(), "export GEMINI_API_KEY=")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Model: "explicit"}
	merged := cfg.MergeWithDefaults(Config{Model: "default", Port: 8080})

	assert.Equal(t, "explicit", merged.Model)
	assert.Equal(t, 8080, merged.Port)
}
