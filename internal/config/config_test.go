package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepnotes/internal/app/model"
)

func TestResolveCredentialsExplicitWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-gemini")
	t.Setenv("MISTRAL_API_KEY", "env-mistral")

	resolved := ResolveCredentials(model.Credentials{GeminiKey: "explicit"})
	assert.Equal(t, "explicit", resolved.GeminiKey)
	assert.Equal(t, "env-mistral", resolved.MistralKey)
}

func TestResolveCredentialsGoogleAlias(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "alias-key")
	t.Setenv("MISTRAL_API_KEY", "")

	resolved := ResolveCredentials(model.Credentials{})
	assert.Equal(t, "alias-key", resolved.GeminiKey)
	assert.Empty(t, resolved.MistralKey)
}

func TestResolveCredentialsEmpty(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("MISTRAL_API_KEY", "")

	resolved := ResolveCredentials(model.Credentials{})
	assert.True(t, resolved.Empty())
}

func TestDefaultSettingsValidate(t *testing.T) {
	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 200, settings.Extraction.MinDirectChars)
	assert.Equal(t, "whisper_cpp", settings.Whisper.Engine)
	assert.NotEmpty(t, settings.Summarize.MistralEndpoint)
}

func TestLoadSettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := []byte(`
whisper:
  engine: openai
extraction:
  min_direct_chars: 500
summarize:
  gemini_model: gemini-2.0-flash
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", settings.Whisper.Engine)
	assert.Equal(t, 500, settings.Extraction.MinDirectChars)
	assert.Equal(t, "gemini-2.0-flash", settings.Summarize.GeminiModel)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "mistral-medium", settings.Summarize.MistralModel)
}

func TestLoadSettingsRejectsBadEngine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("whisper:\n  engine: bogus\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvMissingFileIsFine(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(t.TempDir()))

	assert.NoError(t, LoadEnv())
}
