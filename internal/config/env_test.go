package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemini-transcribe/internal/app/errors"
)

func TestAPIKey(t *testing.T) {
	// Save original environment
	originalGoogle := os.Getenv(EnvGoogleAIAPIKey)
	originalGemini := os.Getenv(EnvGeminiAPIKey)
	defer func() {
		os.Setenv(EnvGoogleAIAPIKey, originalGoogle)
		os.Setenv(EnvGeminiAPIKey, originalGemini)
	}()

	testCases := []struct {
		name          string
		googleKey     string
		geminiKey     string
		want          string
		expectError   bool
		errorContains string
	}{
		{
			name:      "canonical variable",
			googleKey: "AIzaTest-1234567890abcdef1234567890",
			want:      "AIzaTest-1234567890abcdef1234567890",
		},
		{
			name:      "fallback variable",
			geminiKey: "AIzaFallback-567890abcdef1234567890",
			want:      "AIzaFallback-567890abcdef1234567890",
		},
		{
			name:      "canonical wins over fallback",
			googleKey: "AIzaCanonical-890abcdef1234567890ff",
			geminiKey: "AIzaFallback-567890abcdef1234567890",
			want:      "AIzaCanonical-890abcdef1234567890ff",
		},
		{
			name:      "surrounding whitespace trimmed",
			googleKey: "  AIzaTest-1234567890abcdef1234567890  ",
			want:      "AIzaTest-1234567890abcdef1234567890",
		},
		{
			name:          "missing key",
			expectError:   true,
			errorContains: "GOOGLE_AI_API_KEY not found",
		},
		{
			name:          "wrong prefix",
			googleKey:     "sk-1234567890abcdef1234567890abcdef",
			expectError:   true,
			errorContains: "must start with 'AIza'",
		},
		{
			name:          "too short",
			googleKey:     "AIza-short",
			expectError:   true,
			errorContains: "too short",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Setenv(EnvGoogleAIAPIKey, tc.googleKey)
			os.Setenv(EnvGeminiAPIKey, tc.geminiKey)

			key, err := APIKey()

			if tc.expectError {
				require.Error(t, err)
				assert.True(t, errors.IsConfig(err))
				assert.Contains(t, err.Error(), tc.errorContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, key)
			}
		})
	}
}

func TestLoadEnvWithoutEnvFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(wd)

	require.NoError(t, os.Chdir(t.TempDir()))

	assert.NoError(t, LoadEnv())
}

func TestLoadEnvReadsDotEnvFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		os.Chdir(wd)
		os.Unsetenv("TRANSCRIBE_ENV_PROBE")
	}()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TRANSCRIBE_ENV_PROBE=hello\n"), 0o644))
	require.NoError(t, os.Chdir(dir))

	require.NoError(t, LoadEnv())
	assert.Equal(t, "hello", os.Getenv("TRANSCRIBE_ENV_PROBE"))
}
