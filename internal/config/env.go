package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"gemini-transcribe/internal/app/errors"
)

// Environment variables the API key is read from, in order of preference.
const (
	EnvGoogleAIAPIKey = "GOOGLE_AI_API_KEY"
	EnvGeminiAPIKey   = "GEMINI_API_KEY"
)

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are fine; environment variables might be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			fmt.Printf("✅ Loaded environment variables from %s\n", envPath)
			break
		}
	}

	return nil
}

// APIKey retrieves the Gemini API key from the environment. GOOGLE_AI_API_KEY
// is the canonical variable; GEMINI_API_KEY is honored as a fallback.
func APIKey() (string, error) {
	key := strings.TrimSpace(os.Getenv(EnvGoogleAIAPIKey))
	if key == "" {
		key = strings.TrimSpace(os.Getenv(EnvGeminiAPIKey))
	}
	if key == "" {
		return "", errors.NewConfigError(
			"GOOGLE_AI_API_KEY not found in environment variables, set it in the environment or a .env file")
	}

	if err := ValidateAPIKey(key); err != nil {
		return "", errors.Wrap(err, errors.KindConfig, "invalid API key")
	}

	return key, nil
}
