package config

import (
	"fmt"
	"strings"
	"time"
)

// modelAliases are the accepted values for the model setting.
var modelAliases = []string{"flash", "pro"}

// ValidateTimeout validates a timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidateAPIKey validates the Gemini API key format
func ValidateAPIKey(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("API key is required")
	}
	if !strings.HasPrefix(apiKey, "AIza") {
		return fmt.Errorf("invalid Gemini API key format: must start with 'AIza'")
	}
	if len(apiKey) < 30 {
		return fmt.Errorf("invalid Gemini API key format: too short")
	}
	return nil
}

// ValidateModelAlias validates a model alias setting
func ValidateModelAlias(alias string) error {
	for _, known := range modelAliases {
		if alias == known {
			return nil
		}
	}
	return fmt.Errorf("unknown model %q (must be one of: %s)", alias, strings.Join(modelAliases, ", "))
}
