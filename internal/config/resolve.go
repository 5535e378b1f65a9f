package config

import (
	"gemini-transcribe/internal/app/errors"
)

// Resolve merges command-line flag values over settings-file values:
// a flag that was set wins, an unset flag falls through to the setting
// underneath it. timeoutSet reports whether --timeout was given on the
// command line; an explicit value must pass the timeout check, unlike
// the zero value an absent flag leaves behind.
func Resolve(settings Settings, modelFlag, outputFlag string, timeoutSecFlag int, timeoutSet bool) (Settings, error) {
	resolved := settings

	if modelFlag != "" {
		resolved.DefaultModel = modelFlag
	}
	if outputFlag != "" {
		resolved.OutputDir = outputFlag
	}
	if timeoutSet {
		resolved.TimeoutSec = timeoutSecFlag
		if err := ValidateTimeout(resolved.Timeout(), "request"); err != nil {
			return resolved, errors.Wrap(err, errors.KindConfig, "invalid --timeout value")
		}
	}

	return resolved, nil
}
