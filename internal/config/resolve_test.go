package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemini-transcribe/internal/app/errors"
)

func TestResolve(t *testing.T) {
	fileSettings := Settings{DefaultModel: "pro", OutputDir: "archive", TimeoutSec: 120}

	testCases := []struct {
		name          string
		settings      Settings
		modelFlag     string
		outputFlag    string
		timeoutFlag   int
		timeoutSet    bool
		want          Settings
		expectError   bool
		errorContains string
	}{
		{
			name:     "no flags keep settings",
			settings: fileSettings,
			want:     fileSettings,
		},
		{
			name:      "model flag wins",
			settings:  fileSettings,
			modelFlag: "flash",
			want:      Settings{DefaultModel: "flash", OutputDir: "archive", TimeoutSec: 120},
		},
		{
			name:       "output flag wins",
			settings:   fileSettings,
			outputFlag: "out",
			want:       Settings{DefaultModel: "pro", OutputDir: "out", TimeoutSec: 120},
		},
		{
			name:        "timeout flag wins",
			settings:    fileSettings,
			timeoutFlag: 60,
			timeoutSet:  true,
			want:        Settings{DefaultModel: "pro", OutputDir: "archive", TimeoutSec: 60},
		},
		{
			name:        "all flags win together",
			settings:    fileSettings,
			modelFlag:   "flash",
			outputFlag:  "out",
			timeoutFlag: 60,
			timeoutSet:  true,
			want:        Settings{DefaultModel: "flash", OutputDir: "out", TimeoutSec: 60},
		},
		{
			name:     "unset flags fall through to built-ins",
			settings: DefaultSettings(),
			want:     DefaultSettings(),
		},
		{
			name:          "explicit zero timeout rejected",
			settings:      fileSettings,
			timeoutFlag:   0,
			timeoutSet:    true,
			expectError:   true,
			errorContains: "timeout must be positive",
		},
		{
			name:          "negative timeout rejected",
			settings:      fileSettings,
			timeoutFlag:   -5,
			timeoutSet:    true,
			expectError:   true,
			errorContains: "timeout must be positive",
		},
		{
			name:          "oversized timeout rejected",
			settings:      fileSettings,
			timeoutFlag:   7200,
			timeoutSet:    true,
			expectError:   true,
			errorContains: "too large",
		},
		{
			// zero without the flag set is just the flag's zero value
			name:        "unset timeout flag ignored",
			settings:    fileSettings,
			timeoutFlag: 0,
			want:        fileSettings,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolved, err := Resolve(tc.settings, tc.modelFlag, tc.outputFlag, tc.timeoutFlag, tc.timeoutSet)

			if tc.expectError {
				require.Error(t, err)
				assert.True(t, errors.IsConfig(err))
				assert.Contains(t, err.Error(), tc.errorContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, resolved)
			}
		})
	}
}

func TestResolveTimeoutDuration(t *testing.T) {
	resolved, err := Resolve(DefaultSettings(), "", "", 45, true)

	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, resolved.Timeout())
}
