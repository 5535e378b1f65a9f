package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemini-transcribe/internal/app/errors"
)

func TestTranscriptionRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     TranscriptionRequest
		wantErr string
	}{
		{
			name: "valid flash request",
			req:  TranscriptionRequest{AudioPath: "talk.mp3", Model: "flash", OutputDir: "transcripts"},
		},
		{
			name: "valid pro request with timeout",
			req:  TranscriptionRequest{AudioPath: "talk.mp3", Model: "pro", OutputDir: "out", Timeout: 5 * time.Minute},
		},
		{
			name:    "missing audio path",
			req:     TranscriptionRequest{Model: "flash", OutputDir: "out"},
			wantErr: "audiopath is required",
		},
		{
			name:    "unknown model alias",
			req:     TranscriptionRequest{AudioPath: "talk.mp3", Model: "turbo", OutputDir: "out"},
			wantErr: "model must be one of: flash, pro",
		},
		{
			name:    "missing output dir",
			req:     TranscriptionRequest{AudioPath: "talk.mp3", Model: "flash"},
			wantErr: "outputdir is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsConfig(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTranscriptionRequestValidateCollectsAllViolations(t *testing.T) {
	req := TranscriptionRequest{Model: "turbo"}

	err := req.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "audiopath is required")
	assert.Contains(t, err.Error(), "model must be one of")
	assert.Contains(t, err.Error(), "outputdir is required")
}
