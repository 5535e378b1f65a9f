package api

import (
	"context"

	"gemini-transcribe/internal/app/model"
)

// Transcriber defines a transcription interface for converting audio files to text.
type Transcriber interface {
	Transcribe(ctx context.Context, request *model.TranscriptionRequest) (*model.TranscriptionResult, error)
}
