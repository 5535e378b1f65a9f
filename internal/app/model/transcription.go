package model

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"gemini-transcribe/internal/app/errors"
)

var validate = validator.New()

// TranscriptionRequest describes a single transcription run: which file to
// transcribe, which model tier to use, and where the result goes.
type TranscriptionRequest struct {
	AudioPath string        `validate:"required"`
	Model     string        `validate:"required,oneof=flash pro"`
	OutputDir string        `validate:"required"`
	Timeout   time.Duration `validate:"min=0"`
}

// Validate checks struct tags and maps violations to user-facing messages.
func (r *TranscriptionRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.KindConfig, "invalid transcription request")
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldError := range validationErrs {
		field := strings.ToLower(fieldError.Field())

		switch fieldError.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "oneof":
			messages = append(messages, field+" must be one of: "+strings.ReplaceAll(fieldError.Param(), " ", ", "))
		case "min":
			messages = append(messages, field+" is too small")
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return errors.NewConfigError("invalid transcription request: " + strings.Join(messages, "; "))
}

// TranscriptionResult is the model's answer for one audio file.
type TranscriptionResult struct {
	// Text holds the transcript. The converter rewrites it in place as
	// cleanup passes run.
	Text string
	// Speakers is the number of distinct speaker labels detected, zero
	// when the transcript carries none.
	Speakers int
	// ModelUsed is the fully qualified model identifier that produced
	// the transcript.
	ModelUsed string
}

// TranscriptDocument carries everything the markdown renderer needs.
type TranscriptDocument struct {
	SourceFile    string
	Transcribed   time.Time
	FileSizeBytes int64
	Body          string
}
