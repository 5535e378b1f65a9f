// Package gemini implements the Transcriber interface on the Google
// Gemini API. Audio is submitted inline with the prompt; nothing is
// uploaded to intermediate storage.
package gemini

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"gemini-transcribe/internal/app/audio"
	"gemini-transcribe/internal/app/errors"
	"gemini-transcribe/internal/app/model"
)

// Config represents configuration for the Gemini transcription client
type Config struct {
	APIKey string
	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string
}

// Transcriber calls the Gemini API. It implements api.Transcriber.
type Transcriber struct {
	client *genai.Client
	logger *zap.Logger
}

// NewTranscriber creates a Gemini-backed transcriber
func NewTranscriber(ctx context.Context, config Config, logger *zap.Logger) (*Transcriber, error) {
	if config.APIKey == "" {
		return nil, errors.NewConfigError("Gemini API key is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindConfig, "create Gemini client")
	}

	return &Transcriber{client: client, logger: logger}, nil
}

// Transcribe reads the audio file and submits it with the transcription
// prompt. It returns the raw transcript text; cleanup is the caller's
// concern.
func (t *Transcriber) Transcribe(ctx context.Context, request *model.TranscriptionRequest) (*model.TranscriptionResult, error) {
	data, err := os.ReadFile(request.AudioPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindIO, "read audio file %q", request.AudioPath)
	}

	mimeType := audio.MimeType(request.AudioPath)
	modelID := ResolveModel(request.Model)

	t.logger.Info("submitting audio for transcription",
		zap.String("model", modelID),
		zap.String("mime_type", mimeType),
		zap.Int("bytes", len(data)))

	if request.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, request.Timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcriptionPrompt),
			genai.NewPartFromBytes(data, mimeType),
		}, genai.RoleUser),
	}

	start := time.Now()
	response, err := t.client.Models.GenerateContent(ctx, modelID, contents, &genai.GenerateContentConfig{
		SafetySettings: safetySettings(),
	})
	if err != nil {
		return nil, classifyAPIError(err)
	}

	t.logger.Debug("model responded", zap.Duration("elapsed", time.Since(start)))

	if blockErr := t.blockedError(response); blockErr != nil {
		return nil, blockErr
	}

	text := extractText(response)
	if text == "" {
		return nil, errors.NewContentBlockedError("response contained no transcription text")
	}

	return &model.TranscriptionResult{Text: text, ModelUsed: modelID}, nil
}
