package converter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gemini-transcribe/internal/app/api"
	"gemini-transcribe/internal/app/audio"
	"gemini-transcribe/internal/app/errors"
	"gemini-transcribe/internal/app/model"
	"gemini-transcribe/internal/app/output"
	"gemini-transcribe/internal/app/transcript"
	"gemini-transcribe/internal/app/util/files"
)

// previewLimit is how many characters of the transcript are echoed to
// stdout after a successful run.
const previewLimit = 200

// Converter drives a transcription end to end: validate the request,
// send the audio to the transcriber, post-process the returned text and
// save it as a markdown document.
type Converter struct {
	transcriber api.Transcriber
	logger      *zap.Logger
	progress    ProgressConfig
}

func NewConverter(transcriber api.Transcriber, logger *zap.Logger) *Converter {
	return &Converter{
		transcriber: transcriber,
		logger:      logger,
		progress:    ProgressConfig{Enabled: ShouldShowProgress(false)},
	}
}

// Do transcribes a single audio file and returns the path of the
// written transcript.
func (c *Converter) Do(ctx context.Context, request *model.TranscriptionRequest) (string, error) {
	runID := uuid.New().String()
	logger := c.logger.With(zap.String("run_id", runID))

	if err := request.Validate(); err != nil {
		return "", err
	}
	if err := audio.ValidateFormat(request.AudioPath); err != nil {
		return "", err
	}
	info, err := files.StatInput(request.AudioPath)
	if err != nil {
		return "", err
	}

	logger.Info("starting transcription",
		zap.String("file", request.AudioPath),
		zap.Int64("size_bytes", info.Size()),
		zap.String("model", request.Model))

	fmt.Printf("🔄 Transcribing %s (this may take a while)...\n", filepath.Base(request.AudioPath))
	spinner := StartSpinner(c.progress, "Transcribing")

	result, err := c.transcriber.Transcribe(ctx, request)
	if err != nil {
		spinner.Abort()
		return "", err
	}
	spinner.Complete()

	result.Text = transcript.Clean(result.Text)
	result.Speakers = transcript.CountSpeakers(result.Text)
	result.Text = transcript.StripSingleSpeaker(result.Text)

	logger.Info("transcription received",
		zap.String("model_used", result.ModelUsed),
		zap.Int("speakers", result.Speakers),
		zap.Int("characters", len(result.Text)))

	if result.Text == "" {
		return "", errors.NewContentBlockedError("model returned an empty transcript")
	}

	now := time.Now()
	document := &model.TranscriptDocument{
		SourceFile:    filepath.Base(request.AudioPath),
		Transcribed:   now,
		FileSizeBytes: info.Size(),
		Body:          result.Text,
	}

	path, err := output.Write(files.AbsolutePath(request.OutputDir), transcript.Filename(result.Text, now), document)
	if err != nil {
		return "", err
	}

	logger.Info("transcript saved", zap.String("path", path))

	fmt.Printf("✅ Transcription completed\n")
	fmt.Printf("📄 Transcript saved to: %s\n", path)
	printPreview(result.Text)

	return path, nil
}

// printPreview echoes the opening of the transcript so the user can
// sanity-check the result without opening the file.
func printPreview(text string) {
	preview := text
	if runes := []rune(text); len(runes) > previewLimit {
		preview = string(runes[:previewLimit]) + "..."
	}
	divider := strings.Repeat("-", 50)
	fmt.Printf("\n📝 Preview (first %d characters):\n%s\n%s\n%s\n", previewLimit, divider, preview, divider)
}
