//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"gemini-transcribe/internal/app/api"
	"gemini-transcribe/internal/app/api/gemini"
	"gemini-transcribe/internal/app/converter"
	"gemini-transcribe/internal/config"
)

// provideTranscriber builds the Gemini-backed transcriber from the
// resolved configuration.
func provideTranscriber(ctx context.Context, cfg *config.Config, logger *zap.Logger) (api.Transcriber, error) {
	return gemini.NewTranscriber(ctx, gemini.Config{APIKey: cfg.APIKey}, logger)
}

// InitializeConverter assembles the transcription pipeline.
func InitializeConverter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*converter.Converter, error) {
	wire.Build(converter.NewConverter, provideTranscriber)
	return nil, nil
}
