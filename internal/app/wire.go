//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"deepnotes/internal/app/model"
	"deepnotes/internal/app/pipeline"
	"deepnotes/internal/config"
)

// InitializeOrchestrator assembles the processing pipeline from
// settings and the request's resolved credentials.
func InitializeOrchestrator(settings config.Settings, creds model.Credentials, logger *zap.Logger) *pipeline.Orchestrator {
	wire.Build(
		pipeline.NewOrchestrator,
		provideTranscoder,
		provideTranscriber,
		provideExtractor,
		provideSummarizerFactory,
	)
	return &pipeline.Orchestrator{}
}
