package summarize

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"deepnotes/internal/app/errors"
	"deepnotes/internal/app/event"
)

// Engine applies the provider failover policy: providers are tried in
// their configured order and the first accepted response wins. The engine
// never inspects provider-specific response fields.
type Engine struct {
	providers []Provider
	logger    *zap.Logger
}

// NewEngine creates an engine over an ordered provider list.
func NewEngine(logger *zap.Logger, providers ...Provider) *Engine {
	return &Engine{providers: providers, logger: logger}
}

// Summarize builds the shared prompt from the available sources and runs
// the failover. Returns ErrMissingCredentials when no provider is
// configured and ErrSummarizationFailed when all providers are exhausted.
func (e *Engine) Summarize(ctx context.Context, videoText, pdfText string, sink event.Sink) (string, error) {
	if len(e.providers) == 0 {
		return "", errors.ErrMissingCredentials
	}

	prompt := BuildPrompt(videoText, pdfText)

	var lastErr error
	for _, provider := range e.providers {
		sink.Emit(event.Status(fmt.Sprintf("generating notes with %s", provider.Name())))

		notes, err := provider.Summarize(ctx, prompt)
		if err != nil {
			lastErr = err
			e.logger.Warn("summarization provider failed",
				zap.String("provider", provider.Name()),
				zap.Error(err))
			sink.Emit(event.Warning(fmt.Sprintf("%s failed: %v", provider.Name(), err)))
			continue
		}

		sink.Emit(event.Status(fmt.Sprintf("notes generated with %s", provider.Name())))
		return notes, nil
	}

	return "", errors.WrapSentinel(errors.ErrSummarizationFailed, lastErr)
}
