package summarize

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "deepnotes/internal/app/errors"
	"deepnotes/internal/app/event"
)

type stubProvider struct {
	name   string
	result string
	err    error
	calls  int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Summarize(_ context.Context, _ string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.result, nil
}

func TestFirstProviderWins(t *testing.T) {
	a := &stubProvider{name: "gemini", result: "# Notes A"}
	b := &stubProvider{name: "mistral", result: "# Notes B"}
	engine := NewEngine(zap.NewNop(), a, b)

	notes, err := engine.Summarize(context.Background(), "transcript", "", event.Discard)
	require.NoError(t, err)
	assert.Equal(t, "# Notes A", notes)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 0, b.calls, "second provider is not consulted on success")
}

func TestFailoverOnProviderError(t *testing.T) {
	a := &stubProvider{name: "gemini", err: fmt.Errorf("request blocked by Gemini safety filter: SAFETY")}
	b := &stubProvider{name: "mistral", result: "# Fallback notes"}
	engine := NewEngine(zap.NewNop(), a, b)

	sink := event.NewMemorySink()
	notes, err := engine.Summarize(context.Background(), "transcript", "slides", sink)
	require.NoError(t, err)
	assert.Equal(t, "# Fallback notes", notes)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)

	var sawWarning bool
	for _, ev := range sink.Events() {
		if ev.Kind == event.KindWarning {
			sawWarning = true
		}
	}
	assert.True(t, sawWarning, "provider failure is reported as a warning, not a terminal error")
}

func TestAllProvidersExhausted(t *testing.T) {
	a := &stubProvider{name: "gemini", err: fmt.Errorf("timeout")}
	b := &stubProvider{name: "mistral", err: fmt.Errorf("status 500")}
	engine := NewEngine(zap.NewNop(), a, b)

	_, err := engine.Summarize(context.Background(), "t", "", event.Discard)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, apperrors.ErrSummarizationFailed))
	assert.Contains(t, err.Error(), "status 500", "last provider error is preserved")
}

func TestSingleProviderFailureDoesNotInventFallback(t *testing.T) {
	a := &stubProvider{name: "gemini", err: fmt.Errorf("blocked")}
	engine := NewEngine(zap.NewNop(), a)

	_, err := engine.Summarize(context.Background(), "t", "", event.Discard)
	assert.True(t, stderrors.Is(err, apperrors.ErrSummarizationFailed))
	assert.Equal(t, 1, a.calls)
}

func TestNoProvidersMeansMissingCredentials(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	_, err := engine.Summarize(context.Background(), "t", "", event.Discard)
	assert.True(t, stderrors.Is(err, apperrors.ErrMissingCredentials))
}

func TestBuildPromptIncludesOnlyAvailableSources(t *testing.T) {
	both := BuildPrompt("spoken words", "written words")
	assert.Contains(t, both, "Video Transcript")
	assert.Contains(t, both, "spoken words")
	assert.Contains(t, both, "PDF Text")
	assert.Contains(t, both, "written words")

	videoOnly := BuildPrompt("spoken words", "")
	assert.Contains(t, videoOnly, "spoken words")
	assert.NotContains(t, videoOnly, "--- PDF Text ---")

	pdfOnly := BuildPrompt("", "written words")
	assert.NotContains(t, pdfOnly, "--- Video Transcript ---")
	assert.Contains(t, pdfOnly, "written words")
}
