// Package testutil provides configurable capability fakes for pipeline
// tests. Each mock counts its calls so tests can assert which
// capabilities were consulted.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"deepnotes/internal/app/document"
	"deepnotes/internal/app/event"
	"deepnotes/internal/app/model"
)

// MockTranscoder simulates ffmpeg audio extraction by creating a real
// temp file, so cleanup behavior is observable.
type MockTranscoder struct {
	mu        sync.Mutex
	Err       error
	CallCount int
	// LastWavPath is the temp file produced by the most recent call.
	LastWavPath string
}

func (m *MockTranscoder) ExtractWav(videoPath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	if m.Err != nil {
		return "", m.Err
	}

	path := filepath.Join(os.TempDir(), "deepnotes-test-"+uuid.NewString()+".wav")
	if err := os.WriteFile(path, []byte("RIFF"), 0o644); err != nil {
		return "", err
	}
	m.LastWavPath = path
	return path, nil
}

// MockTranscriber returns a fixed transcript.
type MockTranscriber struct {
	mu        sync.Mutex
	Result    model.Transcript
	Err       error
	CallCount int
	// LastAudioPath records the file handed to the engine.
	LastAudioPath string
	LastModel     model.ModelSize
}

func (m *MockTranscriber) Transcript(_ context.Context, audioPath string, size model.ModelSize) (model.Transcript, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastAudioPath = audioPath
	m.LastModel = size
	if m.Err != nil {
		return model.Transcript{}, m.Err
	}
	return m.Result, nil
}

// MockExtractor returns a fixed extraction result.
type MockExtractor struct {
	mu        sync.Mutex
	Result    model.ExtractedText
	Err       error
	CallCount int
	LastOpts  document.Options
}

func (m *MockExtractor) Extract(_ context.Context, _ string, opts document.Options, _ event.Sink) (model.ExtractedText, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastOpts = opts
	if m.Err != nil {
		return model.ExtractedText{}, m.Err
	}
	return m.Result, nil
}

// MockSummarizer returns fixed notes and records the texts it received.
type MockSummarizer struct {
	mu            sync.Mutex
	Notes         string
	Err           error
	CallCount     int
	LastVideoText string
	LastPDFText   string
}

func (m *MockSummarizer) Summarize(_ context.Context, videoText, pdfText string, _ event.Sink) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastVideoText = videoText
	m.LastPDFText = pdfText
	if m.Err != nil {
		return "", m.Err
	}
	return m.Notes, nil
}
