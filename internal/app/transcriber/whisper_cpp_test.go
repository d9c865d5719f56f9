package transcriber

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"deepnotes/internal/app/model"
)

func TestModelPathMapping(t *testing.T) {
	lt := NewLocalTranscriber("/usr/local/bin/whisper", "/models", "auto", zap.NewNop())

	tests := []struct {
		size model.ModelSize
		want string
	}{
		{model.ModelTiny, "ggml-tiny.bin"},
		{model.ModelBase, "ggml-base.bin"},
		{model.ModelSmall, "ggml-small.bin"},
		{model.ModelMedium, "ggml-medium.bin"},
		{model.ModelLarge, "ggml-large.bin"},
		{model.ModelSize("bogus"), "ggml-base.bin"},
	}

	for _, tt := range tests {
		assert.Equal(t, filepath.Join("/models", tt.want), lt.ModelPath(tt.size))
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name       string
		stderrLog  string
		configured string
		want       string
	}{
		{
			name:       "parses_whisper_log",
			stderrLog:  "whisper_init ...\nauto-detected language: en (p = 0.97)\n",
			configured: "auto",
			want:       "en",
		},
		{
			name:       "falls_back_to_configured",
			stderrLog:  "no detection line",
			configured: "it",
			want:       "it",
		},
		{
			name:       "auto_without_detection_is_unknown",
			stderrLog:  "",
			configured: "auto",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectLanguage(tt.stderrLog, tt.configured))
		})
	}
}

func TestTranscriptMissingModel(t *testing.T) {
	lt := NewLocalTranscriber("/usr/local/bin/whisper", t.TempDir(), "auto", zap.NewNop())

	_, err := lt.Transcript(context.Background(), "audio.wav", model.ModelBase)
	assert.ErrorContains(t, err, "not found")
}
