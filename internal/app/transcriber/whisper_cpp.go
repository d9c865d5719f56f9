package transcriber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"deepnotes/internal/app/model"
	"deepnotes/internal/app/util/files"
)

var detectedLangRe = regexp.MustCompile(`auto-detected language:\s*([a-z]{2})`)

// LocalTranscriber runs a local whisper.cpp binary. The model size maps
// to a ggml model file under modelDir (ggml-tiny.bin .. ggml-large.bin).
type LocalTranscriber struct {
	binaryPath string
	modelDir   string
	language   string
	logger     *zap.Logger
}

// NewLocalTranscriber creates a whisper.cpp backed transcriber.
func NewLocalTranscriber(binaryPath, modelDir, language string, logger *zap.Logger) *LocalTranscriber {
	if language == "" {
		language = "auto"
	}
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelDir:   modelDir,
		language:   language,
		logger:     logger,
	}
}

// ModelPath returns the ggml model file for a size selector.
func (lt *LocalTranscriber) ModelPath(size model.ModelSize) string {
	if !size.Valid() {
		size = model.ModelBase
	}
	return filepath.Join(lt.modelDir, fmt.Sprintf("ggml-%s.bin", size))
}

// Transcript runs whisper.cpp on the given WAV file and returns the
// concatenated text without timestamps.
func (lt *LocalTranscriber) Transcript(ctx context.Context, audioPath string, size model.ModelSize) (model.Transcript, error) {
	modelPath := lt.ModelPath(size)
	if _, err := os.Stat(modelPath); err != nil {
		return model.Transcript{}, fmt.Errorf("whisper model %q not found: %w", modelPath, err)
	}

	outputBase := filepath.Join(os.TempDir(), "deepnotes-whisper-"+uuid.NewString())

	args := []string{
		"-m", modelPath,
		"-l", lt.language,
		"-otxt",
		"-f", audioPath,
		"-of", outputBase,
	}

	command := exec.CommandContext(ctx, lt.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	lt.logger.Debug("running whisper.cpp",
		zap.String("binary", lt.binaryPath),
		zap.String("model", modelPath),
		zap.String("args", strings.Join(args, " ")))

	if err := command.Run(); err != nil {
		return model.Transcript{}, fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String())
	}

	outputFile := outputBase + ".txt"
	defer os.Remove(outputFile)

	text, err := files.ReadOutputFile(outputFile)
	if err != nil {
		return model.Transcript{}, fmt.Errorf("failed to read output file: %w", err)
	}

	return model.Transcript{
		Text:     text,
		Language: detectLanguage(stderr.String(), lt.language),
	}, nil
}

// detectLanguage pulls the auto-detected language out of the whisper.cpp
// stderr log. Falls back to the configured language.
func detectLanguage(stderrLog, configured string) string {
	if m := detectedLangRe.FindStringSubmatch(stderrLog); m != nil {
		return m[1]
	}
	if configured != "auto" {
		return configured
	}
	return ""
}
