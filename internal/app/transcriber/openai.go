package transcriber

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"deepnotes/internal/app/model"
)

// RemoteTranscriber uses the OpenAI Whisper API. The remote service runs
// one hosted model, so the size selector only affects local engines.
type RemoteTranscriber struct {
	client *openai.Client
	logger *zap.Logger
}

// NewRemoteTranscriber creates an OpenAI API backed transcriber.
func NewRemoteTranscriber(client *openai.Client, logger *zap.Logger) *RemoteTranscriber {
	return &RemoteTranscriber{client: client, logger: logger}
}

// Transcript uploads the audio file and returns the transcription text
// along with the detected language reported by the API.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, audioPath string, _ model.ModelSize) (model.Transcript, error) {
	rt.logger.Debug("requesting OpenAI transcription", zap.String("file", audioPath))

	resp, err := rt.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return model.Transcript{}, fmt.Errorf("OpenAI transcription request failed: %w", err)
	}

	return model.Transcript{
		Text:     resp.Text,
		Language: resp.Language,
	}, nil
}
