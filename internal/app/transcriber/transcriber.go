package transcriber

import (
	"context"

	"deepnotes/internal/app/model"
)

// Transcriber converts a prepared audio file to plain text. The audio is
// expected to be mono 16 kHz WAV; size selects the Whisper model.
type Transcriber interface {
	Transcript(ctx context.Context, audioPath string, size model.ModelSize) (model.Transcript, error)
}
