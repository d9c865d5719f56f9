package transcribe

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deepnotes/internal/app"
	"deepnotes/internal/app/audio"
	"deepnotes/internal/app/logger"
	"deepnotes/internal/app/model"
	"deepnotes/internal/config"
)

var (
	videoPath    string
	outputPath   string
	whisperModel string
	settingsPath string
)

func init() {
	Cmd.Flags().StringVar(&videoPath, "video", "", "recording to transcribe (mp4, mkv, ...)")
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the transcript to a file instead of stdout")
	Cmd.Flags().StringVarP(&whisperModel, "model", "m", "base", "Whisper model size: tiny, base, small, medium or large")
	Cmd.Flags().StringVarP(&settingsPath, "config", "c", "", "settings file (YAML), defaults are used when omitted")

	Cmd.MarkFlagRequired("video")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe a recording without generating notes",
	Long: `Transcribe a lecture recording and print the raw transcript.

The audio track is extracted with ffmpeg and fed to the configured
Whisper engine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		log := logger.MustNew(verbose)
		defer log.Sync()

		settings, err := config.Load(settingsPath)
		if err != nil {
			return err
		}

		wavPath, err := audio.ExtractWav(videoPath)
		if err != nil {
			return fmt.Errorf("audio extraction failed: %w", err)
		}
		defer func() {
			if rmErr := os.Remove(wavPath); rmErr != nil && !os.IsNotExist(rmErr) {
				log.Warn("failed to remove temporary audio file", zap.String("path", wavPath), zap.Error(rmErr))
			}
		}()

		engine := app.NewTranscriber(settings, log)
		transcript, err := engine.Transcript(cmd.Context(), wavPath, model.ModelSize(whisperModel))
		if err != nil {
			return fmt.Errorf("transcription failed: %w", err)
		}

		if transcript.Language != "" {
			log.Info("detected language", zap.String("language", transcript.Language))
		}

		if outputPath == "" {
			fmt.Println(transcript.Text)
			return nil
		}
		return os.WriteFile(outputPath, []byte(transcript.Text), 0o644)
	},
}
