package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"deepnotes/internal/app"
	"deepnotes/internal/app/event"
	"deepnotes/internal/app/logger"
	"deepnotes/internal/app/model"
	"deepnotes/internal/app/notes"
	"deepnotes/internal/config"
)

var (
	videoPath    string
	pdfPath      string
	outputPath   string
	whisperModel string
	ocrMode      string
	ocrLanguage  string
	geminiKey    string
	mistralKey   string
	settingsPath string
	showProgress bool
)

func init() {
	Cmd.Flags().StringVar(&videoPath, "video", "", "lecture recording to transcribe (mp4, mkv, ...)")
	Cmd.Flags().StringVar(&pdfPath, "pdf", "", "slide deck to extract text from")
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "notes.txt", "file the generated notes are written to")
	Cmd.Flags().StringVarP(&whisperModel, "model", "m", "base", "Whisper model size: tiny, base, small, medium or large")
	Cmd.Flags().StringVar(&ocrMode, "ocr", "auto", "PDF extraction mode: auto (OCR only when needed) or force")
	Cmd.Flags().StringVar(&ocrLanguage, "lang", "", "OCR language hint, e.g. en or de")
	Cmd.Flags().StringVar(&geminiKey, "gemini-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	Cmd.Flags().StringVar(&mistralKey, "mistral-key", "", "Mistral API key (defaults to MISTRAL_API_KEY)")
	Cmd.Flags().StringVarP(&settingsPath, "config", "c", "", "settings file (YAML), defaults are used when omitted")
	Cmd.Flags().BoolVar(&showProgress, "progress", true, "show a progress bar instead of per-step output")
}

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate lecture notes from a recording and/or a slide deck",
	Long: `Generate lecture notes from a lecture recording and/or a PDF slide deck.

- The recording is transcribed with Whisper
- The PDF is read directly, falling back to OCR for scanned decks
- The combined text is summarized into markdown notes, trying Gemini
  first and falling back to Mistral`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		log := logger.MustNew(verbose)
		defer log.Sync()

		settings, err := config.Load(settingsPath)
		if err != nil {
			return err
		}

		mode := model.OCRMode(ocrMode)
		if mode != model.OCRAuto && mode != model.OCRForce {
			return fmt.Errorf("invalid --ocr value %q (want auto or force)", ocrMode)
		}

		creds := config.ResolveCredentials(model.Credentials{
			GeminiKey:  geminiKey,
			MistralKey: mistralKey,
		})

		req := model.ProcessingRequest{
			VideoPath:    videoPath,
			PDFPath:      pdfPath,
			WhisperModel: model.ModelSize(whisperModel),
			OCRMode:      mode,
			OCRLanguage:  ocrLanguage,
			Credentials:  creds,
		}

		orchestrator := app.InitializeOrchestrator(settings, creds, log)

		var sink event.Sink = event.NewConsoleSink(log)
		if showProgress && !verbose {
			progress := newProgress(estimateSteps(req), sink)
			defer progress.Wait()
			sink = progress
		}

		result := orchestrator.Run(cmd.Context(), req, sink)
		if !result.OK() {
			return result.Err
		}

		saved, err := notes.Save(result.Summary, outputPath)
		if err != nil {
			return err
		}

		fmt.Printf("notes written to %s\n", saved)
		return nil
	},
}

// estimateSteps predicts how many status events a run will emit, so
// the progress bar has a meaningful total. The bar self-corrects when
// the run emits more.
func estimateSteps(req model.ProcessingRequest) int64 {
	var steps int64 = 1 // at least one summarization attempt
	if req.VideoPath != "" {
		steps += 4
	} else {
		steps++
	}
	if req.PDFPath != "" {
		steps += 2
	} else {
		steps++
	}
	return steps
}
