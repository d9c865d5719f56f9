package extract

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deepnotes/internal/app"
	"deepnotes/internal/app/document"
	"deepnotes/internal/app/event"
	"deepnotes/internal/app/logger"
	"deepnotes/internal/app/model"
	"deepnotes/internal/config"
)

var (
	pdfPath      string
	outputPath   string
	ocrMode      string
	ocrLanguage  string
	mistralKey   string
	settingsPath string
)

func init() {
	Cmd.Flags().StringVar(&pdfPath, "pdf", "", "PDF file to extract text from")
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the extracted text to a file instead of stdout")
	Cmd.Flags().StringVar(&ocrMode, "ocr", "auto", "extraction mode: auto (OCR only when needed) or force")
	Cmd.Flags().StringVar(&ocrLanguage, "lang", "", "OCR language hint, e.g. en or de")
	Cmd.Flags().StringVar(&mistralKey, "mistral-key", "", "Mistral API key for OCR (defaults to MISTRAL_API_KEY)")
	Cmd.Flags().StringVarP(&settingsPath, "config", "c", "", "settings file (YAML), defaults are used when omitted")

	Cmd.MarkFlagRequired("pdf")
}

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract text from a PDF without generating notes",
	Long: `Extract text from a PDF slide deck and print it.

Digital PDFs are read directly; scanned decks fall back to OCR, which
requires a Mistral API key.`,
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

		creds := config.ResolveCredentials(model.Credentials{MistralKey: mistralKey})
		extractor := app.NewExtractor(settings, creds, log)

		extracted, err := extractor.Extract(cmd.Context(), pdfPath, document.Options{
			Mode:     mode,
			Language: ocrLanguage,
		}, event.NewConsoleSink(log))
		if err != nil {
			return err
		}

		log.Info("extraction finished",
			zap.String("produced_by", string(extracted.ProducedBy)),
			zap.Int("characters", len(extracted.Content)),
		)

		if outputPath == "" {
			fmt.Println(extracted.Content)
			return nil
		}
		return os.WriteFile(outputPath, []byte(extracted.Content), 0o644)
	},
}
