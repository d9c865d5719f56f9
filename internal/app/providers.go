package app

import (
	"os"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"deepnotes/internal/app/audio"
	"deepnotes/internal/app/document"
	"deepnotes/internal/app/model"
	"deepnotes/internal/app/pipeline"
	"deepnotes/internal/app/summarize"
	"deepnotes/internal/app/transcriber"
	"deepnotes/internal/config"
)

func provideTranscoder() pipeline.Transcoder {
	return pipeline.TranscoderFunc(audio.ExtractWav)
}

// NewTranscriber exposes the configured transcription engine for
// commands that bypass the full pipeline.
func NewTranscriber(settings config.Settings, logger *zap.Logger) transcriber.Transcriber {
	return provideTranscriber(settings, logger)
}

// NewExtractor exposes the configured PDF extractor for commands that
// bypass the full pipeline.
func NewExtractor(settings config.Settings, creds model.Credentials, logger *zap.Logger) pipeline.Extractor {
	return provideExtractor(settings, creds, logger)
}

// provideTranscriber selects the engine configured in settings. The
// remote engine reads OPENAI_API_KEY from the environment, like the
// rest of the credential surface.
func provideTranscriber(settings config.Settings, logger *zap.Logger) transcriber.Transcriber {
	if settings.Whisper.Engine == "openai" {
		return transcriber.NewRemoteTranscriber(openai.NewClient(os.Getenv("OPENAI_API_KEY")), logger)
	}
	return transcriber.NewLocalTranscriber(
		settings.Whisper.BinaryPath,
		settings.Whisper.ModelDir,
		settings.Whisper.Language,
		logger,
	)
}

func provideExtractor(settings config.Settings, creds model.Credentials, logger *zap.Logger) pipeline.Extractor {
	ocr := document.NewMistralOCR(
		settings.Extraction.OCREndpoint,
		creds.MistralKey,
		settings.Extraction.OCRModel,
		logger,
	)
	return document.NewExtractor(ocr, settings.Extraction.MinDirectChars, logger)
}

// provideSummarizerFactory builds the provider chain per request, so a
// request's credentials decide which providers participate. Order is
// fixed: Gemini first, then Mistral.
func provideSummarizerFactory(settings config.Settings, logger *zap.Logger) pipeline.SummarizerFactory {
	return func(creds model.Credentials) pipeline.Summarizer {
		var providers []summarize.Provider
		if creds.GeminiKey != "" {
			providers = append(providers, summarize.NewGeminiProvider(creds.GeminiKey, settings.Summarize.GeminiModel, logger))
		}
		if creds.MistralKey != "" {
			providers = append(providers, summarize.NewMistralProvider(settings.Summarize.MistralEndpoint, creds.MistralKey, settings.Summarize.MistralModel, logger))
		}
		return summarize.NewEngine(logger, providers...)
	}
}
