package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// WhisperSettings configures the transcription engine.
type WhisperSettings struct {
	// Engine selects the adapter: "whisper_cpp" or "openai".
	Engine     string `yaml:"engine" validate:"oneof=whisper_cpp openai"`
	BinaryPath string `yaml:"binary_path"`
	ModelDir   string `yaml:"model_dir"`
	Language   string `yaml:"language"`
}

// ExtractionSettings configures PDF extraction and the OCR fallback.
type ExtractionSettings struct {
	// MinDirectChars is the direct-extraction length below which OCR is
	// also attempted. Heuristic, not an invariant.
	MinDirectChars int    `yaml:"min_direct_chars" validate:"min=0"`
	OCREndpoint    string `yaml:"ocr_endpoint" validate:"omitempty,url"`
	OCRModel       string `yaml:"ocr_model"`
}

// SummarizeSettings configures the note-generation providers.
type SummarizeSettings struct {
	GeminiModel     string `yaml:"gemini_model"`
	MistralModel    string `yaml:"mistral_model"`
	MistralEndpoint string `yaml:"mistral_endpoint" validate:"omitempty,url"`
}

// Settings is the full application configuration, loadable from YAML.
type Settings struct {
	Whisper    WhisperSettings    `yaml:"whisper"`
	Extraction ExtractionSettings `yaml:"extraction"`
	Summarize  SummarizeSettings  `yaml:"summarize"`
}

// Default returns the settings used when no file is provided.
func Default() Settings {
	return Settings{
		Whisper: WhisperSettings{
			Engine:     "whisper_cpp",
			BinaryPath: os.Getenv("WHISPER_CPP_BINARY"),
			ModelDir:   os.Getenv("WHISPER_CPP_MODEL_DIR"),
			Language:   "auto",
		},
		Extraction: ExtractionSettings{
			MinDirectChars: 200,
			OCREndpoint:    "https://api.mistral.ai",
			OCRModel:       "mistral-ocr-latest",
		},
		Summarize: SummarizeSettings{
			GeminiModel:     "gemini-2.5-pro",
			MistralModel:    "mistral-medium",
			MistralEndpoint: "https://api.mistral.ai/v1/chat/completions",
		},
	}
}

// Load reads settings from a YAML file, layered over defaults, and
// validates the result. An empty path returns validated defaults.
func Load(path string) (Settings, error) {
	settings := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("read settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return Settings{}, fmt.Errorf("parse settings file: %w", err)
		}
	}

	if err := validator.New().Struct(settings); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}
