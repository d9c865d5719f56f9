package model

// ModelSize selects the Whisper model used for transcription.
type ModelSize string

const (
	ModelTiny   ModelSize = "tiny"
	ModelBase   ModelSize = "base"
	ModelSmall  ModelSize = "small"
	ModelMedium ModelSize = "medium"
	ModelLarge  ModelSize = "large"
)

// Valid reports whether s is one of the known model sizes.
func (s ModelSize) Valid() bool {
	switch s {
	case ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge:
		return true
	}
	return false
}

// OCRMode controls how PDF text is obtained.
type OCRMode string

const (
	// OCRAuto tries the text layer first and falls back to OCR when the
	// direct result is missing or too thin.
	OCRAuto OCRMode = "auto"
	// OCRForce skips direct extraction entirely.
	OCRForce OCRMode = "force"
)

// Credentials holds the per-request provider secrets. Either field may be
// empty; explicit values take priority over environment configuration.
type Credentials struct {
	GeminiKey  string
	MistralKey string
}

// Empty reports whether no credential is present.
func (c Credentials) Empty() bool {
	return c.GeminiKey == "" && c.MistralKey == ""
}

// ProcessingRequest describes one notes-generation run. At least one of
// VideoPath/PDFPath must be set.
type ProcessingRequest struct {
	VideoPath string `validate:"required_without=PDFPath,omitempty"`
	PDFPath   string `validate:"required_without=VideoPath,omitempty"`

	WhisperModel ModelSize `validate:"omitempty,oneof=tiny base small medium large"`
	OCRMode      OCRMode   `validate:"omitempty,oneof=auto force"`
	OCRLanguage  string

	Credentials Credentials
}

// HasInput reports whether at least one source path is set.
func (r ProcessingRequest) HasInput() bool {
	return r.VideoPath != "" || r.PDFPath != ""
}
