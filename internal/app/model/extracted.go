package model

// Source identifies which input a piece of text came from.
type Source string

const (
	SourceVideo Source = "video"
	SourcePDF   Source = "pdf"
)

// Producer identifies the capability that produced a piece of text.
type Producer string

const (
	ProducedByDirect        Producer = "direct"
	ProducedByOCR           Producer = "ocr"
	ProducedByTranscription Producer = "transcription"
)

// ExtractedText is one immutable extraction result. An empty Content is a
// valid "no content" value, distinct from the file being absent and from
// extraction failing.
type ExtractedText struct {
	Source     Source
	Content    string
	ProducedBy Producer
}

// Transcript is the transcription engine output. Language carries the
// detected-language metadata when the engine exposes it.
type Transcript struct {
	Text     string
	Language string
}
