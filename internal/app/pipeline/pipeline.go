package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"deepnotes/internal/app/document"
	"deepnotes/internal/app/errors"
	"deepnotes/internal/app/event"
	"deepnotes/internal/app/model"
	"deepnotes/internal/app/transcriber"
	"deepnotes/internal/app/util/files"
)

// Transcoder turns a video file into a mono 16 kHz WAV file. The caller
// owns the returned path and must remove it.
type Transcoder interface {
	ExtractWav(videoPath string) (string, error)
}

// TranscoderFunc adapts a function to the Transcoder interface.
type TranscoderFunc func(videoPath string) (string, error)

func (f TranscoderFunc) ExtractWav(videoPath string) (string, error) { return f(videoPath) }

// Extractor produces text from a PDF.
type Extractor interface {
	Extract(ctx context.Context, pdfPath string, opts document.Options, sink event.Sink) (model.ExtractedText, error)
}

// Summarizer fuses the available source texts into notes.
type Summarizer interface {
	Summarize(ctx context.Context, videoText, pdfText string, sink event.Sink) (string, error)
}

// SummarizerFactory builds a Summarizer for one request's credentials.
type SummarizerFactory func(creds model.Credentials) Summarizer

// Orchestrator sequences transcription, extraction, and summarization for
// one request. It is stateless between runs; run it off the interactive
// thread, one request at a time per instance.
type Orchestrator struct {
	transcoder  Transcoder
	transcriber transcriber.Transcriber
	extractor   Extractor
	summarizer  SummarizerFactory
	logger      *zap.Logger
}

// NewOrchestrator wires the pipeline from its capabilities.
func NewOrchestrator(
	transcoder Transcoder,
	trans transcriber.Transcriber,
	extractor Extractor,
	summarizer SummarizerFactory,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		transcoder:  transcoder,
		transcriber: trans,
		extractor:   extractor,
		summarizer:  summarizer,
		logger:      logger,
	}
}

// Run executes the full pipeline. Every run emits exactly one finish
// event, carrying either the notes or a human-readable error.
func (o *Orchestrator) Run(ctx context.Context, req model.ProcessingRequest, sink event.Sink) Result {
	if sink == nil {
		sink = event.Discard
	}

	result := o.run(ctx, req, sink)

	if result.Err != nil {
		sink.Emit(event.Failed(result.Err.Error()))
	} else {
		sink.Emit(event.Finished(result.Summary))
	}

	return result
}

func (o *Orchestrator) run(ctx context.Context, req model.ProcessingRequest, sink event.Sink) Result {
	if !req.HasInput() {
		sink.Emit(event.Error("no video or PDF supplied"))
		return Failure(errors.ErrNoUsableInput)
	}

	videoText, err := o.processVideo(ctx, req, sink)
	if err != nil {
		return Failure(err)
	}

	pdfText, err := o.processPDF(ctx, req, sink)
	if err != nil {
		return Failure(err)
	}

	if videoText == "" && pdfText == "" {
		sink.Emit(event.Error("no usable text produced from the supplied files"))
		return Failure(errors.ErrNoUsableInput)
	}

	if req.Credentials.Empty() {
		sink.Emit(event.Error("no API credentials available for note generation"))
		return Failure(errors.ErrMissingCredentials)
	}

	summary, err := o.summarizer(req.Credentials).Summarize(ctx, videoText, pdfText, sink)
	if err != nil {
		return Failure(err)
	}

	return Success(summary)
}

// processVideo runs the transcode+transcribe branch. A missing file
// degrades to an empty transcript; a transcode or transcription failure
// aborts, since the video was explicitly requested.
func (o *Orchestrator) processVideo(ctx context.Context, req model.ProcessingRequest, sink event.Sink) (string, error) {
	if req.VideoPath == "" {
		sink.Emit(event.Status("no video supplied, skipping transcription"))
		return "", nil
	}

	if !files.Exists(req.VideoPath) {
		sink.Emit(event.Error(fmt.Sprintf("video file not found: %s", req.VideoPath)))
		return "", nil
	}

	size := req.WhisperModel
	if !size.Valid() {
		size = model.ModelBase
	}

	sink.Emit(event.Status(fmt.Sprintf("processing video %s with Whisper model %q", filepath.Base(req.VideoPath), size)))
	sink.Emit(event.Status("extracting audio track"))

	wavPath, err := o.transcoder.ExtractWav(req.VideoPath)
	if err != nil {
		sink.Emit(event.Error(fmt.Sprintf("audio extraction failed: %v", err)))
		return "", errors.WrapSentinel(errors.ErrTranscodeFailed, err)
	}
	// The temporary audio artifact must not survive any exit path.
	defer func() {
		if rmErr := os.Remove(wavPath); rmErr != nil && !os.IsNotExist(rmErr) {
			o.logger.Warn("failed to remove temporary audio file", zap.String("path", wavPath), zap.Error(rmErr))
		}
	}()

	sink.Emit(event.Status("audio extraction completed, starting transcription"))

	transcript, err := o.transcriber.Transcript(ctx, wavPath, size)
	if err != nil {
		sink.Emit(event.Error(fmt.Sprintf("transcription failed: %v", err)))
		return "", errors.WrapSentinel(errors.ErrTranscriptionFailed, err)
	}

	if transcript.Language != "" {
		sink.Emit(event.Debug(fmt.Sprintf("detected language: %s", transcript.Language)))
	}
	sink.Emit(event.Status("video transcription completed"))

	return transcript.Text, nil
}

// processPDF runs the extraction branch under the same degradation
// policy as the video branch.
func (o *Orchestrator) processPDF(ctx context.Context, req model.ProcessingRequest, sink event.Sink) (string, error) {
	if req.PDFPath == "" {
		sink.Emit(event.Status("no PDF supplied, skipping extraction"))
		return "", nil
	}

	if !files.Exists(req.PDFPath) {
		sink.Emit(event.Error(fmt.Sprintf("PDF file not found: %s", req.PDFPath)))
		return "", nil
	}

	sink.Emit(event.Status(fmt.Sprintf("processing PDF %s", filepath.Base(req.PDFPath))))

	extracted, err := o.extractor.Extract(ctx, req.PDFPath, document.Options{
		Mode:     req.OCRMode,
		Language: req.OCRLanguage,
	}, sink)
	if err != nil {
		sink.Emit(event.Error(fmt.Sprintf("PDF extraction failed: %v", err)))
		return "", err
	}

	sink.Emit(event.Status(fmt.Sprintf("PDF extraction completed (%d characters, %s)", len(extracted.Content), extracted.ProducedBy)))

	return extracted.Content, nil
}
