package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"deepnotes/internal/app/errors"
	"deepnotes/internal/app/event"
	"deepnotes/internal/app/model"
)

const ocrErrorMarker = "[OCR error"

// Options controls one extraction run.
type Options struct {
	Mode     model.OCRMode
	Language string
}

// Extractor produces text from a PDF, trying the cheap text layer first
// and falling back to OCR for scanned or mostly-empty documents.
type Extractor struct {
	ocr            OCRClient
	minDirectChars int
	logger         *zap.Logger

	// directFn is swappable in tests.
	directFn func(pdfPath string) ([]string, error)
}

// NewExtractor creates an extractor. minDirectChars is the direct-text
// length below which OCR is also attempted; pass 0 to keep the default.
func NewExtractor(ocr OCRClient, minDirectChars int, logger *zap.Logger) *Extractor {
	if minDirectChars <= 0 {
		minDirectChars = 200
	}
	return &Extractor{
		ocr:            ocr,
		minDirectChars: minDirectChars,
		logger:         logger,
		directFn:       directPages,
	}
}

// Extract runs the direct-then-OCR policy and returns the winning text.
// An empty Content with a nil error means the document genuinely holds no
// recognizable text.
func (e *Extractor) Extract(ctx context.Context, pdfPath string, opts Options, sink event.Sink) (model.ExtractedText, error) {
	if opts.Mode == "" {
		opts.Mode = model.OCRAuto
	}

	directText := ""
	runOCR := opts.Mode == model.OCRForce

	if opts.Mode != model.OCRForce {
		sink.Emit(event.Status("extracting PDF text layer"))
		pages, err := e.directFn(pdfPath)
		switch {
		case err != nil:
			sink.Emit(event.Warning(fmt.Sprintf("direct extraction failed, falling back to OCR: %v", err)))
			runOCR = true
		default:
			directText = joinPages(pages)
			if len(directText) < e.minDirectChars {
				sink.Emit(event.Warning(fmt.Sprintf(
					"direct extraction produced only %d characters (< %d), trying OCR", len(directText), e.minDirectChars)))
				runOCR = true
			} else {
				sink.Emit(event.Status(fmt.Sprintf("text layer extraction succeeded (%d characters)", len(directText))))
			}
		}
	} else {
		sink.Emit(event.Status("OCR forced, skipping text layer"))
	}

	if !runOCR {
		return model.ExtractedText{
			Source:     model.SourcePDF,
			Content:    directText,
			ProducedBy: model.ProducedByDirect,
		}, nil
	}

	ocrText, err := e.runOCR(ctx, pdfPath, opts.Language, sink)
	if err != nil {
		// OCR is the fallback; keep the direct text when we have any.
		if directText != "" {
			sink.Emit(event.Warning(fmt.Sprintf("OCR failed, keeping direct text: %v", err)))
			return model.ExtractedText{
				Source:     model.SourcePDF,
				Content:    directText,
				ProducedBy: model.ProducedByDirect,
			}, nil
		}
		return model.ExtractedText{}, errors.WrapSentinel(errors.ErrExtractionFailed, err)
	}

	// Prefer whichever output is longer; OCR wins ties only when direct
	// produced nothing at all.
	if len(ocrText) > len(directText) || (directText == "" && ocrText != "") {
		e.logger.Debug("using OCR output", zap.Int("ocr_len", len(ocrText)), zap.Int("direct_len", len(directText)))
		return model.ExtractedText{
			Source:     model.SourcePDF,
			Content:    ocrText,
			ProducedBy: model.ProducedByOCR,
		}, nil
	}

	return model.ExtractedText{
		Source:     model.SourcePDF,
		Content:    directText,
		ProducedBy: model.ProducedByDirect,
	}, nil
}

// runOCR recognizes all pages and assembles the document text. Per-page
// failures become inline markers instead of aborting the document.
func (e *Extractor) runOCR(ctx context.Context, pdfPath, language string, sink event.Sink) (string, error) {
	sink.Emit(event.Status("running OCR"))

	pages, err := e.ocr.Recognize(ctx, pdfPath, language)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(pages))
	failed := 0
	for _, page := range pages {
		if page.Err != nil {
			failed++
			parts = append(parts, fmt.Sprintf("%s on page %d: %v]", ocrErrorMarker, page.Index+1, page.Err))
			continue
		}
		parts = append(parts, strings.TrimSpace(page.Text))
	}
	if failed > 0 {
		sink.Emit(event.Warning(fmt.Sprintf("OCR failed on %d of %d pages", failed, len(pages))))
	}

	assembled := strings.Join(parts, "\n\n")
	lines := lo.Filter(strings.Split(assembled, "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != "" || strings.Contains(line, ocrErrorMarker)
	})

	sink.Emit(event.Status(fmt.Sprintf("OCR finished (%d pages)", len(pages))))
	return strings.Join(lines, "\n"), nil
}

// joinPages concatenates per-page text with blank-line separators,
// skipping empty pages.
func joinPages(pages []string) string {
	nonEmpty := lo.Filter(pages, func(p string, _ int) bool {
		return strings.TrimSpace(p) != ""
	})
	return strings.TrimSpace(strings.Join(nonEmpty, "\n\n"))
}
