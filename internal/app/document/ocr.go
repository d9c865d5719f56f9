package document

import (
	"context"
)

// OCRPage is the recognition result for one page. A failed page carries
// Err instead of aborting the whole document.
type OCRPage struct {
	Index int
	Text  string
	Err   error
}

// OCRClient recognizes text in a scanned or image-only PDF. Language is a
// recognition hint; clients that do their own detection may ignore it.
type OCRClient interface {
	Recognize(ctx context.Context, pdfPath, language string) ([]OCRPage, error)
}
