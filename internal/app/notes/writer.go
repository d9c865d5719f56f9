package notes

import (
	"os"

	"deepnotes/internal/app/errors"
	"deepnotes/internal/app/util/files"
)

// Save writes the generated notes as a UTF-8 text file, appending the
// .txt extension when the caller-provided name lacks it. Returns the
// path actually written.
func Save(text, path string) (string, error) {
	outputPath := files.EnsureExtension(path, ".txt")

	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return "", errors.WrapSentinel(errors.ErrPersistenceFailed, err)
	}

	return outputPath, nil
}
