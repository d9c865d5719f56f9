package errors

import (
	"fmt"
)

// Pipeline error taxonomy
var (
	// Input errors
	ErrMissingFile   = New("requested file does not exist")
	ErrNoUsableInput = New("no usable input: neither video nor PDF produced text")

	// Video branch errors
	ErrTranscodeFailed     = New("audio transcoding failed")
	ErrTranscriptionFailed = New("transcription failed")

	// Document branch errors
	ErrExtractionFailed = New("document extraction failed")

	// Summarization errors
	ErrMissingCredentials  = New("no summarization credentials available")
	ErrSummarizationFailed = New("all summarization providers failed")

	// Artifact errors
	ErrPersistenceFailed = New("failed to write notes artifact")
)

// Error represents a standardized error with an optional cause.
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// WrapSentinel attaches a cause to one of the taxonomy sentinels so that
// errors.Is(err, sentinel) keeps matching while the underlying detail is
// preserved for logs.
func WrapSentinel(sentinel *Error, cause error) error {
	if cause == nil {
		return sentinel
	}
	return &Error{message: sentinel.message, cause: cause}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}
