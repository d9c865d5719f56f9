package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	cause := fmt.Errorf("ffmpeg exited with status 1")
	err := WrapSentinel(ErrTranscodeFailed, cause)

	assert.True(t, stderrors.Is(err, ErrTranscodeFailed))
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.Contains(t, err.Error(), "ffmpeg exited")
}

func TestWrapSentinelNilCause(t *testing.T) {
	err := WrapSentinel(ErrNoUsableInput, nil)
	assert.True(t, stderrors.Is(err, ErrNoUsableInput))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []*Error{
		ErrMissingFile,
		ErrNoUsableInput,
		ErrTranscodeFailed,
		ErrTranscriptionFailed,
		ErrExtractionFailed,
		ErrMissingCredentials,
		ErrSummarizationFailed,
		ErrPersistenceFailed,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, stderrors.Is(a, b), "sentinel %q must not match %q", a, b)
		}
	}
}

func TestWrapfFormatting(t *testing.T) {
	err := Wrapf(fmt.Errorf("boom"), "page %d", 3)
	require.Error(t, err)
	assert.Equal(t, "page 3: boom", err.Error())
}
