package notes

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "deepnotes/internal/app/errors"
)

func TestSaveAppendsExtension(t *testing.T) {
	dir := t.TempDir()

	written, err := Save("# Notes", filepath.Join(dir, "lecture"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lecture.txt"), written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "# Notes", string(data))
}

func TestSaveKeepsExistingExtension(t *testing.T) {
	dir := t.TempDir()

	written, err := Save("# Notes", filepath.Join(dir, "lecture.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lecture.txt"), written)
}

func TestSaveFailureIsPersistenceError(t *testing.T) {
	_, err := Save("# Notes", filepath.Join(t.TempDir(), "missing", "dir", "lecture"))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, apperrors.ErrPersistenceFailed))
}
