package files

import (
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether path refers to an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// EnsureExtension appends ext (with leading dot) when path has no
// extension matching it. Comparison is case-insensitive.
func EnsureExtension(path, ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if strings.EqualFold(filepath.Ext(path), ext) {
		return path
	}
	return path + ext
}

// ReadOutputFile reads a tool output file into a trimmed string.
func ReadOutputFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
