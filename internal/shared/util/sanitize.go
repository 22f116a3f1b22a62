package util

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrInvalidFileName indicates a declared filename that cannot be made safe.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName rejects traversal patterns and absolute paths, and strips
// path separators so the result can never escape a storage directory.
func SanitizeFileName(name string) (string, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return "", ErrInvalidFileName
	}
	if strings.Contains(s, "..") {
		return "", ErrInvalidFileName
	}
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "\\") || filepath.IsAbs(s) {
		return "", ErrInvalidFileName
	}
	if len(s) >= 2 && s[1] == ':' { // windows drive prefix
		return "", ErrInvalidFileName
	}
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.Trim(s, "._")
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}
