package validation

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"resume-parser/internal/shared/util"
)

const (
	// MimePDF is the detected content type for PDF documents.
	MimePDF = "application/pdf"
	// MimeDOCX is the detected content type for Word (OOXML) documents.
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	// ErrFileTooLarge indicates the payload exceeds the configured maximum.
	ErrFileTooLarge = errors.New("file too large")
	// ErrUnsupportedType indicates a content signature outside the allow-list.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrUnsafePath indicates a declared filename that could escape the storage directory.
	ErrUnsafePath = errors.New("unsafe file path")
)

// Gate pre-checks uploaded files before they reach a document reader.
type Gate struct {
	maxBytes int64
	allowed  map[string]struct{}
}

// NewGate builds a gate with the given size limit and content-type allow-list.
func NewGate(maxBytes int64, allowedTypes []string) *Gate {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		if trimmed := strings.ToLower(strings.TrimSpace(t)); trimmed != "" {
			allowed[trimmed] = struct{}{}
		}
	}
	return &Gate{maxBytes: maxBytes, allowed: allowed}
}

// Validate checks size, declared filename safety, and the content signature.
// The detected content type is returned for downstream reader selection. The
// signature comes from the bytes themselves, never from the file extension.
func (g *Gate) Validate(data []byte, declaredName string) (string, error) {
	if _, err := util.SanitizeFileName(declaredName); err != nil {
		return "", fmt.Errorf("declared name %q: %w", declaredName, ErrUnsafePath)
	}

	if int64(len(data)) > g.maxBytes {
		return "", fmt.Errorf("file size %d exceeds maximum %d: %w", len(data), g.maxBytes, ErrFileTooLarge)
	}

	detected := detectContentType(data)
	if _, ok := g.allowed[detected]; !ok {
		return "", fmt.Errorf("detected type %q: %w", detected, ErrUnsupportedType)
	}
	return detected, nil
}

// detectContentType sniffs the content signature. OOXML packages are generic
// zip archives at the byte level, so a zip result is narrowed by looking for
// word/document.xml inside the package.
func detectContentType(data []byte) string {
	detected := strings.ToLower(mimetype.Detect(data).String())
	if idx := strings.Index(detected, ";"); idx >= 0 {
		detected = strings.TrimSpace(detected[:idx])
	}
	if detected != "application/zip" {
		return detected
	}
	if isWordPackage(data) {
		return MimeDOCX
	}
	return detected
}

func isWordPackage(data []byte) bool {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			return true
		}
	}
	return false
}
