// Package extract converts resume documents of known formats into plain text.
package extract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-parser/internal/validation"
)

var (
	// ErrParsingTimeout indicates the reader exceeded its wall-clock budget.
	// Any partially extracted text is discarded.
	ErrParsingTimeout = errors.New("parsing timeout")
	// ErrUnsupportedFormat indicates no reader is registered for a content type.
	// The validation gate constrains uploads to registered types, so hitting
	// this is registry drift, not a caller error.
	ErrUnsupportedFormat = errors.New("no reader registered for content type")

	errNoText = errors.New("no text content found")
)

// ParseError wraps a document-level parsing failure with its cause.
type ParseError struct {
	ContentType string
	Err         error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.ContentType, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Reader extracts plain text from raw file bytes of one document format.
// Implementations never execute embedded macros or scripts; extraction is
// read-only, and text is concatenated in document order with word boundaries
// preserved.
type Reader interface {
	Read(ctx context.Context, data []byte) (string, error)
}

// Registry maps detected content types to document readers. It is populated
// once at startup and read-only afterwards.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry builds the default registry with PDF and DOCX readers, each
// bounded by the given parse timeout.
func NewRegistry(timeout time.Duration) *Registry {
	return &Registry{
		readers: map[string]Reader{
			validation.MimePDF:  NewPDFReader(timeout),
			validation.MimeDOCX: NewDocxReader(timeout),
		},
	}
}

// Register adds or replaces the reader for a content type. Intended for
// startup wiring and tests, not per-request mutation.
func (r *Registry) Register(contentType string, reader Reader) {
	r.readers[contentType] = reader
}

// Select returns the reader for the given content type.
func (r *Registry) Select(contentType string) (Reader, error) {
	reader, ok := r.readers[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, contentType)
	}
	return reader, nil
}

// readBounded runs fn under a wall-clock timeout. On timeout the goroutine's
// eventual result is dropped; a panic inside fn becomes a ParseError so a
// corrupt document cannot take down the request.
func readBounded(ctx context.Context, contentType string, timeout time.Duration, fn func() (string, error)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		text string
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- outcome{err: &ParseError{ContentType: contentType, Err: fmt.Errorf("parser panic: %v", rec)}}
			}
		}()
		text, err := fn()
		done <- outcome{text: text, err: err}
	}()

	select {
	case out := <-done:
		return out.text, out.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%s after %s: %w", contentType, timeout, ErrParsingTimeout)
		}
		return "", ctx.Err()
	}
}
