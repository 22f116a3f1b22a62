package extract

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"resume-parser/internal/validation"
)

// PDFReader extracts text from PDF bytes using github.com/ledongthuc/pdf.
type PDFReader struct {
	timeout time.Duration
}

// NewPDFReader builds a PDF reader bounded by the given timeout.
func NewPDFReader(timeout time.Duration) *PDFReader {
	return &PDFReader{timeout: timeout}
}

// Read extracts plain text from all pages in document order.
func (r *PDFReader) Read(ctx context.Context, data []byte) (string, error) {
	return readBounded(ctx, validation.MimePDF, r.timeout, func() (string, error) {
		return extractPDF(data)
	})
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{ContentType: validation.MimePDF, Err: err}
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", &ParseError{ContentType: validation.MimePDF, Err: err}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", &ParseError{ContentType: validation.MimePDF, Err: err}
	}
	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return "", &ParseError{ContentType: validation.MimePDF, Err: errNoText}
	}
	return text, nil
}
