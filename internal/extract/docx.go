package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"
	"time"

	"github.com/nguyenthenguyen/docx"

	"resume-parser/internal/validation"
)

// DocxReader extracts text from Word (OOXML) bytes using
// github.com/nguyenthenguyen/docx to open the package.
type DocxReader struct {
	timeout time.Duration
}

// NewDocxReader builds a DOCX reader bounded by the given timeout.
func NewDocxReader(timeout time.Duration) *DocxReader {
	return &DocxReader{timeout: timeout}
}

// Read extracts plain text in document order. Paragraph and line-break
// boundaries become newlines so adjacent words never merge into one token.
func (r *DocxReader) Read(ctx context.Context, data []byte) (string, error) {
	return readBounded(ctx, validation.MimeDOCX, r.timeout, func() (string, error) {
		return extractDocx(data)
	})
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{ContentType: validation.MimeDOCX, Err: err}
	}
	defer doc.Close()

	text := stripDocxXML(doc.Editable().GetContent())
	if strings.TrimSpace(text) == "" {
		return "", &ParseError{ContentType: validation.MimeDOCX, Err: errNoText}
	}
	return text, nil
}

// stripDocxXML walks document.xml tokens and keeps character data, inserting
// a newline at each paragraph or break end so word boundaries survive.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
