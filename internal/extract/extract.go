// Package extract is the document-text-extraction boundary. The
// classification pipeline consumes plain text; whatever produces that
// text (PDF reader, OCR, plain file) sits behind the Extractor
// interface as an external collaborator.
package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Extractor converts raw document bytes into plain text.
type Extractor interface {
	ExtractText(data []byte) (string, error)
}

// ExtractionError reports a document that could not be converted to text.
type ExtractionError struct {
	Format  string
	Message string
}

func (e *ExtractionError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("extract %s document: %s", e.Format, e.Message)
	}
	return fmt.Sprintf("extract document: %s", e.Message)
}

// PlainTextExtractor accepts UTF-8 text documents as-is. Binary formats
// (PDF included) are rejected with a typed error; decoding them belongs
// to an external collaborator, not this module.
type PlainTextExtractor struct{}

// NewPlainTextExtractor creates a new plain text extractor.
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// ExtractText validates and returns the document as text.
func (e *PlainTextExtractor) ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &ExtractionError{Message: "document is empty"}
	}

	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return "", &ExtractionError{
			Format:  "pdf",
			Message: "PDF decoding is not handled here; supply extracted text",
		}
	}

	if !utf8.Valid(data) || bytes.ContainsRune(data, 0) {
		return "", &ExtractionError{Message: "document is not valid UTF-8 text"}
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", &ExtractionError{Message: "document contains no text"}
	}

	return text, nil
}
