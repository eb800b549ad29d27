// Package extract pulls plain text out of CV documents (PDF and DOCX)
// and normalizes it for matching. It implements the ports.Extractor
// contract; documents it cannot read surface as errors or empty text and
// are skipped by the batch layer, never aborting a run.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Extractor dispatches to a format reader by file extension.
type Extractor struct {
	log *zap.Logger
}

// New creates an extractor for the supported document formats.
func New(log *zap.Logger) *Extractor {
	return &Extractor{log: log}
}

// Supports reports whether path has a readable document extension.
func (e *Extractor) Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx":
		return true
	}
	return false
}

// Extract reads the document at path and returns its cleaned text.
// An empty return with nil error means the file parsed but held no
// usable text (scanned images, empty pages).
func (e *Extractor) Extract(path string) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = readPDF(path)
	case ".docx":
		text, err = readDOCX(path)
	default:
		return "", fmt.Errorf("unsupported document type %q", filepath.Ext(path))
	}
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", filepath.Base(path), err)
	}

	cleaned := Clean(text)
	if cleaned == "" {
		e.log.Warn("no usable text in document", zap.String("path", path))
	}
	return cleaned, nil
}
