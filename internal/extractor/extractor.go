// Package extractor is the text-acquisition collaborator: it turns a source
// document into plain text plus a method label and an extraction confidence.
// The interpretation engine consumes only the text; method and confidence
// are passed through for caller-side reporting.
package extractor

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Result is what acquisition hands to the caller for one document.
type Result struct {
	Pages      []string
	Method     string
	Confidence float64 // readable-text quality in [0,1]
}

// Text returns the document as one string with page breaks collapsed.
func (r *Result) Text() string {
	return strings.Join(r.Pages, "\n")
}

// Extract acquires text from the file at path. PDF and plain-text inputs
// are supported; anything else is a document-level failure. multiPass
// allows the PDF path to fall back through additional extraction methods
// when the first yields unreadable text.
func Extract(path string, multiPass bool) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path, multiPass)
	case ".txt", ".text":
		return extractPlain(path)
	default:
		return nil, fmt.Errorf("unsupported input %q: expected .pdf or .txt", path)
	}
}
