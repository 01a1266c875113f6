package extractor

import (
	"fmt"
	"os"
	"strings"
)

// extractPlain reads pre-extracted statement text. Form feeds mark page
// boundaries when present; confidence is 1.0 since nothing was decoded.
func extractPlain(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading text file: %w", err)
	}

	var pages []string
	for _, page := range strings.Split(string(data), "\f") {
		page = strings.TrimSpace(page)
		if page != "" {
			pages = append(pages, page)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("text file %q is empty", path)
	}

	return &Result{Pages: pages, Method: "plain-text", Confidence: 1.0}, nil
}
