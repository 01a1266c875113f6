package extractor

import (
	"strings"
	"unicode"
)

// textQuality returns the ratio of plainly readable characters to total
// characters across pages. A strict ASCII check works better here than
// unicode.IsLetter, which also accepts the accented garbage produced by
// identity-encoded fonts.
func textQuality(pages []string) float64 {
	total := 0
	readable := 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(`.,-/:;()'"%&@#!?+=*₹$`, r) {
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

// statementWords appear in virtually every bank statement. Extracted text
// containing none of them is treated as garbage.
var statementWords = []string{
	"bank", "account", "balance", "date", "statement", "transaction",
	"amount", "credit", "debit", "withdrawal", "deposit", "transfer",
	"upi", "neft", "imps", "period", "page",
}

func containsStatementWords(pages []string) bool {
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, word := range statementWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}

// isReadableText gates an extraction attempt: enough text, mostly readable
// characters, and at least one recognizable statement word.
func isReadableText(pages []string) bool {
	n := 0
	for _, p := range pages {
		n += len(strings.TrimSpace(p))
	}
	if n <= 50 {
		return false
	}
	if textQuality(pages) <= 0.6 {
		return false
	}
	return containsStatementWords(pages)
}
