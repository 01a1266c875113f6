package parser

import "github.com/finlens/statement-engine/internal/models"

// dedupeKey is deliberately loose: only the first 20 characters of the
// description participate, so OCR noise in a trailing suffix does not stop
// two sightings of the same transaction from collapsing.
type dedupeKey struct {
	date       string
	amount     string
	descPrefix string
}

func keyOf(c models.TransactionCandidate) dedupeKey {
	// Truncate by runes, not bytes; descriptions can carry ₹ and other
	// multibyte characters.
	prefix := c.Description
	if runes := []rune(prefix); len(runes) > 20 {
		prefix = string(runes[:20])
	}
	return dedupeKey{
		date:       c.Date,
		amount:     c.Amount.String(),
		descPrefix: prefix,
	}
}

// Dedupe removes duplicate candidates, keeping the first occurrence in
// document order. The filter is stable and idempotent.
func Dedupe(cands []models.TransactionCandidate) []models.TransactionCandidate {
	seen := make(map[dedupeKey]struct{}, len(cands))
	out := make([]models.TransactionCandidate, 0, len(cands))
	for _, c := range cands {
		k := keyOf(c)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}
