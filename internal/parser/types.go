package parser

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/finlens/statement-engine/internal/models"
)

// Keyword families for classifying transactions without an explicit CR/DR
// indicator. The credit family is checked first; a description matching
// neither family defaults to debit, since most statement lines are
// outflows.
var (
	creditKeywords = []string{"deposit", "credit", "salary", "transfer in", "interest"}
	debitKeywords  = []string{"withdrawal", "debit", "payment", "transfer out", "charge"}

	creditMatcher = ahocorasick.NewStringMatcher(creditKeywords)
	debitMatcher  = ahocorasick.NewStringMatcher(debitKeywords)
)

// ClassifyType determines debit vs credit for a candidate. An explicit
// indicator token wins: anything containing "cr" (any case) is a credit,
// any other indicator is a debit. Without an indicator the description is
// scanned against the keyword families in a single Aho-Corasick pass each.
func ClassifyType(rawType *string, description string) models.TransactionType {
	if rawType != nil && strings.TrimSpace(*rawType) != "" {
		if strings.Contains(strings.ToLower(*rawType), "cr") {
			return models.TypeCredit
		}
		return models.TypeDebit
	}

	// MatchThreadSafe: the matchers are shared globals and Interpret runs
	// on concurrent workers; plain Match mutates matcher state.
	desc := []byte(strings.ToLower(description))
	if len(creditMatcher.MatchThreadSafe(desc)) > 0 {
		return models.TypeCredit
	}
	if len(debitMatcher.MatchThreadSafe(desc)) > 0 {
		return models.TypeDebit
	}
	return models.TypeDebit
}
