// Package parser implements the statement interpretation primitives: the
// transaction-line cascade, field extraction, date/amount normalization,
// type classification, deduplication and confidence scoring.
package parser

import (
	"regexp"
	"strings"

	"github.com/finlens/statement-engine/internal/bank"
	"github.com/finlens/statement-engine/internal/models"
)

// Base confidences assigned by the cascade stages.
const (
	bankPatternConfidence    = 0.9
	genericPatternConfidence = 0.7
)

// genericTxnPatterns are the bank-agnostic fallback, tried in order after
// the profile pattern. Capture groups: 1 date, 2 description, 3 amount.
// No balance or reference is extracted on this path.
var genericTxnPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4})\s+(.+?)\s+(-?[\d,]+\.\d{2})\s*$`),
	regexp.MustCompile(`^(\d{1,2}-\d{1,2}-\d{2,4})\s+(.+?)\s+(-?[\d,]+\.\d{2})\s*$`),
	regexp.MustCompile(`^(\d{1,2}\.\d{1,2}\.\d{2,4})\s+(.+?)\s+(-?[\d,]+\.\d{2})\s*$`),
	regexp.MustCompile(`^(\d{1,2}[ -](?i:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*[ -]\d{2,4})\s+(.+?)\s+(-?[\d,]+\.\d{2})\s*$`),
}

// LineParser runs the pattern cascade over individual statement lines.
// A nil profile skips straight to the generic patterns.
type LineParser struct {
	profile *bank.Profile
}

// NewLineParser returns a parser bound to the detected profile (may be nil).
func NewLineParser(profile *bank.Profile) *LineParser {
	return &LineParser{profile: profile}
}

// Parse classifies one trimmed, non-empty line. The first matching stage
// wins; a line matching no stage returns ok=false, the expected outcome
// for headers, footers and boilerplate. It is not an error.
func (p *LineParser) Parse(line string) (models.TransactionCandidate, bool) {
	if p.profile != nil && p.profile.TxnPattern != nil {
		if cand, ok := p.parseBankLine(line); ok {
			return cand, true
		}
	}
	return p.parseGenericLine(line)
}

func (p *LineParser) parseBankLine(line string) (models.TransactionCandidate, bool) {
	m := p.profile.TxnPattern.FindStringSubmatch(line)
	if m == nil {
		return models.TransactionCandidate{}, false
	}

	amount, err := ParseAmount(m[3])
	if err != nil {
		return models.TransactionCandidate{}, false
	}

	cand := models.TransactionCandidate{
		Date:            m[1],
		Description:     strings.TrimSpace(m[2]),
		Amount:          amount,
		ParseConfidence: bankPatternConfidence,
	}

	if ind := strings.TrimSpace(m[4]); ind != "" {
		cand.RawType = &ind
	}
	if balRaw := strings.TrimSpace(m[5]); balRaw != "" {
		if bal, err := ParseAmount(balRaw); err == nil {
			cand.Balance = &bal
		}
	}
	if p.profile.RefPattern != nil {
		if rm := p.profile.RefPattern.FindStringSubmatch(line); rm != nil {
			ref := strings.TrimSpace(rm[1])
			if ref != "" {
				cand.Reference = &ref
			}
		}
	}

	return cand, true
}

func (p *LineParser) parseGenericLine(line string) (models.TransactionCandidate, bool) {
	for _, pat := range genericTxnPatterns {
		m := pat.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		amount, err := ParseAmount(m[3])
		if err != nil {
			continue
		}
		return models.TransactionCandidate{
			Date:            m[1],
			Description:     strings.TrimSpace(m[2]),
			Amount:          amount,
			ParseConfidence: genericPatternConfidence,
		}, true
	}
	return models.TransactionCandidate{}, false
}

// SplitLines turns raw document text into candidate lines for the cascade:
// trimmed and with empties dropped, preserving document order.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
