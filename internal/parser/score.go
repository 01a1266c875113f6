package parser

import (
	"github.com/finlens/statement-engine/internal/bank"
	"github.com/finlens/statement-engine/internal/models"
)

// Scorer assigns the final per-transaction confidence. It is bound to the
// detected profile only so it can use the profile's date layouts when
// re-validating the candidate's date token.
type Scorer struct {
	layouts []string
}

// NewScorer returns a scorer for the detected profile (may be nil).
func NewScorer(profile *bank.Profile) Scorer {
	if profile == nil {
		return Scorer{}
	}
	return Scorer{layouts: profile.DateLayouts}
}

// Score computes confidence for one candidate: base 0.8, plus 0.1 when the
// date normalizes to a valid calendar date, 0.05 when the amount is
// positive, 0.05 when the description is longer than five characters,
// clamped to 1.0.
func (s Scorer) Score(c models.TransactionCandidate) float64 {
	conf := 0.8
	if _, ok := NormalizeDate(c.Date, s.layouts); ok {
		conf += 0.1
	}
	if c.Amount.IsPositive() {
		conf += 0.05
	}
	if len(c.Description) > 5 {
		conf += 0.05
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}

// Accuracy aggregates per-transaction confidences into a 0-100 score for a
// whole document: mean confidence, plus up to 0.10 scaled by the fraction
// of transactions with date, description, amount and type all populated,
// plus a flat 0.05 when at least one transaction carries a reference,
// capped at 100. A document with no transactions scores exactly 0.
func Accuracy(txns []models.Transaction) float64 {
	if len(txns) == 0 {
		return 0
	}

	var sum float64
	complete := 0
	hasRef := false
	for _, t := range txns {
		sum += t.Confidence
		if t.Date != "" && t.Description != "" && !t.Amount.IsZero() && t.Type != "" {
			complete++
		}
		if t.Reference != "" {
			hasRef = true
		}
	}

	score := sum / float64(len(txns))
	score += 0.10 * float64(complete) / float64(len(txns))
	if hasRef {
		score += 0.05
	}

	pct := score * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}
