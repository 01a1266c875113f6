package parser

import (
	"strings"
	"time"
)

// genericDateLayouts are tried in order when no bank profile supplies its
// own layouts. Day-month-year throughout: the target institutions print
// dates day-first, and a single fixed convention beats locale guessing.
// time.Parse does the calendar validation (30/02 is an error, not March 2).
// Unpadded layouts parse both padded and unpadded tokens; zero-padded
// layouts would demand exactly two digits.
var genericDateLayouts = []string{
	"2/1/2006",
	"2/1/06",
	"2-1-2006",
	"2-1-06",
	"2.1.2006",
	"2.1.06",
	"2 Jan 2006",
	"2 Jan 06",
	"2 January 2006",
	"2-Jan-2006",
	"2-Jan-06",
}

const isoDate = "2006-01-02"

// NormalizeDate converts a raw matched date token to YYYY-MM-DD using the
// given layouts (the profile's list, or the generic list when layouts is
// nil). Returns ok=false when the token fails calendar validation under
// every layout; callers must reject such candidates rather than guess.
func NormalizeDate(raw string, layouts []string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(isoDate), true
		}
	}
	// Profile layouts are a starting point, not a cage: fall back to the
	// generic list so a valid token in an unexpected separator style is
	// not lost.
	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(isoDate), true
		}
	}
	return "", false
}
