package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a matched amount token like "1,50,000.00" or
// "₹2,500.00" into a decimal. Currency symbols, digit-group commas and
// stray whitespace are stripped; grouping style (western or lakh/crore)
// does not matter once commas are gone.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(
		"₹", "",
		"Rs.", "",
		"Rs", "",
		"INR", "",
		"£", "",
		"$", "",
		"€", "",
		",", "",
		" ", "",
		" ", "",
	)
	s = replacer.Replace(s)

	if s == "" || s == "-" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(s)
}
