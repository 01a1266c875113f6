package parser

import (
	"regexp"
	"strings"

	"github.com/finlens/statement-engine/internal/models"
)

// Field extraction works off label keywords, not bank profiles, so it
// behaves the same for unrecognized banks. Each extractor tries its
// patterns in order and returns the first capture; no match resolves to
// the FieldNotFound sentinel, never an error.

var accountNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)account\s*(?:number|no\.?|#)\s*[:\-]?\s*([0-9Xx*]{6,20})`),
	regexp.MustCompile(`(?i)\ba/c\s*(?:no\.?)?\s*[:\-]?\s*([0-9Xx*]{6,20})`),
	regexp.MustCompile(`(?i)\baccount\s*[:\-]\s*([0-9Xx*]{9,18})`),
}

var accountHolderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)account\s*holder\s*(?:name)?\s*[:\-]?\s*([A-Za-z][A-Za-z .]{2,60})`),
	regexp.MustCompile(`(?i)customer\s*name\s*[:\-]?\s*([A-Za-z][A-Za-z .]{2,60})`),
	regexp.MustCompile(`(?im)^name\s*[:\-]\s*([A-Za-z][A-Za-z .]{2,60})$`),
}

var statementPeriodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)statement\s*period\s*[:\-]?\s*([0-9][0-9/.\- ]+\s*(?:to|-)\s*[0-9][0-9/.\- ]+[0-9])`),
	regexp.MustCompile(`(?i)\bperiod\s*[:\-]?\s*([0-9][0-9/.\- ]+\s*(?:to|-)\s*[0-9][0-9/.\- ]+[0-9])`),
	regexp.MustCompile(`(?i)\bfrom\s*[:\-]?\s*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\s*(?:to|-)?\s*\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`),
}

// ExtractAccountNumber finds the account number in whole-document text.
func ExtractAccountNumber(text string) string {
	return firstCapture(text, accountNumberPatterns)
}

// ExtractAccountHolder finds the account holder name in whole-document text.
func ExtractAccountHolder(text string) string {
	return firstCapture(text, accountHolderPatterns)
}

// ExtractStatementPeriod finds the statement period in whole-document text.
func ExtractStatementPeriod(text string) string {
	return firstCapture(text, statementPeriodPatterns)
}

func firstCapture(text string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			v := strings.TrimSpace(m[1])
			if v != "" {
				return v
			}
		}
	}
	return models.FieldNotFound
}
