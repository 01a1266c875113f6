package bank

import "regexp"

// Code identifies a bank pattern family.
type Code string

const (
	SBI      Code = "sbi"
	HDFC     Code = "hdfc"
	ICICI    Code = "icici"
	Axis     Code = "axis"
	Kotak    Code = "kotak"
	PNB      Code = "pnb"
	Baroda   Code = "bob"
	Canara   Code = "canara"
	YesBank  Code = "yes"
	IndusInd Code = "indusind"
	Unknown  Code = "unknown"
)

// Profile holds the pattern set for one bank's statement layout.
// Profiles are immutable; they are defined once in the catalog and
// looked up by code or by substring match against document text.
type Profile struct {
	Code Code
	Name string

	// DateLayouts are Go time layouts tried in order when normalizing
	// a matched date token. Day-month-year throughout.
	DateLayouts []string

	// AmountPattern matches a monetary value in this bank's format
	// (Indian digit grouping included, e.g. 1,50,000.00).
	AmountPattern *regexp.Regexp

	// TxnPattern matches one transaction line. Capture groups:
	// 1 date, 2 description, 3 amount, 4 optional CR/DR indicator,
	// 5 optional running balance.
	TxnPattern *regexp.Regexp

	// RefPattern extracts a reference code (UPI/NEFT/IMPS/cheque ids)
	// from the raw line. Group 1 is the reference.
	RefPattern *regexp.Regexp
}

// indianAmount matches amounts with western or lakh/crore digit grouping.
var indianAmount = regexp.MustCompile(`[\d,]+\.\d{2}`)

// txnLine builds the canonical transaction-line pattern for a given
// date alternation. All profiles share the column shape
// DATE DESCRIPTION AMOUNT [CR|DR] [BALANCE]; they differ in date syntax
// and reference conventions.
func txnLine(dateAlt string) *regexp.Regexp {
	return regexp.MustCompile(
		`^(` + dateAlt + `)\s+(.+?)\s+([\d,]+\.\d{2})` +
			`(?:\s+((?i:CR|DR)))?(?:\s+([\d,]+\.\d{2}))?\s*$`)
}

const (
	slashDate = `\d{1,2}/\d{1,2}/\d{2,4}`
	dashDate  = `\d{1,2}-\d{1,2}-\d{2,4}`
	textDate  = `\d{1,2}[ -](?i:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*[ -]\d{2,4}`
)

// catalog is the fixed detection-priority order. Order matters: statements
// quoting a counterparty bank inside a memo can match more than one profile,
// and the first hit wins.
var catalog = []Profile{
	{
		Code:          SBI,
		Name:          "State Bank of India",
		DateLayouts:   []string{"2-1-06", "2-1-2006", "2/1/2006", "2 Jan 2006"},
		AmountPattern: indianAmount,
		TxnPattern:    txnLine(dashDate + `|` + slashDate),
		RefPattern:    regexp.MustCompile(`(?i)(?:TXN|UTR|REF)[#:/\s-]*([A-Z0-9]{8,22})`),
	},
	{
		Code:          HDFC,
		Name:          "HDFC Bank",
		DateLayouts:   []string{"2/1/06", "2/1/2006", "2-1-2006"},
		AmountPattern: indianAmount,
		TxnPattern:    txnLine(slashDate),
		RefPattern:    regexp.MustCompile(`(?i)(?:UPI|NEFT|IMPS|RTGS|CHQ|REF)[-:/\s]*([A-Z0-9]{6,22})`),
	},
	{
		Code:          ICICI,
		Name:          "ICICI Bank",
		DateLayouts:   []string{"2/1/2006", "2-1-2006", "2-Jan-2006"},
		AmountPattern: indianAmount,
		TxnPattern:    txnLine(slashDate + `|` + textDate),
		RefPattern:    regexp.MustCompile(`(?i)(?:UPI|NEFT|IMPS|BIL|INF)[/:\s-]*([A-Z0-9]{6,22})`),
	},
	{
		Code:          Axis,
		Name:          "Axis Bank",
		DateLayouts:   []string{"2-1-2006", "2/1/2006"},
		AmountPattern: indianAmount,
		TxnPattern:    txnLine(dashDate + `|` + slashDate),
		RefPattern:    regexp.MustCompile(`(?i)(?:UPI|NEFT|IMPS|REF)[/:\s-]*([A-Z0-9]{6,22})`),
	},
	{
		Code:          Kotak,
		Name:          "Kotak Mahindra Bank",
		DateLayouts:   []string{"2/1/2006", "2-Jan-2006"},
		AmountPattern: indianAmount,
		TxnPattern:    txnLine(slashDate + `|` + textDate),
		RefPattern:    regexp.MustCompile(`(?i)(?:UPI|MB|NEFT|IMPS)[-:/\s]*([A-Z0-9]{6,22})`),
	},
	{
		Code:          PNB,
		Name:          "Punjab National Bank",
		DateLayouts:   []string{"2/1/2006", "2-1-2006"},
		AmountPattern: indianAmount,
		TxnPattern:    txnLine(slashDate + `|` + dashDate),
		RefPattern:    regexp.MustCompile(`(?i)(?:TXN|CHQ|REF)[#:/\s-]*([A-Z0-9]{6,22})`),
	},
	{
		Code:          Baroda,
		Name:          "Bank of Baroda",
		DateLayouts:   []string{"2/1/2006", "2-1-2006"},
		AmountPattern: indianAmount,
		TxnPattern:    txnLine(slashDate + `|` + dashDate),
		RefPattern:    regexp.MustCompile(`(?i)(?:NEFT|UPI|TXN)[-:/\s]*([A-Z0-9]{6,22})`),
	},
	{
		Code:          Canara,
		Name:          "Canara Bank",
		DateLayouts:   []string{"2-1-2006", "2/1/2006"},
		AmountPattern: indianAmount,
		TxnPattern:    txnLine(dashDate + `|` + slashDate),
		RefPattern:    regexp.MustCompile(`(?i)(?:TXN|REF|UPI)[#:/\s-]*([A-Z0-9]{6,22})`),
	},
	{
		Code:          YesBank,
		Name:          "Yes Bank",
		DateLayouts:   []string{"2/1/2006", "2 Jan 2006"},
		AmountPattern: indianAmount,
		TxnPattern:    txnLine(slashDate + `|` + textDate),
		RefPattern:    regexp.MustCompile(`(?i)(?:UPI|NEFT|IMPS)[-:/\s]*([A-Z0-9]{6,22})`),
	},
	{
		Code:          IndusInd,
		Name:          "IndusInd Bank",
		DateLayouts:   []string{"2/1/2006", "2-1-2006"},
		AmountPattern: indianAmount,
		TxnPattern:    txnLine(slashDate + `|` + dashDate),
		RefPattern:    regexp.MustCompile(`(?i)(?:UPI|IMPS|NEFT|REF)[-:/\s]*([A-Z0-9]{6,22})`),
	},
}
