package models

import "github.com/shopspring/decimal"

// TransactionType classifies the direction of a transaction.
type TransactionType string

const (
	TypeDebit  TransactionType = "debit"
	TypeCredit TransactionType = "credit"
)

// FieldNotFound is the sentinel returned when a metadata field could not be
// located in the statement text. It is data, not an error.
const FieldNotFound = "Not Found"

// Processing-method labels recorded on a StatementRecord.
const (
	MethodSinglePass = "single-pass"
	MethodMultiPass  = "multi-pass"
)

// TransactionCandidate is a provisional transaction produced by the line
// parsing cascade. The date is kept as the raw matched token; normalization
// happens when the candidate is promoted to a Transaction.
type TransactionCandidate struct {
	Date            string
	Description     string
	Amount          decimal.Decimal
	RawType         *string
	Balance         *decimal.Decimal
	Reference       *string
	ParseConfidence float64 // 0.9 bank pattern, 0.7 generic pattern
}

// Transaction is a finalized statement transaction.
// Amount is always non-negative; direction is carried by Type.
type Transaction struct {
	Date        string           `json:"date"` // YYYY-MM-DD
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Type        TransactionType  `json:"type"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Reference   string           `json:"reference,omitempty"`
	Confidence  float64          `json:"confidence"` // in [0,1]
}

// StatementRecord is the structured result for one document.
// Transactions preserve document line order.
type StatementRecord struct {
	FileName         string        `json:"fileName"`
	BankName         string        `json:"bankName"`
	AccountNumber    string        `json:"accountNumber"`
	AccountHolder    string        `json:"accountHolder"`
	StatementPeriod  string        `json:"statementPeriod"`
	Transactions     []Transaction `json:"transactions"`
	Accuracy         float64       `json:"accuracy"` // in [0,100]
	ProcessingMethod string        `json:"processingMethod"`
}

// EngineConfig is the per-invocation configuration passed by the caller.
// ConfidenceThreshold is accepted but never applied by the engine itself;
// filtering low-confidence transactions is caller policy.
type EngineConfig struct {
	MultiPassExtraction bool    `json:"multiPassExtraction"`
	ConfidenceThreshold float64 `json:"confidenceThreshold"`
}
