// Package export flattens StatementRecords into the two logical tables
// consumed downstream: a one-row-per-document summary and a
// one-row-per-transaction detail table, written as CSV or XLSX.
package export

import (
	"github.com/finlens/statement-engine/internal/models"
)

// SummaryRow is one document in the summary table.
type SummaryRow struct {
	FileName         string  `csv:"file_name"`
	Bank             string  `csv:"bank"`
	AccountNumber    string  `csv:"account_number"`
	AccountHolder    string  `csv:"account_holder"`
	StatementPeriod  string  `csv:"statement_period"`
	TransactionCount int     `csv:"transaction_count"`
	Accuracy         float64 `csv:"accuracy"`
	ProcessingMethod string  `csv:"processing_method"`
}

// DetailRow is one transaction in the detail table, carrying enough of the
// parent document to stand alone.
type DetailRow struct {
	FileName      string  `csv:"file_name"`
	Bank          string  `csv:"bank"`
	AccountNumber string  `csv:"account_number"`
	Date          string  `csv:"date"`
	Description   string  `csv:"description"`
	Type          string  `csv:"type"`
	Amount        string  `csv:"amount"`
	Balance       string  `csv:"balance"`
	Reference     string  `csv:"reference"`
	Confidence    float64 `csv:"confidence"`
}

// Flatten converts records into the two tables, preserving record order
// and, within each record, transaction order.
func Flatten(records []models.StatementRecord) ([]SummaryRow, []DetailRow) {
	summaries := make([]SummaryRow, 0, len(records))
	var details []DetailRow

	for _, rec := range records {
		summaries = append(summaries, SummaryRow{
			FileName:         rec.FileName,
			Bank:             rec.BankName,
			AccountNumber:    rec.AccountNumber,
			AccountHolder:    rec.AccountHolder,
			StatementPeriod:  rec.StatementPeriod,
			TransactionCount: len(rec.Transactions),
			Accuracy:         rec.Accuracy,
			ProcessingMethod: rec.ProcessingMethod,
		})

		for _, txn := range rec.Transactions {
			row := DetailRow{
				FileName:      rec.FileName,
				Bank:          rec.BankName,
				AccountNumber: rec.AccountNumber,
				Date:          txn.Date,
				Description:   txn.Description,
				Type:          string(txn.Type),
				Amount:        txn.Amount.StringFixed(2),
				Reference:     txn.Reference,
				Confidence:    txn.Confidence,
			}
			if txn.Balance != nil {
				row.Balance = txn.Balance.StringFixed(2)
			}
			details = append(details, row)
		}
	}

	return summaries, details
}
