package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	detailSheet  = "Transactions"
)

var summaryHeader = []interface{}{
	"File Name", "Bank", "Account Number", "Account Holder",
	"Statement Period", "Transaction Count", "Accuracy", "Processing Method",
}

var detailHeader = []interface{}{
	"File Name", "Bank", "Account Number", "Date", "Description",
	"Type", "Amount", "Balance", "Reference", "Confidence",
}

// XLSXWriter writes the summary and detail tables as one workbook with
// two sheets.
type XLSXWriter struct{}

// WriteToFile writes the workbook to path.
func (XLSXWriter) WriteToFile(path string, summaries []SummaryRow, details []DetailRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("renaming summary sheet: %w", err)
	}
	if _, err := f.NewSheet(detailSheet); err != nil {
		return fmt.Errorf("creating detail sheet: %w", err)
	}

	if err := writeRow(f, summarySheet, 1, summaryHeader); err != nil {
		return err
	}
	for i, row := range summaries {
		values := []interface{}{
			row.FileName, row.Bank, row.AccountNumber, row.AccountHolder,
			row.StatementPeriod, row.TransactionCount, row.Accuracy, row.ProcessingMethod,
		}
		if err := writeRow(f, summarySheet, i+2, values); err != nil {
			return err
		}
	}

	if err := writeRow(f, detailSheet, 1, detailHeader); err != nil {
		return err
	}
	for i, row := range details {
		values := []interface{}{
			row.FileName, row.Bank, row.AccountNumber, row.Date, row.Description,
			row.Type, row.Amount, row.Balance, row.Reference, row.Confidence,
		}
		if err := writeRow(f, detailSheet, i+2, values); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}
