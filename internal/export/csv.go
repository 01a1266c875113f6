package export

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// CSVWriter writes the summary and detail tables as CSV.
type CSVWriter struct{}

// WriteSummary writes the summary table to out.
func (CSVWriter) WriteSummary(out io.Writer, rows []SummaryRow) error {
	if err := gocsv.Marshal(&rows, out); err != nil {
		return fmt.Errorf("writing summary csv: %w", err)
	}
	return nil
}

// WriteDetail writes the detail table to out.
func (CSVWriter) WriteDetail(out io.Writer, rows []DetailRow) error {
	if err := gocsv.Marshal(&rows, out); err != nil {
		return fmt.Errorf("writing detail csv: %w", err)
	}
	return nil
}

// WriteToFiles writes both tables next to each other:
// <base>_summary.csv and <base>_transactions.csv.
func (w CSVWriter) WriteToFiles(basePath string, summaries []SummaryRow, details []DetailRow) error {
	sf, err := os.Create(basePath + "_summary.csv")
	if err != nil {
		return fmt.Errorf("creating summary file: %w", err)
	}
	defer sf.Close()
	if err := w.WriteSummary(sf, summaries); err != nil {
		return err
	}

	df, err := os.Create(basePath + "_transactions.csv")
	if err != nil {
		return fmt.Errorf("creating transactions file: %w", err)
	}
	defer df.Close()
	return w.WriteDetail(df, details)
}
