package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/finlens/statement-engine/internal/models"
)

func sampleRecords() []models.StatementRecord {
	balance := decimal.RequireFromString("149550.00")
	return []models.StatementRecord{
		{
			FileName:        "feb.pdf",
			BankName:        "HDFC Bank",
			AccountNumber:   "50100123456789",
			AccountHolder:   "RAHUL SHARMA",
			StatementPeriod: "01/02/2024 to 29/02/2024",
			Transactions: []models.Transaction{
				{
					Date:        "2024-02-01",
					Description: "SALARY CREDIT XYZ CORP",
					Amount:      decimal.RequireFromString("50000"),
					Type:        models.TypeCredit,
					Confidence:  1.0,
				},
				{
					Date:        "2024-02-03",
					Description: "UPI GROCERY STORE",
					Amount:      decimal.RequireFromString("450"),
					Type:        models.TypeDebit,
					Balance:     &balance,
					Reference:   "9876543210",
					Confidence:  0.95,
				},
			},
			Accuracy:         100,
			ProcessingMethod: models.MethodSinglePass,
		},
		{
			FileName:         "empty.pdf",
			BankName:         "Unknown Bank (unknown)",
			AccountNumber:    models.FieldNotFound,
			AccountHolder:    models.FieldNotFound,
			StatementPeriod:  models.FieldNotFound,
			Accuracy:         0,
			ProcessingMethod: models.MethodMultiPass,
		},
	}
}

func TestFlatten(t *testing.T) {
	summaries, details := Flatten(sampleRecords())

	require.Len(t, summaries, 2)
	require.Len(t, details, 2)

	assert.Equal(t, "feb.pdf", summaries[0].FileName)
	assert.Equal(t, 2, summaries[0].TransactionCount)
	assert.Equal(t, 0, summaries[1].TransactionCount)
	assert.Equal(t, models.FieldNotFound, summaries[1].AccountNumber)

	first := details[0]
	assert.Equal(t, "feb.pdf", first.FileName)
	assert.Equal(t, "50000.00", first.Amount)
	assert.Equal(t, "credit", first.Type)
	assert.Empty(t, first.Balance)

	second := details[1]
	assert.Equal(t, "450.00", second.Amount)
	assert.Equal(t, "149550.00", second.Balance)
	assert.Equal(t, "9876543210", second.Reference)
}

func TestCSVWriter(t *testing.T) {
	summaries, details := Flatten(sampleRecords())

	var buf bytes.Buffer
	require.NoError(t, CSVWriter{}.WriteSummary(&buf, summaries))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "file_name")
	assert.Contains(t, lines[0], "processing_method")
	assert.Contains(t, lines[1], "feb.pdf")
	assert.Contains(t, lines[1], "HDFC Bank")
	assert.Contains(t, lines[2], "Unknown Bank (unknown)")

	buf.Reset()
	require.NoError(t, CSVWriter{}.WriteDetail(&buf, details))

	lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "description")
	assert.Contains(t, lines[1], "SALARY CREDIT XYZ CORP")
	assert.Contains(t, lines[2], "149550.00")
}

func TestCSVWriterFiles(t *testing.T) {
	summaries, details := Flatten(sampleRecords())
	base := filepath.Join(t.TempDir(), "statements")

	require.NoError(t, CSVWriter{}.WriteToFiles(base, summaries, details))

	assert.FileExists(t, base+"_summary.csv")
	assert.FileExists(t, base+"_transactions.csv")
}

func TestXLSXWriter(t *testing.T) {
	summaries, details := Flatten(sampleRecords())
	path := filepath.Join(t.TempDir(), "statements.xlsx")

	require.NoError(t, XLSXWriter{}.WriteToFile(path, summaries, details))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Transactions"}, f.GetSheetList())

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "File Name", rows[0][0])
	assert.Equal(t, "feb.pdf", rows[1][0])

	rows, err = f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "SALARY CREDIT XYZ CORP", rows[1][4])
	assert.Equal(t, "450.00", rows[2][6])
}
