package engine

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlens/statement-engine/internal/models"
)

const hdfcStatement = `HDFC Bank
Account Number: 50100123456789
Account Holder: RAHUL SHARMA
Statement Period: 01/02/2024 to 29/02/2024
Date Description Amount Balance
01/02/2024 SALARY CREDIT XYZ CORP 50,000.00 CR 1,50,000.00
03/02/2024 UPI-9876543210 GROCERY STORE 450.00 DR 1,49,550.00
05/02/2024 ATM WITHDRAWAL MUMBAI 5,000.00 DR 1,44,550.00
03/02/2024 UPI-9876543210 GROCERY STORE 450.00 DR 1,49,550.00
Page 1 of 1`

func TestInterpretKnownBank(t *testing.T) {
	eng := New(nil)
	rec := eng.Interpret(hdfcStatement, "feb.pdf", models.EngineConfig{})

	assert.Equal(t, "feb.pdf", rec.FileName)
	assert.Equal(t, "HDFC Bank", rec.BankName)
	assert.Equal(t, "50100123456789", rec.AccountNumber)
	assert.Equal(t, "RAHUL SHARMA", rec.AccountHolder)
	assert.Equal(t, "01/02/2024 to 29/02/2024", rec.StatementPeriod)
	assert.Equal(t, models.MethodSinglePass, rec.ProcessingMethod)

	// The repeated grocery line collapses, leaving three transactions.
	require.Len(t, rec.Transactions, 3)

	salary := rec.Transactions[0]
	assert.Equal(t, "2024-02-01", salary.Date)
	assert.Equal(t, "SALARY CREDIT XYZ CORP", salary.Description)
	assert.True(t, salary.Amount.Equal(decimal.New(50000, 0)), "amount %s", salary.Amount)
	assert.Equal(t, models.TypeCredit, salary.Type)
	require.NotNil(t, salary.Balance)
	assert.True(t, salary.Balance.Equal(decimal.New(150000, 0)))
	assert.InDelta(t, 1.0, salary.Confidence, 1e-9)

	grocery := rec.Transactions[1]
	assert.Equal(t, "2024-02-03", grocery.Date)
	assert.Equal(t, models.TypeDebit, grocery.Type)
	assert.NotEmpty(t, grocery.Reference)

	atm := rec.Transactions[2]
	assert.Equal(t, models.TypeDebit, atm.Type)
	assert.Empty(t, atm.Reference)

	assert.Greater(t, rec.Accuracy, 90.0)
	assert.LessOrEqual(t, rec.Accuracy, 100.0)
}

func TestInterpretUnknownBank(t *testing.T) {
	text := `Some Cooperative Society
Account Number: 111222333444
15/01/2024 GROCERY STORE 450.00
16-01-2024 SALARY TRANSFER 25,000.00`

	eng := New(nil)
	rec := eng.Interpret(text, "coop.txt", models.EngineConfig{})

	assert.Equal(t, "Unknown Bank (unknown)", rec.BankName)
	require.Len(t, rec.Transactions, 2)

	// Generic parsing extracts no balance, reference or indicator.
	for _, txn := range rec.Transactions {
		assert.Nil(t, txn.Balance)
		assert.Empty(t, txn.Reference)
	}
	assert.Equal(t, models.TypeDebit, rec.Transactions[0].Type)
	assert.Equal(t, models.TypeCredit, rec.Transactions[1].Type)
}

func TestInterpretNoTransactions(t *testing.T) {
	eng := New(nil)
	rec := eng.Interpret("HDFC Bank\nno transactions here", "empty.pdf", models.EngineConfig{})

	assert.Empty(t, rec.Transactions)
	assert.Zero(t, rec.Accuracy)
	assert.Equal(t, models.FieldNotFound, rec.AccountNumber)
	assert.Equal(t, models.FieldNotFound, rec.AccountHolder)
	assert.Equal(t, models.FieldNotFound, rec.StatementPeriod)
}

func TestInterpretRejectsInvalidDates(t *testing.T) {
	text := `HDFC Bank
31/02/2024 IMPOSSIBLE DATE 100.00 DR
15/02/2024 REAL TRANSACTION 200.00 DR`

	eng := New(nil)
	rec := eng.Interpret(text, "dates.pdf", models.EngineConfig{})

	require.Len(t, rec.Transactions, 1)
	assert.Equal(t, "2024-02-15", rec.Transactions[0].Date)
}

func TestInterpretDeterministic(t *testing.T) {
	eng := New(nil)
	first := eng.Interpret(hdfcStatement, "feb.pdf", models.EngineConfig{})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, eng.Interpret(hdfcStatement, "feb.pdf", models.EngineConfig{}))
	}
}

func TestInterpretProcessingMethodLabel(t *testing.T) {
	eng := New(nil)

	single := eng.Interpret(hdfcStatement, "a.pdf", models.EngineConfig{MultiPassExtraction: false})
	multi := eng.Interpret(hdfcStatement, "a.pdf", models.EngineConfig{MultiPassExtraction: true})

	assert.Equal(t, models.MethodSinglePass, single.ProcessingMethod)
	assert.Equal(t, models.MethodMultiPass, multi.ProcessingMethod)
	// The label is the only difference; extraction itself is unchanged.
	assert.Equal(t, single.Transactions, multi.Transactions)
}

func TestInterpretThresholdIsNotAFilter(t *testing.T) {
	eng := New(nil)

	loose := eng.Interpret(hdfcStatement, "a.pdf", models.EngineConfig{ConfidenceThreshold: 0.0})
	strict := eng.Interpret(hdfcStatement, "a.pdf", models.EngineConfig{ConfidenceThreshold: 0.99})

	assert.Equal(t, len(loose.Transactions), len(strict.Transactions))
}

func TestInterpretAmountsAreAbsolute(t *testing.T) {
	text := "Unlabelled Statement\n15/01/2024 REFUND ADJUSTMENT -450.00"

	eng := New(nil)
	rec := eng.Interpret(text, "neg.txt", models.EngineConfig{})

	require.Len(t, rec.Transactions, 1)
	assert.True(t, rec.Transactions[0].Amount.IsPositive())
	assert.False(t, strings.Contains(rec.Transactions[0].Amount.String(), "-"))
}
