package parser

import (
	"testing"

	"github.com/finlens/statement-engine/internal/models"
)

func TestExtractAccountNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labelled with colon", "Account Number: 50100123456789", "50100123456789"},
		{"abbreviated label", "A/C No. 123456789012", "123456789012"},
		{"masked digits", "Account No: XXXXXX4321", "XXXXXX4321"},
		{"lowercase label", "account number - 987654321", "987654321"},
		{"absent", "HDFC Bank Statement\nJanuary 2024", models.FieldNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractAccountNumber(tt.text); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractAccountHolder(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"account holder label", "Account Holder: RAHUL SHARMA", "RAHUL SHARMA"},
		{"customer name label", "Customer Name - Priya M. Nair", "Priya M. Nair"},
		{"bare name line", "Name: ARJUN MEHTA", "ARJUN MEHTA"},
		{"absent", "Statement of Account\n01/01/2024 to 31/01/2024", models.FieldNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractAccountHolder(tt.text); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractStatementPeriod(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"statement period label", "Statement Period: 01/01/2024 to 31/01/2024", "01/01/2024 to 31/01/2024"},
		{"period label", "Period - 01-01-2024 to 31-01-2024", "01-01-2024 to 31-01-2024"},
		{"from label", "From 01/01/2024 to 31/01/2024", "01/01/2024 to 31/01/2024"},
		{"absent", "Account Number: 123456789", models.FieldNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractStatementPeriod(tt.text); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
