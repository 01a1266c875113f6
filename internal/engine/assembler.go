// Package engine orchestrates one document's interpretation: bank
// detection, field extraction, the line-parsing cascade, deduplication and
// confidence scoring, assembled into a single StatementRecord.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/finlens/statement-engine/internal/bank"
	"github.com/finlens/statement-engine/internal/models"
	"github.com/finlens/statement-engine/internal/parser"
)

// Assembler interprets raw statement text. It holds only the read-only
// bank registry and a logger, so a single Assembler is safe to share
// across goroutines; Interpret is deterministic for identical inputs.
type Assembler struct {
	registry *bank.Registry
	logger   *slog.Logger
}

// New returns an Assembler over the fixed bank catalog.
func New(logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		registry: bank.NewRegistry(),
		logger:   logger,
	}
}

// Registry exposes the read-only bank catalog to callers.
func (a *Assembler) Registry() *bank.Registry {
	return a.registry
}

// Interpret converts one document's text into a StatementRecord. Per-line
// and per-field misses are absorbed as data (discarded lines, sentinel
// fields, empty transaction list); nothing in here raises an error.
func (a *Assembler) Interpret(text, fileName string, cfg models.EngineConfig) models.StatementRecord {
	code, profile := a.registry.Detect(text)

	bankName := fmt.Sprintf("Unknown Bank (%s)", code)
	if profile != nil {
		bankName = profile.Name
	}

	record := models.StatementRecord{
		FileName:         fileName,
		BankName:         bankName,
		AccountNumber:    parser.ExtractAccountNumber(text),
		AccountHolder:    parser.ExtractAccountHolder(text),
		StatementPeriod:  parser.ExtractStatementPeriod(text),
		ProcessingMethod: models.MethodSinglePass,
	}
	if cfg.MultiPassExtraction {
		record.ProcessingMethod = models.MethodMultiPass
	}

	lp := parser.NewLineParser(profile)
	var candidates []models.TransactionCandidate
	lines := parser.SplitLines(text)
	for _, line := range lines {
		if cand, ok := lp.Parse(line); ok {
			candidates = append(candidates, cand)
		}
	}

	candidates = parser.Dedupe(candidates)

	scorer := parser.NewScorer(profile)
	var layouts []string
	if profile != nil {
		layouts = profile.DateLayouts
	}

	for _, cand := range candidates {
		date, ok := parser.NormalizeDate(cand.Date, layouts)
		if !ok {
			// Dates that fail calendar validation are rejected, never
			// silently wrapped into a neighbouring month.
			a.logger.Debug("rejecting candidate with invalid date",
				"file", fileName, "date", cand.Date)
			continue
		}

		txn := models.Transaction{
			Date:        date,
			Description: cand.Description,
			Amount:      cand.Amount.Abs(),
			Type:        parser.ClassifyType(cand.RawType, cand.Description),
			Confidence:  scorer.Score(cand),
		}
		if cand.Balance != nil {
			txn.Balance = cand.Balance
		}
		if cand.Reference != nil {
			txn.Reference = *cand.Reference
		}
		record.Transactions = append(record.Transactions, txn)
	}

	record.Accuracy = parser.Accuracy(record.Transactions)

	a.logger.Debug("document interpreted",
		"file", fileName,
		"bank", record.BankName,
		"lines", len(lines),
		"transactions", len(record.Transactions),
		"accuracy", record.Accuracy,
	)

	return record
}
