// Package batch runs the interpretation engine over many documents on a
// bounded worker pool. Documents never share state, so the only
// coordination is the pool itself; a failed document reports its own error
// and never aborts its siblings.
package batch

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/finlens/statement-engine/internal/engine"
	"github.com/finlens/statement-engine/internal/extractor"
	"github.com/finlens/statement-engine/internal/models"
)

// Result is the outcome for one document. Method and
// ExtractionConfidence are acquisition passthrough values (the engine
// never uses them); Err is set only on acquisition failure, in which case
// Record is nil.
type Result struct {
	ID                   uuid.UUID
	Path                 string
	Record               *models.StatementRecord
	Method               string
	ExtractionConfidence float64
	Err                  error
}

// AcquireFunc is the upstream text-acquisition collaborator.
type AcquireFunc func(path string, multiPass bool) (*extractor.Result, error)

// Processor fans documents out over an ants pool.
type Processor struct {
	pool    *ants.Pool
	engine  *engine.Assembler
	acquire AcquireFunc
	logger  *slog.Logger
}

// NewProcessor creates a processor with the given pool size. acquire may
// be nil, in which case file-based extraction is used.
func NewProcessor(size int, eng *engine.Assembler, acquire AcquireFunc, logger *slog.Logger) (*Processor, error) {
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	if acquire == nil {
		acquire = extractor.Extract
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{pool: pool, engine: eng, acquire: acquire, logger: logger}, nil
}

// Release shuts the worker pool down.
func (p *Processor) Release() {
	p.pool.Release()
}

// Process interprets every path and returns results in input order.
func (p *Processor) Process(paths []string, cfg models.EngineConfig) []Result {
	results := make([]Result, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = p.processOne(path, cfg)
		}
		if err := p.pool.Submit(task); err != nil {
			// Pool rejected the task (released or overloaded); run inline
			// so the document still gets processed.
			task()
		}
	}

	wg.Wait()
	return results
}

func (p *Processor) processOne(path string, cfg models.EngineConfig) Result {
	res := Result{ID: uuid.New(), Path: path}
	logger := p.logger.With("document_id", res.ID.String(), "path", path)

	acquired, err := p.acquire(path, cfg.MultiPassExtraction)
	if err != nil {
		logger.Error("text acquisition failed", "error", err)
		res.Err = err
		return res
	}

	record := p.engine.Interpret(acquired.Text(), path, cfg)
	res.Record = &record
	res.Method = acquired.Method
	res.ExtractionConfidence = acquired.Confidence

	logger.Info("document processed",
		"bank", record.BankName,
		"transactions", len(record.Transactions),
		"accuracy", record.Accuracy,
		"extraction_method", acquired.Method,
	)
	return res
}
