package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/finlens/statement-engine/internal/api"
	"github.com/finlens/statement-engine/internal/batch"
	"github.com/finlens/statement-engine/internal/config"
	"github.com/finlens/statement-engine/internal/engine"
	"github.com/finlens/statement-engine/internal/export"
	"github.com/finlens/statement-engine/internal/logger"
	"github.com/finlens/statement-engine/internal/models"
)

func main() {
	configFlag := flag.String("config", "statement-engine", "Config file base name (searched in ./configs and .)")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of batch conversion")
	outputFlag := flag.String("output", "statements", "Output base path (batch mode)")
	formatFlag := flag.String("format", "", "Export format: csv or xlsx (overrides config)")
	multiPassFlag := flag.Bool("multi-pass", false, "Enable multi-pass text extraction")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Bank Statement Interpretation Engine

Converts bank statement text (PDF or pre-extracted TXT) into structured,
confidence-scored transaction records.

Usage:
  statement-engine [flags] <statement.pdf> [statement2.txt ...]
  statement-engine -serve

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Convert statements to summary + transactions CSV tables
  statement-engine jan.pdf feb.pdf

  # Excel workbook output
  statement-engine -format=xlsx -output=q1 jan.pdf feb.pdf mar.pdf

  # Run the HTTP API
  statement-engine -serve
`)
	}

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Logging.Level)
	eng := engine.New(log)

	if *serveFlag {
		if err := serve(cfg, eng, log); err != nil {
			log.Error("server exited", "error", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	engineCfg := models.EngineConfig{
		MultiPassExtraction: cfg.Engine.MultiPassExtraction || *multiPassFlag,
		ConfidenceThreshold: cfg.Engine.ConfidenceThreshold,
	}
	format := cfg.Export.Format
	if *formatFlag != "" {
		format = *formatFlag
	}

	if err := runBatch(cfg, eng, log, flag.Args(), engineCfg, format, *outputFlag); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func serve(cfg *config.Config, eng *engine.Assembler, log *slog.Logger) error {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Application.Name,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	h := &api.Handler{Engine: eng, Logger: log}
	h.Register(app)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("starting HTTP API", "addr", addr)
	return app.Listen(addr)
}

func runBatch(cfg *config.Config, eng *engine.Assembler, log *slog.Logger,
	paths []string, engineCfg models.EngineConfig, format, outputBase string) error {

	proc, err := batch.NewProcessor(cfg.WorkerPool.Size, eng, nil, log)
	if err != nil {
		return fmt.Errorf("creating worker pool: %w", err)
	}
	defer proc.Release()

	results := proc.Process(paths, engineCfg)

	var records []models.StatementRecord
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			// A failed document reports and moves on; it never blocks
			// the rest of the batch.
			fmt.Fprintf(os.Stderr, "failed: %s: %v\n", res.Path, res.Err)
			failed++
			continue
		}
		records = append(records, *res.Record)
		fmt.Printf("%s: %s, %d transaction(s), accuracy %.1f%% (extracted via %s)\n",
			res.Path, res.Record.BankName, len(res.Record.Transactions),
			res.Record.Accuracy, res.Method)
	}

	if len(records) == 0 {
		return fmt.Errorf("no documents could be processed (%d failed)", failed)
	}

	summaries, details := export.Flatten(records)
	switch strings.ToLower(format) {
	case "xlsx":
		path := outputBase + ".xlsx"
		if err := (export.XLSXWriter{}).WriteToFile(path, summaries, details); err != nil {
			return err
		}
		fmt.Printf("output: %s\n", path)
	default:
		if err := (export.CSVWriter{}).WriteToFiles(outputBase, summaries, details); err != nil {
			return err
		}
		fmt.Printf("output: %s_summary.csv, %s_transactions.csv\n", outputBase, outputBase)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d document(s) failed\n", failed)
	}
	return nil
}
