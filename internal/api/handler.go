// Package api exposes the interpretation engine over HTTP.
package api

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/finlens/statement-engine/internal/engine"
	"github.com/finlens/statement-engine/internal/export"
	"github.com/finlens/statement-engine/internal/extractor"
	"github.com/finlens/statement-engine/internal/models"
)

const version = "1.0.0"

// InterpretRequest is the JSON body for /api/interpret: raw statement text
// plus the per-request engine configuration.
type InterpretRequest struct {
	Text                string  `json:"text"`
	FileName            string  `json:"fileName"`
	MultiPassExtraction bool    `json:"multiPassExtraction"`
	ConfidenceThreshold float64 `json:"confidenceThreshold"`
}

// ExtractionInfo carries acquisition passthrough values for /api/convert.
type ExtractionInfo struct {
	Method     string  `json:"method"`
	Confidence float64 `json:"confidence"`
}

// Response is the JSON envelope for both endpoints.
type Response struct {
	Success    bool                    `json:"success"`
	Error      string                  `json:"error,omitempty"`
	RequestID  string                  `json:"requestId,omitempty"`
	Record     *models.StatementRecord `json:"record,omitempty"`
	CSV        string                  `json:"csv,omitempty"`
	Extraction *ExtractionInfo         `json:"extraction,omitempty"`
}

// Handler holds the HTTP handlers.
type Handler struct {
	Engine *engine.Assembler
	Logger *slog.Logger
}

// Register sets up the API routes on the fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/interpret", h.HandleInterpret)
	app.Post("/api/convert", h.HandleConvert)
}

// HandleHealth reports service liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleInterpret runs the engine over caller-supplied text. Line misses
// and missing fields never fail the request; the only client error is a
// body without text.
func (h *Handler) HandleInterpret(c *fiber.Ctx) error {
	var req InterpretRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid JSON body: "+err.Error())
	}
	if strings.TrimSpace(req.Text) == "" {
		return writeError(c, fiber.StatusBadRequest, "field 'text' is required")
	}
	if req.FileName == "" {
		req.FileName = "statement.txt"
	}

	requestID := uuid.New().String()
	record := h.Engine.Interpret(req.Text, req.FileName, models.EngineConfig{
		MultiPassExtraction: req.MultiPassExtraction,
		ConfidenceThreshold: req.ConfidenceThreshold,
	})

	h.Logger.Info("interpret request served",
		"request_id", requestID,
		"file", req.FileName,
		"transactions", len(record.Transactions),
		"accuracy", record.Accuracy,
	)

	return c.JSON(Response{
		Success:   true,
		RequestID: requestID,
		Record:    &record,
	})
}

// HandleConvert accepts an uploaded document, acquires its text and
// returns the interpreted record plus a CSV rendering of the detail table.
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "no file uploaded; use form field 'file'")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".pdf" && ext != ".txt" && ext != ".text" {
		return writeError(c, fiber.StatusBadRequest, "only .pdf and .txt files are supported")
	}

	tmp, err := os.CreateTemp("", "statement-*"+ext)
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "failed to create temp file")
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return writeError(c, fiber.StatusInternalServerError, "failed to save uploaded file")
	}

	multiPass := c.FormValue("multiPass") == "true"

	acquired, err := extractor.Extract(tmpPath, multiPass)
	if err != nil {
		// The one document-scoped failure mode: unreadable input.
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	requestID := uuid.New().String()
	record := h.Engine.Interpret(acquired.Text(), fileHeader.Filename, models.EngineConfig{
		MultiPassExtraction: multiPass,
	})

	_, details := export.Flatten([]models.StatementRecord{record})
	var csvBuf bytes.Buffer
	if err := (export.CSVWriter{}).WriteDetail(&csvBuf, details); err != nil {
		return writeError(c, fiber.StatusInternalServerError, "csv generation failed: "+err.Error())
	}

	h.Logger.Info("convert request served",
		"request_id", requestID,
		"file", fileHeader.Filename,
		"extraction_method", acquired.Method,
		"transactions", len(record.Transactions),
	)

	return c.JSON(Response{
		Success:   true,
		RequestID: requestID,
		Record:    &record,
		CSV:       csvBuf.String(),
		Extraction: &ExtractionInfo{
			Method:     acquired.Method,
			Confidence: acquired.Confidence,
		},
	})
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(Response{Success: false, Error: msg})
}
