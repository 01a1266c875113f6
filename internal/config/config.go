// Package config provides layered configuration for the statement engine:
// defaults, an optional config file, then environment variables, validated
// as a whole at startup.
package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds the full application configuration.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Engine      EngineConfig
	WorkerPool  WorkerPoolConfig
	Export      ExportConfig
}

// ApplicationConfig contains general application settings.
type ApplicationConfig struct {
	Name string
	Env  string
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// EngineConfig carries the engine defaults applied when a caller does not
// specify them per request.
type EngineConfig struct {
	MultiPassExtraction bool
	ConfidenceThreshold float64
}

// WorkerPoolConfig sizes the batch document pool.
type WorkerPoolConfig struct {
	Size int
}

// ExportConfig selects the export format for CLI batch runs.
type ExportConfig struct {
	Format string // "csv" or "xlsx"
}

func (c *Config) validate() error {
	var problems []string

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, "LOG_LEVEL must be one of debug, info, warn, error")
	}

	if c.Server.Port <= 0 {
		problems = append(problems, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		problems = append(problems, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		problems = append(problems, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}

	if c.Engine.ConfidenceThreshold < 0 || c.Engine.ConfidenceThreshold > 1 {
		problems = append(problems, "ENGINE_CONFIDENCE_THRESHOLD must be in [0,1]")
	}

	if c.WorkerPool.Size <= 0 {
		problems = append(problems, "WORKER_POOL_SIZE must be greater than 0")
	}

	switch strings.ToLower(c.Export.Format) {
	case "csv", "xlsx":
	default:
		problems = append(problems, "EXPORT_FORMAT must be csv or xlsx")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, ", "))
	}
	return nil
}
