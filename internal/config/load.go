package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Load reads configuration in layers: defaults, then an optional config
// file (./configs or the working directory), then environment variables.
// The merged result is validated before being returned.
func Load(configName string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No file is fine; defaults and environment cover everything.
	}

	v.AutomaticEnv()

	cfg := &Config{
		Application: ApplicationConfig{
			Name: v.GetString("APP_NAME"),
			Env:  v.GetString("APP_ENV"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("SERVER_PORT"),
			ReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
		},
		Engine: EngineConfig{
			MultiPassExtraction: v.GetBool("ENGINE_MULTI_PASS"),
			ConfidenceThreshold: v.GetFloat64("ENGINE_CONFIDENCE_THRESHOLD"),
		},
		WorkerPool: WorkerPoolConfig{
			Size: v.GetInt("WORKER_POOL_SIZE"),
		},
		Export: ExportConfig{
			Format: v.GetString("EXPORT_FORMAT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "statement-engine")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30*time.Second)
	v.SetDefault("ENGINE_MULTI_PASS", false)
	v.SetDefault("ENGINE_CONFIDENCE_THRESHOLD", 0.5)
	v.SetDefault("WORKER_POOL_SIZE", 4)
	v.SetDefault("EXPORT_FORMAT", "csv")
}
