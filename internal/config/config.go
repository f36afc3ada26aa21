package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Analyzer provider names.
const (
	AnalyzerLocal  = "local"
	AnalyzerRemote = "remote"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	RedisURL string
	DataDir  string // custom beat sheet templates live in DataDir/templates

	AnalyzerProvider string // "remote" or "local"
	AnalyzerURL      string
	AnalyzerAPIKey   string
	AnalyzerRPS      float64 // request rate limit toward the remote analyzer
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		LogLevel:         parseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisURL:         getEnv("REDIS_URL", "localhost:6379"),
		DataDir:          getEnv("DATA_DIR", "./data"),
		AnalyzerProvider: strings.ToLower(getEnv("ANALYZER_PROVIDER", AnalyzerLocal)),
		AnalyzerURL:      getEnv("ANALYZER_URL", ""),
		AnalyzerAPIKey:   getEnv("ANALYZER_API_KEY", ""),
		AnalyzerRPS:      getFloatEnv("ANALYZER_RPS", 2),
	}

	switch cfg.AnalyzerProvider {
	case AnalyzerLocal:
	case AnalyzerRemote:
		if cfg.AnalyzerURL == "" {
			return nil, fmt.Errorf("ANALYZER_URL is required when ANALYZER_PROVIDER is %q", AnalyzerRemote)
		}
	default:
		return nil, fmt.Errorf("invalid ANALYZER_PROVIDER %q (supported: local, remote)", cfg.AnalyzerProvider)
	}

	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
			return f
		}
	}
	return defaultValue
}
