// Package config reads the SDK's environment configuration.
package config

import (
	"os"
	"time"
)

// Config holds all SDK configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Zapay API
	BaseURL string

	// HTTP client
	HTTPTimeout time.Duration

	// Auth
	RefreshMargin time.Duration

	// Observability
	LogLevel     string
	OTLPEndpoint string
}

// Load reads configuration from environment variables with defaults.
// Every value can also be overridden programmatically through the
// client options.
func Load() *Config {
	return &Config{
		BaseURL: getEnv("ZAPAY_API_URL", "https://api.sandbox.usezapay.com.br"),

		HTTPTimeout: getEnvDuration("ZAPAY_HTTP_TIMEOUT", 30*time.Second),

		RefreshMargin: getEnvDuration("ZAPAY_REFRESH_MARGIN", time.Minute),

		LogLevel:     getEnv("ZAPAY_LOG_LEVEL", "info"),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
