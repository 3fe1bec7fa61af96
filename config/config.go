// Package config provides configuration management for the order service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Session  SessionConfig
	Sheet    SheetConfig
	TextGen  TextGenConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// CatalogConfig holds product catalog configuration.
type CatalogConfig struct {
	// Path is a JSON catalog file; when empty the built-in catalog is used.
	Path string
}

// SessionConfig holds form session configuration.
type SessionConfig struct {
	// TTL is how long an untouched form survives before eviction.
	TTL time.Duration
}

// SheetConfig holds spreadsheet collaborator configuration.
type SheetConfig struct {
	// WebhookURL is the order recording endpoint; empty means unconfigured
	// and every submission fails with a configuration error.
	WebhookURL string
	Timeout    time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// TextGenConfig holds confirmation text generation configuration.
type TextGenConfig struct {
	// APIKey authenticates with the generation endpoint; empty means
	// unavailable and submissions fall back to a local template.
	APIKey      string
	Endpoint    string
	Model       string
	Temperature float64
	Timeout     time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// DatabaseConfig holds MongoDB configuration for the order archive.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 60*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},
		Session: SessionConfig{
			TTL: getEnvDuration("SESSION_TTL", 30*time.Minute),
		},
		Sheet: SheetConfig{
			WebhookURL:                     getEnv("SHEET_WEBHOOK_URL", ""),
			Timeout:                        getEnvDuration("SHEET_TIMEOUT", 15*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("SHEET_CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("SHEET_CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("SHEET_CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		TextGen: TextGenConfig{
			APIKey:                         getEnv("TEXTGEN_API_KEY", ""),
			Endpoint:                       getEnv("TEXTGEN_ENDPOINT", ""),
			Model:                          getEnv("TEXTGEN_MODEL", ""),
			Temperature:                    getEnvFloat("TEXTGEN_TEMPERATURE", 0.3),
			Timeout:                        getEnvDuration("TEXTGEN_TIMEOUT", 20*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("TEXTGEN_CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("TEXTGEN_CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("TEXTGEN_CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "order_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
