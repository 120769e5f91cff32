// Package config provides application configuration through environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ShutdownTimeout bounds how long the servers wait for in-flight requests on shutdown.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// RateLimitEnabled indicates whether per-IP rate limiting of the API is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second for each client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for each client IP.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// DigestCacheEnabled indicates whether computed digests are memoized.
	DigestCacheEnabled bool
	// DigestCacheTTL is the sliding expiration of a memoized digest.
	DigestCacheTTL time.Duration

	// DefaultCipherScheme is the scheme used by encrypt requests that do not name one.
	DefaultCipherScheme string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Rate Limiting (IP-based, all API endpoints)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "passcrypt"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		// Digest cache
		DigestCacheEnabled: env.GetBool("DIGEST_CACHE_ENABLED", true),
		DigestCacheTTL:     env.GetDuration("DIGEST_CACHE_TTL_SECONDS", 300, time.Second),

		// Cipher
		DefaultCipherScheme: env.GetString("DEFAULT_CIPHER_SCHEME", string(cipherDomain.Salted)),
	}
}

// Validate reports configuration values that would make the application misbehave.
func (c *Config) Validate() error {
	if _, err := cipherDomain.ParseScheme(c.DefaultCipherScheme); err != nil {
		return fmt.Errorf("invalid DEFAULT_CIPHER_SCHEME: %w", err)
	}

	if c.RateLimitEnabled && (c.RateLimitRequestsPerSec <= 0 || c.RateLimitBurst <= 0) {
		return fmt.Errorf(
			"rate limit requires positive RATE_LIMIT_REQUESTS_PER_SEC and RATE_LIMIT_BURST, got %v and %d",
			c.RateLimitRequestsPerSec,
			c.RateLimitBurst,
		)
	}

	return nil
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
