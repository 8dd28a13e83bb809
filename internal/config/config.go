package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Checkout CheckoutConfig
	Session  SessionConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int

	// AllowedOrigins is the CORS origin allowlist. Empty means any
	// origin is allowed; the request origin is echoed back because
	// browsers reject a wildcard on credentialed (cookie) requests.
	AllowedOrigins []string
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections    int
	MinConnections    int
	MaxConnLifetime   int // seconds
	MaxConnIdleTime   int // seconds
	HealthCheckPeriod int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// CheckoutConfig holds checkout-related configuration.
type CheckoutConfig struct {
	// ConfirmDelay is how long the order-confirmed state is shown before
	// the cart clears and the checkout view closes. A UX timing value,
	// not a contract.
	ConfirmDelay time.Duration
}

// SessionConfig holds session lifecycle configuration.
type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// Load loads configuration from environment variables. A .env file in
// the working directory is applied first when present.
func Load() (*Config, error) {
	// Missing .env is the normal case in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:              getEnv("DB_HOST", "localhost"),
			Port:              getEnvAsInt("DB_PORT", 5432),
			User:              getEnv("DB_USER", "postgres"),
			Password:          getEnv("DB_PASSWORD", ""),
			Database:          getEnv("DB_NAME", "quickbite"),
			MaxConnections:    getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:    getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime:   getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
			MaxConnIdleTime:   getEnvAsInt("DB_MAX_CONN_IDLE_TIME", 1800),
			HealthCheckPeriod: getEnvAsInt("DB_HEALTH_CHECK_PERIOD", 60),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Checkout: CheckoutConfig{
			ConfirmDelay: time.Duration(getEnvAsInt("CHECKOUT_CONFIRM_DELAY_MS", 3000)) * time.Millisecond,
		},
		Session: SessionConfig{
			TTL:           time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
			SweepInterval: time.Duration(getEnvAsInt("SESSION_SWEEP_MINUTES", 10)) * time.Minute,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Database.MaxConnLifetime < 1 {
		return fmt.Errorf("database max connection lifetime must be at least one second")
	}

	if c.Database.MaxConnIdleTime < 1 {
		return fmt.Errorf("database max connection idle time must be at least one second")
	}

	if c.Database.HealthCheckPeriod < 1 {
		return fmt.Errorf("database health check period must be at least one second")
	}

	if c.Checkout.ConfirmDelay < 0 {
		return fmt.Errorf("checkout confirm delay cannot be negative")
	}

	if c.Session.TTL < time.Minute {
		return fmt.Errorf("session TTL must be at least one minute")
	}

	if c.Session.SweepInterval < time.Second {
		return fmt.Errorf("session sweep interval must be at least one second")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsSlice retrieves a comma-separated environment variable, nil
// when unset or empty.
func getEnvAsSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
