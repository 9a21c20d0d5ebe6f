package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Server      ServerConfig
	Logging     LoggingConfig
	Defaults    DefaultsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	SwaggerEnabled       bool
	SlowRequestThreshold time.Duration
	ShutdownTimeout      time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // "text" or "json"
}

// DefaultsConfig holds fallback values for absent query parameters
type DefaultsConfig struct {
	GuestName     string
	NatureKeyword string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("SWAGGER_ENABLED", true)
	v.SetDefault("SLOW_REQUEST_THRESHOLD_MS", 1000)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 30)
	v.SetDefault("DEFAULT_GUEST_NAME", "Gast")
	v.SetDefault("DEFAULT_NATURE_KEYWORD", "nature")

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		Server: ServerConfig{
			SwaggerEnabled:       v.GetBool("SWAGGER_ENABLED"),
			SlowRequestThreshold: time.Duration(v.GetInt("SLOW_REQUEST_THRESHOLD_MS")) * time.Millisecond,
			ShutdownTimeout:      time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		Defaults: DefaultsConfig{
			GuestName:     v.GetString("DEFAULT_GUEST_NAME"),
			NatureKeyword: v.GetString("DEFAULT_NATURE_KEYWORD"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %q: must be an integer between 1 and 65535", c.Port)
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.Logging.Level, err)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", c.Logging.Format)
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
