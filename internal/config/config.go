package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"tribunal/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	AI       AIConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// AIConfig holds settings for the optional generative narrative service.
// An empty APIKey disables the generative path; the deterministic
// template is then the only strategy.
type AIConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Enabled reports whether the generative path may be attempted.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// Load reads configuration from environment variables. A .env file is
// honored when present but never required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		AI: AIConfig{
			APIKey:      os.Getenv("OPENAI_API_KEY"),
			Model:       envOr("OPENAI_MODEL", "gpt-4.1-mini"),
			BaseURL:     os.Getenv("OPENAI_BASE_URL"),
			MaxTokens:   envInt("OPENAI_MAX_TOKENS", 1024),
			Temperature: envFloat("OPENAI_TEMPERATURE", 0.2),
			Timeout:     envDuration("OPENAI_TIMEOUT", 20*time.Second),
		},
		Server: ServerConfig{
			Port: envOr("PORT", "8080"),
		},
	}

	if cfg.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
