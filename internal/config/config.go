// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	FrontendURL string
	DBPath      string
	ContentPath string

	LLM       LLMConfig
	RateLimit RateLimitConfig
}

// LLMConfig controls the completion provider call. APIKey may be empty at
// load time; the gateway reports a configuration error when it is used.
type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// RateLimitConfig holds per-endpoint throttling thresholds sharing one window.
type RateLimitConfig struct {
	ChatLimit    int
	ContactLimit int
	Window       time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", ""),
		DBPath:      getEnv("DB_PATH", "./data/portfolio.db"),
		ContentPath: getEnv("CONTENT_PATH", ""),
		LLM: LLMConfig{
			APIKey:  getEnv("NVIDIA_API_KEY", ""),
			Model:   getEnv("CHATBOT_MODEL", ""),
			BaseURL: getEnv("CHATBOT_API_URL", ""),
			Timeout: getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		},
		RateLimit: RateLimitConfig{
			ChatLimit:    getEnvInt("CHAT_RATE_LIMIT", 30),
			ContactLimit: getEnvInt("CONTACT_RATE_LIMIT", 5),
			Window:       getEnvDuration("RATE_LIMIT_WINDOW", time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.RateLimit.ChatLimit <= 0 {
		return fmt.Errorf("CHAT_RATE_LIMIT must be > 0")
	}
	if c.RateLimit.ContactLimit <= 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT must be > 0")
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be > 0")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
