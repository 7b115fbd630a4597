// Package config provides application configuration from the environment.
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
	DeepSeekAPIKey string
	DeepSeekAPIURL string
	DeepSeekModel  string
	AITimeout      time.Duration

	WebhookURL    string
	WebhookAPIKey string

	STTURL string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DeepSeekAPIKey: getEnv("DEEPSEEK_API_KEY", ""),
		DeepSeekAPIURL: getEnv("DEEPSEEK_API_URL", "https://api.deepseek.com/v1"),
		DeepSeekModel:  getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		AITimeout:      time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 10)) * time.Second,
		WebhookURL:     getEnv("WEBHOOK_URL", "https://webhooks.freshauto.ru/handle_reclamation"),
		WebhookAPIKey:  getEnv("WEBHOOK_API_KEY", ""),
		STTURL:         getEnv("STT_URL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.WebhookURL == "" {
		return fmt.Errorf("WEBHOOK_URL cannot be empty")
	}
	if c.DeepSeekAPIURL == "" {
		return fmt.Errorf("DEEPSEEK_API_URL cannot be empty")
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT_SECONDS must be > 0")
	}
	return nil
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
