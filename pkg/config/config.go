// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sundialhq/maestro/pkg/database"
)

// Config is the full application configuration.
type Config struct {
	// HTTP server.
	ListenAddr string

	// LLM sidecar.
	LLM LLMConfig

	// Database.
	Database database.Config

	// Retention knobs for the cleanup janitors.
	Retention RetentionConfig

	// Approval notifications (optional).
	Notify NotifyConfig
}

// LLMConfig configures the gRPC connection to the LLM sidecar.
type LLMConfig struct {
	// Addr is the sidecar's gRPC address.
	Addr string
	// MaxConcurrent bounds in-flight completions across the process.
	MaxConcurrent int64
}

// RetentionConfig holds the janitor knobs.
type RetentionConfig struct {
	CleanupInterval time.Duration
	DraftRetention  time.Duration
	EventTTL        time.Duration
}

// NotifyConfig configures Slack approval notifications. Empty token or
// channel disables notifications.
type NotifyConfig struct {
	SlackToken   string
	SlackChannel string
	DashboardURL string
}

// Load reads the configuration from environment variables, applying
// defaults for everything optional.
func Load() (*Config, error) {
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("database config: %w", err)
	}

	maxConcurrent, err := intEnv("LLM_MAX_CONCURRENT", 8)
	if err != nil {
		return nil, err
	}

	cleanupInterval, err := durationEnv("CLEANUP_INTERVAL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	draftRetention, err := durationEnv("DRAFT_RETENTION", 30*24*time.Hour)
	if err != nil {
		return nil, err
	}
	eventTTL, err := durationEnv("EVENT_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ListenAddr: getEnvOrDefault("LISTEN_ADDR", ":8080"),
		LLM: LLMConfig{
			Addr:          getEnvOrDefault("LLM_ADDR", "localhost:50051"),
			MaxConcurrent: int64(maxConcurrent),
		},
		Database: dbConfig,
		Retention: RetentionConfig{
			CleanupInterval: cleanupInterval,
			DraftRetention:  draftRetention,
			EventTTL:        eventTTL,
		},
		Notify: NotifyConfig{
			SlackToken:   os.Getenv("SLACK_TOKEN"),
			SlackChannel: os.Getenv("SLACK_CHANNEL"),
			DashboardURL: getEnvOrDefault("DASHBOARD_URL", "http://localhost:8080"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("LISTEN_ADDR must not be empty")
	}
	if c.LLM.Addr == "" {
		return fmt.Errorf("LLM_ADDR must not be empty")
	}
	if c.LLM.MaxConcurrent < 1 {
		return fmt.Errorf("LLM_MAX_CONCURRENT must be at least 1")
	}
	if c.Retention.CleanupInterval < time.Second {
		return fmt.Errorf("CLEANUP_INTERVAL must be at least 1s")
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return val, nil
}

func durationEnv(key string, defaultVal time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return val, nil
}
