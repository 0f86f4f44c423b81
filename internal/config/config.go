package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Recent-search persistence. An explicitly empty RECENT_FILE disables it.
	RecentFile  string
	RecentLimit int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	recentLimit, err := parseRecentLimit()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		RecentFile:      recentFilePath(),
		RecentLimit:     recentLimit,
	}

	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, errors.New("LOG_FORMAT must be json or text")
	}

	return cfg, nil
}

// envOrDefault returns the value of the environment variable or fallback when unset.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseShutdownTimeout() (time.Duration, error) {
	s := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	return d, nil
}

func parseRecentLimit() (int, error) {
	s := os.Getenv("RECENT_LIMIT")
	if s == "" {
		return 5, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid RECENT_LIMIT")
	}
	return n, nil
}

// recentFilePath resolves where recent searches are stored. A set-but-empty
// RECENT_FILE disables persistence; unset falls back to the user cache dir,
// or to no persistence when that is unavailable.
func recentFilePath() string {
	if v, ok := os.LookupEnv("RECENT_FILE"); ok {
		return v
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(cache, "coverage-advisor", "recent.json")
}
