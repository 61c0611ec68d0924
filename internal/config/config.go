package config

import (
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	DefaultAPIBaseURL = "http://localhost:8000"
	APITimeoutMillis  = 30000
)

type Config struct {
	AppEnv     string
	LogLevel   slog.Level
	APIBaseURL string        // Root address of the backend service
	APITimeout time.Duration // Fixed, not environment driven
}

func LoadConfig() *Config {
	return &Config{
		AppEnv:     getEnv("APP_ENV", "development"),    // Default development
		LogLevel:   getLogLevel(),                       // Default INFO
		APIBaseURL: BaseURLFromEnv(),                    // Default http://localhost:8000
		APITimeout: APITimeoutMillis * time.Millisecond, // 30 seconds
	}
}

// BaseURLFromEnv returns API_URL verbatim when it holds an absolute http(s)
// URL, and DefaultAPIBaseURL otherwise.
func BaseURLFromEnv() string {
	value := getEnvNonEmpty("API_URL", DefaultAPIBaseURL)
	if !isBaseURL(value) {
		return DefaultAPIBaseURL
	}
	return value
}

func isBaseURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// An empty value counts as unset.
func getEnvNonEmpty(key, fallback string) string {
	if value := getEnv(key, ""); value != "" {
		return value
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
