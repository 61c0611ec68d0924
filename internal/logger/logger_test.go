package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aicontext/webclient-go/internal/config"
	"github.com/aicontext/webclient-go/internal/logger"
)

func TestNewLogger_Development(t *testing.T) {
	cfg := &config.Config{
		AppEnv:   "development",
		LogLevel: slog.LevelDebug,
	}

	var buf bytes.Buffer
	log := logger.New(cfg, &buf)

	require.NotNil(t, log)
	log.Debug("test message", "base_url", "http://localhost:8000")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "base_url=http://localhost:8000")
}

func TestNewLogger_Production(t *testing.T) {
	cfg := &config.Config{
		AppEnv:   "Production",
		LogLevel: slog.LevelInfo,
	}

	var buf bytes.Buffer
	log := logger.New(cfg, &buf)

	log.Info("test message", slog.String("key", "value"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "test message", record["msg"])
	assert.Equal(t, "value", record["key"])
}

func TestNewLogger_SetsDefault(t *testing.T) {
	cfg := &config.Config{LogLevel: slog.LevelInfo}

	var buf bytes.Buffer
	log := logger.New(cfg, &buf)

	assert.Same(t, log, slog.Default())
	slog.Info("via default")
	assert.Contains(t, buf.String(), "via default")
}

func TestNewLogger_NilWriter(t *testing.T) {
	cfg := &config.Config{LogLevel: slog.LevelInfo}

	assert.NotNil(t, logger.New(cfg, nil))
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	testCases := []struct {
		name      string
		logLevel  slog.Level
		wantDebug bool
		wantWarn  bool
	}{
		{"Debug", slog.LevelDebug, true, true},
		{"Info", slog.LevelInfo, false, true},
		{"Warn", slog.LevelWarn, false, true},
		{"Error", slog.LevelError, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.New(&config.Config{LogLevel: tc.logLevel}, &buf)

			log.Debug("debug message")
			log.Warn("warn message")

			output := buf.String()
			assert.Equal(t, tc.wantDebug, strings.Contains(output, "debug message"))
			assert.Equal(t, tc.wantWarn, strings.Contains(output, "warn message"))
		})
	}
}
