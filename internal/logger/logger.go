package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aicontext/webclient-go/internal/config"
)

// New builds the process logger and installs it as the slog default.
// A nil writer means stderr, so stdout stays free for command output.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if strings.ToLower(cfg.AppEnv) == "production" {
		// JSON format
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Human-readable format
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	return logger
}
