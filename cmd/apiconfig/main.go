package main

import (
	"os"

	"github.com/aicontext/webclient-go/internal/cli"
	"github.com/aicontext/webclient-go/internal/config"
	"github.com/aicontext/webclient-go/internal/logger"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg, os.Stderr)

	// 3. Commands
	app := cli.New(cfg, appLogger)
	if err := app.Run(); err != nil {
		appLogger.Error("❌ apiconfig failed", "error", err, "usage_error", app.UsageError())
		os.Exit(1)
	}
}
