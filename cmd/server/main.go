// Package main implements the entry point for the Provet API server,
// which generates veterinary discharge notes from consultation
// documents via an LLM integration.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/provetlabs/provet-api/internal/config"
	"github.com/provetlabs/provet-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run loads configuration, wires the application and starts the HTTP
// server. Separated from main so initialization failures propagate as
// errors instead of os.Exit calls scattered through the wiring.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"templates_dir", cfg.Paths.TemplatesDir,
		"output_dir", cfg.Paths.OutputDir)

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		appLogger.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
