// Package main is the entry point for the flat-earth day/night viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/flat-earth/internal/app"
	"github.com/Faultbox/flat-earth/internal/config"
	"github.com/Faultbox/flat-earth/internal/engine/scene"
	"github.com/Faultbox/flat-earth/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Flat Earth ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.WriteConfig() {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("failed to write config", zap.Error(err))
			return 1
		}
		logger.Info("config written", zap.String("file", path))
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Headless: render one frame and exit
	if path := config.SnapshotPath(); path != "" {
		if err := scene.Snapshot(ctx, cfg, path); err != nil {
			logger.Error("snapshot failed", zap.Error(err))
			return 1
		}
		return 0
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		return 1
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		logger.Error("main loop error", zap.Error(err))
		return 1
	}

	logger.Info("closed normally")
	return 0
}
