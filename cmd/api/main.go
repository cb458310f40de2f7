package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/denisok6893-rgb/brew-matching/internal/app"
	"github.com/denisok6893-rgb/brew-matching/internal/config"
	"github.com/denisok6893-rgb/brew-matching/internal/logging"
)

func main() {
	cfg, err := config.Load(nil, os.Getenv("BREW_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("build app", zap.Error(err))
	}
	defer func() { _ = a.Close() }()

	if err := a.Server.Run(ctx, cfg.Server.Address); err != nil {
		logger.Error("server error", zap.Error(err))
	}
	logger.Info("API stopped")
}
