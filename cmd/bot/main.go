package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sourcegraph/conc"

	"github.com/prasetyowira/matchday/internal/app"
	"github.com/prasetyowira/matchday/internal/config"
	"github.com/prasetyowira/matchday/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	logging.SetDefault(logger)

	bot, err := app.NewBot(cfg, logger)
	if err != nil {
		logger.Error("build bot", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg conc.WaitGroup
	wg.Go(func() {
		if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("bot run failed", "error", err)
		}
	})
	wg.Wait()

	logger.Info("telegram bot stopped")
}
