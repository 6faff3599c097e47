package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/PILLP-HO/pillp-lms/internal/app"
	"github.com/PILLP-HO/pillp-lms/internal/config"
	"github.com/PILLP-HO/pillp-lms/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunNotifier(ctx, cfg, logger); err != nil {
		logger.Fatal("run notifier failed", zap.Error(err))
	}
}
