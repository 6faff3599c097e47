package main

import (
	"context"
	"time"

	"github.com/PILLP-HO/pillp-lms/internal/app"
	"github.com/PILLP-HO/pillp-lms/internal/bootstrap"
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

	// build dependency + routes
	a, err := app.BuildApp(cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer a.Close()

	r := app.BuildRouter(a, logger)

	auditLogger := bootstrap.NewStdoutAuditLogger()
	auditLogger.Log(context.Background(), bootstrap.AuditLog{
		Action:  "SERVER_START",
		Message: "Leave management API starting",
		Meta: map[string]any{
			"env":           cfg.AppEnv,
			"port":          cfg.Port,
			"data_dir":      cfg.DataDir,
			"generated_dir": cfg.GeneratedDir,
		},
	})
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	)
}
