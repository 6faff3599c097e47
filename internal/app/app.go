package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PILLP-HO/pillp-lms/internal/config"
	"github.com/PILLP-HO/pillp-lms/internal/directory"
	"github.com/PILLP-HO/pillp-lms/internal/leave"
	"github.com/PILLP-HO/pillp-lms/internal/messaging/kafka/producer"
	"github.com/PILLP-HO/pillp-lms/internal/notify"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	employeeLedgerFile = "employee_leave_applications.xlsx"
	staffLedgerFile    = "hr_leave_applications.xlsx"
)

// App holds the wired dependency graph for the HTTP process.
type App struct {
	Config    config.Config
	Directory directory.Service
	Leaves    leave.Service

	Redis       *redis.Client
	kafkaWriter *kafkago.Writer
}

// BuildApp loads config, opens the rosters and ledgers, and wires the
// notification path. Twilio and Kafka are both optional: without Twilio
// credentials deliveries are logged, without a broker they are dispatched
// in-process.
func BuildApp(cfg config.Config, logger *zap.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.GeneratedDir, 0o755); err != nil {
		return nil, fmt.Errorf("create generated dir: %w", err)
	}

	dirRepo, err := directory.NewRepository(cfg.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("load rosters: %w", err)
	}
	dirService := directory.NewService(dirRepo, logger)

	employeeLedger, err := leave.NewLedger(leave.OriginEmployee, filepath.Join(cfg.GeneratedDir, employeeLedgerFile), logger)
	if err != nil {
		return nil, fmt.Errorf("open employee ledger: %w", err)
	}
	staffLedger, err := leave.NewLedger(leave.OriginStaff, filepath.Join(cfg.GeneratedDir, staffLedgerFile), logger)
	if err != nil {
		return nil, fmt.Errorf("open staff ledger: %w", err)
	}

	app := &App{Config: cfg}

	var dispatcher notify.Dispatcher
	if cfg.KafkaBroker != "" {
		app.kafkaWriter = producer.NewWriter(cfg.KafkaBroker)
		dispatcher = producer.NewDispatcher(app.kafkaWriter, logger)
		logger.Info("notification dispatch via kafka", zap.String("broker", cfg.KafkaBroker))
	} else {
		dispatcher = notify.NewGatewayDispatcher(BuildGateway(cfg, logger), logger)
		logger.Info("notification dispatch in-process")
	}

	if cfg.RedisAddr != "" {
		app.Redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	app.Directory = dirService
	app.Leaves = leave.NewService(employeeLedger, staffLedger, dirService, dispatcher, logger)
	return app, nil
}

// BuildGateway picks the delivery backend: Twilio when credentials are
// present, a log-only gateway otherwise.
func BuildGateway(cfg config.Config, logger *zap.Logger) notify.Gateway {
	if cfg.TwilioConfigured() {
		return notify.NewTwilioGateway(
			cfg.TwilioAccountSID,
			cfg.TwilioAuthToken,
			cfg.TwilioWhatsAppFrom,
			cfg.TemplateSIDs,
			logger,
		)
	}
	logger.Warn("twilio not configured, whatsapp messages will be logged only")
	return notify.NewLogGateway(logger)
}

// Close releases broker and cache connections.
func (a *App) Close() {
	if a.kafkaWriter != nil {
		_ = a.kafkaWriter.Close()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
}
