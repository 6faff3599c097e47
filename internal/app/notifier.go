package app

import (
	"context"
	"fmt"

	"github.com/PILLP-HO/pillp-lms/internal/config"
	"github.com/PILLP-HO/pillp-lms/internal/events"
	"github.com/PILLP-HO/pillp-lms/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const notifierGroupID = "pillp-lms-notifier"

// RunNotifier consumes queued notification events until the context is
// cancelled. It requires KAFKA_BROKER to be set.
func RunNotifier(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required for the notifier")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   events.LeaveNotificationsTopic,
		GroupID: notifierGroupID,
	})
	defer reader.Close()

	gateway := BuildGateway(cfg, logger)
	consumer.ConsumeLeaveNotifications(ctx, reader, gateway, logger)
	return nil
}
