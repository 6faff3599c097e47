package consumer

import (
	"context"
	"encoding/json"

	"github.com/PILLP-HO/pillp-lms/internal/events"
	"github.com/PILLP-HO/pillp-lms/internal/notify"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveNotifications delivers queued notification events through the
// messaging gateway. Delivery failures are not committed, so the broker
// redelivers them; undecodable messages are committed and dropped.
func ConsumeLeaveNotifications(
	ctx context.Context,
	reader *kafkago.Reader,
	gateway notify.Gateway,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_notifications")
	log.Info("leave notifications consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave notifications consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		var evt events.LeaveNotificationRequested
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			log.Error("decode notification event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if evt.To == "" {
			log.Warn("notification skipped, recipient has no contact",
				zap.String("leave_id", evt.LeaveID),
				zap.String("template", evt.Template),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := gateway.Send(ctx, evt.To, evt.Template, evt.Vars); err != nil {
			log.Error("deliver notification failed",
				zap.String("leave_id", evt.LeaveID),
				zap.String("template", evt.Template),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Error(err))
			continue
		}

		log.Info("notification delivered",
			zap.String("leave_id", evt.LeaveID),
			zap.String("template", evt.Template),
		)
	}
}
