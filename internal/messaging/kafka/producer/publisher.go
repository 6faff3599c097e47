package producer

import (
	"context"
	"encoding/json"

	"github.com/PILLP-HO/pillp-lms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NewWriter builds a writer for the leave notifications topic.
func NewWriter(broker string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:     kafkago.TCP(broker),
		Topic:    events.LeaveNotificationsTopic,
		Balancer: &kafkago.LeastBytes{},
	}
}

// Dispatcher publishes notification requests to Kafka for the notifier
// binary to deliver. It satisfies notify.Dispatcher.
type Dispatcher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

func NewDispatcher(writer *kafkago.Writer, logger ...*zap.Logger) *Dispatcher {
	l := zap.L().Named("kafka.producer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.producer")
	}
	return &Dispatcher{writer: writer, logger: l}
}

func (d *Dispatcher) Dispatch(ctx context.Context, evt events.LeaveNotificationRequested) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Key:   []byte(evt.LeaveID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(events.LeaveNotificationRequestedEvent)},
		},
	}

	if err := d.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}
	d.logger.Info("notification event published",
		zap.String("leave_id", evt.LeaveID),
		zap.String("template", evt.Template),
	)
	return nil
}
