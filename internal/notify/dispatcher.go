package notify

import (
	"context"

	"github.com/PILLP-HO/pillp-lms/internal/events"

	"go.uber.org/zap"
)

//go:generate mockgen -source=dispatcher.go -destination=mock/dispatcher_mock.go -package=mock

// Dispatcher hands a notification off for delivery. Dispatch happens after
// the triggering state change has been persisted; a dispatch failure never
// rolls the transition back.
type Dispatcher interface {
	Dispatch(ctx context.Context, evt events.LeaveNotificationRequested) error
}

// GatewayDispatcher delivers in-process, directly through the gateway.
type GatewayDispatcher struct {
	gateway Gateway
	logger  *zap.Logger
}

func NewGatewayDispatcher(gateway Gateway, logger ...*zap.Logger) *GatewayDispatcher {
	l := zap.L().Named("notify.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify.dispatcher")
	}
	return &GatewayDispatcher{gateway: gateway, logger: l}
}

func (d *GatewayDispatcher) Dispatch(ctx context.Context, evt events.LeaveNotificationRequested) error {
	if evt.To == "" {
		d.logger.Warn("notification skipped, recipient has no contact",
			zap.String("leave_id", evt.LeaveID),
			zap.String("template", evt.Template),
		)
		return nil
	}
	return d.gateway.Send(ctx, evt.To, evt.Template, evt.Vars)
}
