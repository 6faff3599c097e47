package notify

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=gateway.go -destination=mock/gateway_mock.go -package=mock

// Gateway delivers one templated message to a pre-normalized contact.
type Gateway interface {
	Send(ctx context.Context, to, templateKey string, vars map[string]string) error
}

// LogGateway is used when no messaging credentials are configured. It logs
// what would have been sent and reports success.
type LogGateway struct {
	logger *zap.Logger
}

func NewLogGateway(logger ...*zap.Logger) *LogGateway {
	l := zap.L().Named("notify.log_gateway")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify.log_gateway")
	}
	return &LogGateway{logger: l}
}

func (g *LogGateway) Send(ctx context.Context, to, templateKey string, vars map[string]string) error {
	g.logger.Info("whatsapp message skipped, gateway not configured",
		zap.String("to", to),
		zap.String("template", templateKey),
		zap.Any("vars", vars),
	)
	return nil
}
