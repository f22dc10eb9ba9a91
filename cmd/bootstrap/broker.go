package bootstrap

import (
	"context"
	"log/slog"

	"pro-stock-editor/internal/infra/eventlog"
	"pro-stock-editor/internal/pkg/config"
	"pro-stock-editor/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventLogger,
	),
)

// NewEventLogger publishes analytics events to RabbitMQ, or only logs them
// when no broker is configured.
func NewEventLogger(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventLogger, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("no event broker configured, analytics events are logged only")
		return eventlog.NewLogPublisher(logger), nil
	}

	ch, closeFn, err := eventlog.Dial(cfg.AMQP.URL, cfg.AMQP.EventsQueue)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			closeFn()
			return nil
		},
	})

	return eventlog.NewAMQPPublisher(ch, cfg.AMQP.EventsQueue, logger), nil
}
