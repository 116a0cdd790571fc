package bootstrap

import (
	"context"
	"log/slog"

	"paseos-api/internal/infra/broker"
	"paseos-api/internal/pkg/clock"
	"paseos-api/internal/pkg/config"
	"paseos-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) shared.EventPublisher {
	if !cfg.Broker.Enabled() {
		slog.Info("amqp disabled, quiz events are not published")
		return broker.NopPublisher{}
	}

	publisher := broker.NewAMQPPublisher(cfg.Broker, clk)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}
