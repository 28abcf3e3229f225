package components

import (
	"context"
	"log/slog"

	"tour-booking/internal/infra/gateway/stripe"
	"tour-booking/internal/infra/messaging/kafka"
	"tour-booking/internal/pkg/config"
	"tour-booking/internal/usecase/commands"
	"tour-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var PaymentGatewayModule = fx.Module("payment-gateway",
	fx.Provide(
		fx.Annotate(
			stripe.NewGateway,
			fx.As(new(commands.PaymentGateway)),
			fx.As(new(commands.EventVerifier)),
		),
	),
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		NewOutboxRelay,
	),
	fx.Invoke(func(*kafka.OutboxRelay) {}),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kafka.Publisher, error) {
	if !cfg.Kafka.Enabled() {
		logger.Warn("KAFKA_BROKERS not set, domain events are logged instead of published")
		return kafka.NewLogPublisher(logger), nil
	}
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	pub := kafka.NewSaramaPublisher(producer, cfg.Kafka.Topic)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func NewOutboxRelay(lc fx.Lifecycle, uow shared.UnitOfWork, pub kafka.Publisher, cfg config.Config, logger *slog.Logger) *kafka.OutboxRelay {
	relay := kafka.NewOutboxRelay(uow, pub, cfg.Kafka, logger)
	lc.Append(fx.Hook{
		OnStart: relay.Start,
		OnStop:  relay.Stop,
	})
	return relay
}
