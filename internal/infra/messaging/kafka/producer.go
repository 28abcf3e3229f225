package kafka

import (
	"context"
	"log/slog"

	"tour-booking/internal/pkg/config"
	"tour-booking/internal/usecase/shared"

	"github.com/IBM/sarama"
)

const headerEventType = "event_type"

// Publisher delivers one outbox record to the event stream.
type Publisher interface {
	Publish(ctx context.Context, rec shared.OutboxRecord) error
}

func NewProducer(cfg config.KafkaConfig) (sarama.SyncProducer, error) {
	sc := sarama.NewConfig()
	sc.ClientID = "tour-booking"
	sc.Version = sarama.V2_8_0_0
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = 5
	sc.Producer.Idempotent = true
	sc.Net.MaxOpenRequests = 1
	return sarama.NewSyncProducer(cfg.Brokers, sc)
}

type SaramaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSaramaPublisher(producer sarama.SyncProducer, topic string) *SaramaPublisher {
	return &SaramaPublisher{producer: producer, topic: topic}
}

// Publish keys every message by booking id so a booking's events stay on one partition.
func (p *SaramaPublisher) Publish(_ context.Context, rec shared.OutboxRecord) error {
	_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(rec.Key),
		Value: sarama.ByteEncoder(rec.Payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEventType), Value: []byte(rec.EventType)},
		},
		Timestamp: rec.OccurredAt,
	})
	return err
}

func (p *SaramaPublisher) Close() error {
	return p.producer.Close()
}

// LogPublisher stands in when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, rec shared.OutboxRecord) error {
	p.logger.Info("domain event",
		"event_type", rec.EventType,
		"key", rec.Key,
		"payload", string(rec.Payload))
	return nil
}
