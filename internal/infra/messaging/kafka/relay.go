package kafka

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tour-booking/internal/infra/metrics"
	"tour-booking/internal/pkg/config"
	"tour-booking/internal/usecase/shared"
)

// OutboxRelay drains committed outbox rows to the publisher. Delivery is at
// least once: a row is marked sent only after the publisher acknowledged it.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	batch     int32
	interval  time.Duration
	logger    *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher Publisher, cfg config.KafkaConfig, logger *slog.Logger) *OutboxRelay {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 100
	}
	interval := cfg.RelayInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		batch:     batch,
		interval:  interval,
		logger:    logger,
	}
}

func (r *OutboxRelay) Start(_ context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
	r.logger.Info("outbox relay started", "interval", r.interval, "batch", r.batch)
	return nil
}

func (r *OutboxRelay) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		r.logger.Info("outbox relay stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *OutboxRelay) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("outbox relay pass failed", "error", err)
			}
		}
	}
}

// RunOnce publishes one claimed batch and returns how many rows were sent.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		records, err := tx.Outbox().ClaimBatch(ctx, r.batch)
		if err != nil {
			return err
		}
		for _, rec := range records {
			if pubErr := r.publisher.Publish(ctx, rec); pubErr != nil {
				metrics.OutboxPublished.WithLabelValues("failed").Inc()
				r.logger.Warn("outbox publish failed",
					"event_id", rec.ID,
					"event_type", rec.EventType,
					"attempts", rec.Attempts+1,
					"error", pubErr)
				if err := tx.Outbox().MarkFailed(ctx, rec.ID, pubErr.Error()); err != nil {
					return err
				}
				continue
			}
			if err := tx.Outbox().MarkSent(ctx, rec.ID); err != nil {
				return err
			}
			metrics.OutboxPublished.WithLabelValues("sent").Inc()
			sent++
		}
		return nil
	})
	return sent, err
}
