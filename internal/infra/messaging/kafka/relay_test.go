//go:build unit

package kafka_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"tour-booking/internal/infra/messaging/kafka"
	"tour-booking/internal/pkg/config"
	"tour-booking/internal/usecase/shared"
	kafkamock "tour-booking/tests/mock/kafka"
	sharedmock "tour-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type relayFixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	outbox    *sharedmock.MockOutboxRepository
	publisher *kafkamock.MockPublisher
	relay     *kafka.OutboxRelay
}

func newRelayFixture(t *testing.T) *relayFixture {
	ctrl := gomock.NewController(t)
	f := &relayFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		outbox:    sharedmock.NewMockOutboxRepository(ctrl),
		publisher: kafkamock.NewMockPublisher(ctrl),
	}
	f.tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.relay = kafka.NewOutboxRelay(f.uow, f.publisher, config.KafkaConfig{BatchSize: 10, RelayInterval: 10 * time.Millisecond},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func record(eventType string) shared.OutboxRecord {
	return shared.OutboxRecord{ID: uuid.New(), EventType: eventType, Key: uuid.NewString(), Payload: []byte(`{}`)}
}

func TestOutboxRelay_RunOnce(t *testing.T) {
	f := newRelayFixture(t)
	ok, failing := record("booking.created"), record("payment.succeeded")

	f.outbox.EXPECT().ClaimBatch(gomock.Any(), int32(10)).Return([]shared.OutboxRecord{ok, failing}, nil)
	gomock.InOrder(
		f.publisher.EXPECT().Publish(gomock.Any(), ok).Return(nil),
		f.publisher.EXPECT().Publish(gomock.Any(), failing).Return(errors.New("broker unavailable")),
	)
	f.outbox.EXPECT().MarkSent(gomock.Any(), ok.ID).Return(nil)
	f.outbox.EXPECT().MarkFailed(gomock.Any(), failing.ID, "broker unavailable").Return(nil)

	sent, err := f.relay.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestOutboxRelay_RunOnceClaimError(t *testing.T) {
	f := newRelayFixture(t)
	dbErr := errors.New("serialization failure")
	f.outbox.EXPECT().ClaimBatch(gomock.Any(), int32(10)).Return(nil, dbErr)

	sent, err := f.relay.RunOnce(context.Background())

	require.ErrorIs(t, err, dbErr)
	assert.Zero(t, sent)
}

func TestOutboxRelay_StartStop(t *testing.T) {
	f := newRelayFixture(t)
	rec := record("booking.status_changed")
	published := make(chan struct{})

	f.outbox.EXPECT().ClaimBatch(gomock.Any(), int32(10)).Return([]shared.OutboxRecord{rec}, nil).Times(1)
	f.outbox.EXPECT().ClaimBatch(gomock.Any(), int32(10)).Return(nil, nil).AnyTimes()
	f.publisher.EXPECT().Publish(gomock.Any(), rec).DoAndReturn(func(context.Context, shared.OutboxRecord) error {
		close(published)
		return nil
	})
	f.outbox.EXPECT().MarkSent(gomock.Any(), rec.ID).Return(nil)

	require.NoError(t, f.relay.Start(context.Background()))
	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatal("relay never published the pending record")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.relay.Stop(ctx))
}
