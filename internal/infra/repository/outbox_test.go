//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tour-booking/internal/infra"
	"tour-booking/internal/infra/repository"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/usecase/shared"
	repositorymock "tour-booking/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_Enqueue(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, mockDB)

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	msg := shared.OutboxMessage{EventType: "booking.created", Key: "b-1", Payload: []byte(`{"a":1}`), OccurredAt: at}

	mockQueries.EXPECT().InsertOutboxEvent(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error {
			assert.NotEqual(t, uuid.Nil, arg.ID)
			assert.Equal(t, "booking.created", arg.EventType)
			assert.Equal(t, "b-1", arg.EventKey)
			assert.JSONEq(t, `{"a":1}`, string(arg.Payload))
			assert.Equal(t, at, arg.CreatedAt.Time)
			return nil
		})
	require.NoError(t, repo.Enqueue(ctx, msg))

	mockQueries.EXPECT().InsertOutboxEvent(ctx, mockDB, gomock.Any()).Return(errors.New("database connection error"))
	err := repo.Enqueue(ctx, msg)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestOutboxRepository_ClaimBatch(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, mockDB)

	id := uuid.New()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mockQueries.EXPECT().ClaimOutboxBatch(ctx, mockDB, int32(50)).Return([]sqlc.OutboxEvents{{
		ID:        id,
		EventType: "payment.succeeded",
		EventKey:  "b-2",
		Payload:   []byte(`{}`),
		Attempts:  2,
		CreatedAt: pgtype.Timestamptz{Time: at, Valid: true},
	}}, nil)

	got, err := repo.ClaimBatch(ctx, 50)
	require.NoError(t, err)

	want := []shared.OutboxRecord{{
		ID:         id,
		EventType:  "payment.succeeded",
		Key:        "b-2",
		Payload:    []byte(`{}`),
		Attempts:   2,
		OccurredAt: at,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, mockDB)
	id := uuid.New()

	mockQueries.EXPECT().MarkOutboxSent(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkOutboxSentParams) error {
			assert.Equal(t, id, arg.ID)
			assert.True(t, arg.SentAt.Valid)
			return nil
		})
	require.NoError(t, repo.MarkSent(ctx, id))

	mockQueries.EXPECT().MarkOutboxFailed(ctx, mockDB, sqlc.MarkOutboxFailedParams{
		ID:        id,
		LastError: pgtype.Text{String: "broker unavailable", Valid: true},
	}).Return(errors.New("database connection error"))
	err := repo.MarkFailed(ctx, id, "broker unavailable")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
