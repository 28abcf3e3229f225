package repository

import (
	"context"
	"time"

	"tour-booking/internal/infra"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/pgconv"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error
	ClaimOutboxBatch(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.OutboxEvents, error)
	MarkOutboxSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxSentParams) error
	MarkOutboxFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxFailedParams) error
}

type OutboxRepository struct {
	queries OutboxQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, msg shared.OutboxMessage) error {
	err := r.queries.InsertOutboxEvent(ctx, r.db, sqlc.InsertOutboxEventParams{
		ID:        uuid.New(),
		EventType: msg.EventType,
		EventKey:  msg.Key,
		Payload:   msg.Payload,
		CreatedAt: pgconv.TimeToPgtype(msg.OccurredAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}

// ClaimBatch locks up to limit unsent rows. Concurrent relays skip rows
// another relay already holds.
func (r *OutboxRepository) ClaimBatch(ctx context.Context, limit int32) ([]shared.OutboxRecord, error) {
	rows, err := r.queries.ClaimOutboxBatch(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox batch", err)
	}
	records := make([]shared.OutboxRecord, len(rows))
	for i, row := range rows {
		records[i] = shared.OutboxRecord{
			ID:         row.ID,
			EventType:  row.EventType,
			Key:        row.EventKey,
			Payload:    row.Payload,
			Attempts:   row.Attempts,
			OccurredAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return records, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	err := r.queries.MarkOutboxSent(ctx, r.db, sqlc.MarkOutboxSentParams{
		ID:     id,
		SentAt: pgconv.TimeToPgtype(time.Now().UTC()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event sent", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	err := r.queries.MarkOutboxFailed(ctx, r.db, sqlc.MarkOutboxFailedParams{
		ID:        id,
		LastError: pgconv.StringToPgtype(reason),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record outbox failure", err)
	}
	return nil
}
