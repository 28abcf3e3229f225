package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const eventKeyPrefix = "webhook:event:"

// EventMarker remembers processor event ids that were already applied, so
// redeliveries skip the database round trip. The ledger's own guards remain
// the source of truth.
type EventMarker struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewEventMarker(rdb redis.Cmdable, ttl time.Duration) *EventMarker {
	return &EventMarker{rdb: rdb, ttl: ttl}
}

func (m *EventMarker) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := m.rdb.Exists(ctx, eventKeyPrefix+eventID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (m *EventMarker) Mark(ctx context.Context, eventID string) error {
	return m.rdb.SetNX(ctx, eventKeyPrefix+eventID, 1, m.ttl).Err()
}
