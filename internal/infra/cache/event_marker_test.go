//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tour-booking/internal/infra/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMarker(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	marker := cache.NewEventMarker(rdb, 72*time.Hour)

	mock.ExpectExists("webhook:event:evt_1").SetVal(0)
	seen, err := marker.Seen(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, seen)

	mock.ExpectSetNX("webhook:event:evt_1", 1, 72*time.Hour).SetVal(true)
	require.NoError(t, marker.Mark(ctx, "evt_1"))

	mock.ExpectExists("webhook:event:evt_1").SetVal(1)
	seen, err = marker.Seen(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, seen)

	mock.ExpectExists("webhook:event:evt_2").SetErr(errors.New("connection refused"))
	_, err = marker.Seen(ctx, "evt_2")
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
