package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"tour-booking/internal/domain/listing"
	"tour-booking/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const listingKeyPrefix = "listing:"

type ListingSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
}

// ListingCache is a cache-aside front for catalog lookups. Redis errors
// degrade to a direct read.
type ListingCache struct {
	rdb    redis.Cmdable
	source ListingSource
	ttl    time.Duration
	logger *slog.Logger
}

func NewListingCache(rdb redis.Cmdable, source ListingSource, ttl time.Duration, logger *slog.Logger) *ListingCache {
	return &ListingCache{rdb: rdb, source: source, ttl: ttl, logger: logger}
}

type listingEntry struct {
	ID          uuid.UUID       `json:"id"`
	SellerID    *uuid.UUID      `json:"seller_id,omitempty"`
	Title       string          `json:"title"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func listingKey(id uuid.UUID) string {
	return listingKeyPrefix + id.String()
}

func (c *ListingCache) FindByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	raw, err := c.rdb.Get(ctx, listingKey(id)).Bytes()
	switch {
	case err == nil:
		var e listingEntry
		if jerr := json.Unmarshal(raw, &e); jerr == nil {
			metrics.CacheLookups.WithLabelValues("listing", "hit").Inc()
			return listing.ReconstructListing(e.ID, e.SellerID, e.Title, e.PricePerDay, e.CreatedAt, e.UpdatedAt), nil
		}
		c.logger.Warn("discarding undecodable listing cache entry", "listing_id", id)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("listing cache read failed", "listing_id", id, "error", err)
	}
	metrics.CacheLookups.WithLabelValues("listing", "miss").Inc()

	l, err := c.source.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(listingEntry{
		ID:          l.ID(),
		SellerID:    l.SellerID(),
		Title:       l.Title(),
		PricePerDay: l.PricePerDay(),
		CreatedAt:   l.CreatedAt(),
		UpdatedAt:   l.UpdatedAt(),
	})
	if err == nil {
		if serr := c.rdb.Set(ctx, listingKey(id), string(payload), c.ttl).Err(); serr != nil {
			c.logger.Warn("listing cache write failed", "listing_id", id, "error", serr)
		}
	}
	return l, nil
}
