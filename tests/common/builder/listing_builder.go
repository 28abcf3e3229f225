//go:build unit || e2e

package builder

import (
	"time"

	"tour-booking/internal/domain/listing"
	sqlc "tour-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ListingBuilder struct {
	ID          uuid.UUID
	SellerID    *uuid.UUID
	Title       string
	PricePerDay decimal.Decimal
	CreatedAt   time.Time
}

func NewListingBuilder() *ListingBuilder {
	seller := uuid.New()
	return &ListingBuilder{
		ID:          uuid.New(),
		SellerID:    &seller,
		Title:       "Old Town Walking Tour",
		PricePerDay: decimal.NewFromInt(50),
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

func (l *ListingBuilder) WithSeller(id uuid.UUID) *ListingBuilder {
	l.SellerID = &id
	return l
}

func (l *ListingBuilder) WithoutSeller() *ListingBuilder {
	l.SellerID = nil
	return l
}

func (l *ListingBuilder) WithPrice(p string) *ListingBuilder {
	l.PricePerDay = decimal.RequireFromString(p)
	return l
}

func (l *ListingBuilder) Seller() uuid.UUID {
	if l.SellerID == nil {
		return uuid.Nil
	}
	return *l.SellerID
}

func (l *ListingBuilder) BuildDomain() *listing.Listing {
	return listing.ReconstructListing(l.ID, l.SellerID, l.Title, l.PricePerDay, l.CreatedAt, l.CreatedAt)
}

func (l *ListingBuilder) BuildInfra() sqlc.Listings {
	seller := pgtype.UUID{}
	if l.SellerID != nil {
		seller = pgtype.UUID{Bytes: *l.SellerID, Valid: true}
	}
	return sqlc.Listings{
		ID:          l.ID,
		SellerID:    seller,
		Title:       l.Title,
		PricePerDay: l.PricePerDay,
		CreatedAt:   pgtype.Timestamptz{Time: l.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: l.CreatedAt, Valid: true},
	}
}
