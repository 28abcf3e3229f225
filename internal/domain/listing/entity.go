package listing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoAssignedSeller = errors.New("listing has no assigned seller")
	ErrInvalidPrice     = errors.New("listing price must be positive")
)

// Listing is the catalog slice the booking core reads. It is never written here.
type Listing struct {
	id          uuid.UUID
	sellerID    *uuid.UUID
	title       string
	pricePerDay decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructListing(id uuid.UUID, sellerID *uuid.UUID, title string, pricePerDay decimal.Decimal, createdAt, updatedAt time.Time) *Listing {
	return &Listing{
		id:          id,
		sellerID:    sellerID,
		title:       strings.TrimSpace(title),
		pricePerDay: pricePerDay,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Seller returns the owning seller or ErrNoAssignedSeller.
func (l *Listing) Seller() (uuid.UUID, error) {
	if l.sellerID == nil || *l.sellerID == uuid.Nil {
		return uuid.Nil, ErrNoAssignedSeller
	}
	return *l.sellerID, nil
}

func (l *Listing) ValidatePrice() error {
	if !l.pricePerDay.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}

func (l *Listing) IsOwnedBy(sellerID uuid.UUID) bool {
	return l.sellerID != nil && *l.sellerID == sellerID
}

func (l *Listing) ID() uuid.UUID                { return l.id }
func (l *Listing) SellerID() *uuid.UUID         { return l.sellerID }
func (l *Listing) Title() string                { return l.title }
func (l *Listing) PricePerDay() decimal.Decimal { return l.pricePerDay }
func (l *Listing) CreatedAt() time.Time         { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time         { return l.updatedAt }
