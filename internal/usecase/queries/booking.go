package queries

import (
	"context"
	"time"

	"tour-booking/internal/domain/listing"
	"tour-booking/internal/domain/user"
	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBookingNotFound = errs.Define(errs.ErrNotFound, "booking_not_found", "booking not found")
	ErrListingNotFound = errs.Define(errs.ErrNotFound, "listing_not_found", "listing not found")
	ErrBookingAccess   = errs.Define(errs.ErrAuthorization, "not_allowed", "not allowed to view this booking")
	ErrListingNotOwned = errs.Define(errs.ErrAuthorization, "not_owner", "you do not own this listing")
	ErrBuyersOnly      = errs.Define(errs.ErrAuthorization, "forbidden", "only buyers can view their bookings")
	ErrSellersOnly     = errs.Define(errs.ErrAuthorization, "forbidden", "only sellers can view listing bookings")
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID
	ListingID     uuid.UUID
	ListingTitle  string
	BuyerID       uuid.UUID
	SellerID      uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	PricePerDay   decimal.Decimal
	TotalPrice    decimal.Decimal
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*BookingView, error)
	FindByListing(ctx context.Context, listingID, sellerID uuid.UUID) ([]*BookingView, error)
}

type ListingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, actor user.Actor) ([]*BookingView, error)
	ListByListing(ctx context.Context, actor user.Actor, listingID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store    BookingReadStore
	listings ListingReader
}

func NewBookingQueries(store BookingReadStore, listings ListingReader) BookingQueries {
	return &bookingQueriesImpl{store: store, listings: listings}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if _, isAdmin := actor.(user.Admin); isAdmin {
		return v, nil
	}
	if actor == nil || (actor.ID() != v.BuyerID && actor.ID() != v.SellerID) {
		return nil, ErrBookingAccess
	}
	return v, nil
}

// ListMine returns the buyer's non-cancelled bookings ordered by start date.
func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor user.Actor) ([]*BookingView, error) {
	buyer, ok := actor.(user.Buyer)
	if !ok {
		return nil, ErrBuyersOnly
	}
	return q.store.FindByBuyer(ctx, buyer.ID())
}

func (q *bookingQueriesImpl) ListByListing(ctx context.Context, actor user.Actor, listingID uuid.UUID) ([]*BookingView, error) {
	seller, ok := actor.(user.Seller)
	if !ok {
		return nil, ErrSellersOnly
	}
	l, err := q.listings.FindByID(ctx, listingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if !l.IsOwnedBy(seller.ID()) {
		return nil, ErrListingNotOwned
	}
	return q.store.FindByListing(ctx, listingID, seller.ID())
}
