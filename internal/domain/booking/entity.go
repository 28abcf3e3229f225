package booking

import (
	"time"

	"tour-booking/internal/domain/listing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	id            uuid.UUID
	listingID     uuid.UUID
	buyerID       uuid.UUID
	sellerID      uuid.UUID
	period        Period
	pricePerDay   decimal.Decimal
	totalPrice    decimal.Decimal
	status        Status
	paymentStatus PaymentStatus
	createdAt     time.Time
	updatedAt     time.Time
}

// CheckEligibility runs the listing-level preconditions that do not depend on
// the requested dates.
func CheckEligibility(l *listing.Listing, buyerID uuid.UUID) (uuid.UUID, error) {
	sellerID, err := l.Seller()
	if err != nil {
		return uuid.Nil, err
	}
	if sellerID == buyerID {
		return uuid.Nil, ErrSelfBooking
	}
	return sellerID, nil
}

// NewBooking snapshots the listing's seller and price onto a new pending,
// unpaid booking.
func NewBooking(now time.Time, l *listing.Listing, buyerID uuid.UUID, period Period, maxDays int) (*Booking, error) {
	sellerID, err := CheckEligibility(l, buyerID)
	if err != nil {
		return nil, err
	}
	if err := l.ValidatePrice(); err != nil {
		return nil, err
	}
	days := period.Days()
	if days > maxDays {
		return nil, ErrPeriodTooLong
	}

	return &Booking{
		id:            uuid.New(),
		listingID:     l.ID(),
		buyerID:       buyerID,
		sellerID:      sellerID,
		period:        period,
		pricePerDay:   l.PricePerDay(),
		totalPrice:    TotalPrice(l.PricePerDay(), days),
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id, listingID, buyerID, sellerID uuid.UUID,
	period Period,
	pricePerDay, totalPrice decimal.Decimal,
	status Status,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		listingID:     listingID,
		buyerID:       buyerID,
		sellerID:      sellerID,
		period:        period,
		pricePerDay:   pricePerDay,
		totalPrice:    totalPrice,
		status:        status,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Apply commits an approved transition onto the booking.
func (b *Booking) Apply(t Transition, now time.Time) {
	b.status = t.To
	b.paymentStatus = t.PaymentTo
	b.updatedAt = now
}

// MarkPaid records a confirmed charge. It reports false when the booking is
// already paid, which makes duplicate deliveries a no-op.
func (b *Booking) MarkPaid(now time.Time) bool {
	if b.paymentStatus == PaymentPaid {
		return false
	}
	b.paymentStatus = PaymentPaid
	b.updatedAt = now
	return true
}

func (b *Booking) IsOwnedByBuyer(id uuid.UUID) bool { return b.buyerID == id }

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ListingID() uuid.UUID         { return b.listingID }
func (b *Booking) BuyerID() uuid.UUID           { return b.buyerID }
func (b *Booking) SellerID() uuid.UUID          { return b.sellerID }
func (b *Booking) Period() Period               { return b.period }
func (b *Booking) PricePerDay() decimal.Decimal { return b.pricePerDay }
func (b *Booking) TotalPrice() decimal.Decimal  { return b.totalPrice }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
