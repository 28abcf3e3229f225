package shared

import (
	"context"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/domain/listing"
	"tour-booking/internal/domain/payment"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: SERIALIZABLE transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
	Outbox() OutboxRepository
	Reads() CommandReads
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	PaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error)
	HasActiveBooking(ctx context.Context, buyerID, listingID uuid.UUID) (bool, error)
}

type BookingRepository interface {
	// HasOverlap reports whether an active booking on the listing intersects the period.
	HasOverlap(ctx context.Context, listingID uuid.UUID, period booking.Period) (bool, error)
	HasActiveForBuyer(ctx context.Context, buyerID, listingID uuid.UUID) (bool, error)
	Create(ctx context.Context, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	FindByExternalIDForUpdate(ctx context.Context, externalID string) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, p *payment.Payment) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) error
	ClaimBatch(ctx context.Context, limit int32) ([]OutboxRecord, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}
