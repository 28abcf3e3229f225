package commands

import (
	"context"

	"tour-booking/internal/domain/listing"

	"github.com/google/uuid"
)

// Metadata keys attached to every processor intent for later correlation.
const (
	MetadataBookingID = "bookingId"
	MetadataBuyerID   = "buyerId"
)

type IntentRequest struct {
	BookingID      uuid.UUID
	BuyerID        uuid.UUID
	AmountMinor    int64
	Currency       string
	IdempotencyKey string
}

type Intent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway is the processor's intent API.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
	CancelIntent(ctx context.Context, intentID string) error
}

type PaymentEventType string

const (
	PaymentEventSucceeded PaymentEventType = "payment_intent.succeeded"
	PaymentEventFailed    PaymentEventType = "payment_intent.payment_failed"
)

// PaymentEvent is a verified processor notification. IntentID, BookingID
// and AmountMinor are only populated for payment intent events.
type PaymentEvent struct {
	ID          string
	Type        PaymentEventType
	IntentID    string
	BookingID   string
	AmountMinor int64
	Currency    string
}

type EventVerifier interface {
	Verify(payload []byte, signatureHeader string) (*PaymentEvent, error)
}

// EventMarker is a fast-path record of already-applied events.
type EventMarker interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Mark(ctx context.Context, eventID string) error
}

// ListingLookup may serve from a cache; the authoritative re-read happens
// inside the write transaction.
type ListingLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
}
