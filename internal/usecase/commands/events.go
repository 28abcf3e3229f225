package commands

import (
	"encoding/json"
	"time"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/domain/payment"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventPaymentSucceeded     = "payment.succeeded"
	EventPaymentFailed        = "payment.failed"
)

type bookingEvent struct {
	BookingID     uuid.UUID `json:"bookingId"`
	ListingID     uuid.UUID `json:"listingId"`
	BuyerID       uuid.UUID `json:"buyerId"`
	SellerID      uuid.UUID `json:"sellerId"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	TotalPrice    string    `json:"totalPrice"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	PreviousState string    `json:"previousStatus,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func newBookingMessage(eventType string, b *booking.Booking, now time.Time, mutate func(*bookingEvent)) (shared.OutboxMessage, error) {
	ev := bookingEvent{
		BookingID:     b.ID(),
		ListingID:     b.ListingID(),
		BuyerID:       b.BuyerID(),
		SellerID:      b.SellerID(),
		StartDate:     b.Period().Start().Format(time.DateOnly),
		EndDate:       b.Period().End().Format(time.DateOnly),
		TotalPrice:    b.TotalPrice().StringFixed(2),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		OccurredAt:    now,
	}
	if mutate != nil {
		mutate(&ev)
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return shared.OutboxMessage{}, err
	}
	return shared.OutboxMessage{
		EventType:  eventType,
		Key:        b.ID().String(),
		Payload:    payload,
		OccurredAt: now,
	}, nil
}

type paymentEvent struct {
	BookingID  uuid.UUID `json:"bookingId"`
	PaymentID  uuid.UUID `json:"paymentId"`
	ExternalID string    `json:"externalId"`
	Status     string    `json:"status"`
	Amount     string    `json:"amount"`
	Currency   string    `json:"currency"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newPaymentMessage(eventType string, p *payment.Payment, now time.Time) (shared.OutboxMessage, error) {
	payload, err := json.Marshal(paymentEvent{
		BookingID:  p.BookingID(),
		PaymentID:  p.ID(),
		ExternalID: p.ExternalID(),
		Status:     p.Status().String(),
		Amount:     p.Amount().StringFixed(2),
		Currency:   p.Currency(),
		OccurredAt: now,
	})
	if err != nil {
		return shared.OutboxMessage{}, err
	}
	return shared.OutboxMessage{
		EventType:  eventType,
		Key:        p.BookingID().String(),
		Payload:    payload,
		OccurredAt: now,
	}, nil
}
