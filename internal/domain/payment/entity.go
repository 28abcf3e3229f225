package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingExternalID = errors.New("external intent id is required")
	ErrInvalidAmount     = errors.New("payment amount must be positive")
	ErrInvalidStatus     = errors.New("invalid payment status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

func (s Status) String() string { return string(s) }

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusSucceeded, StatusFailed:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Payment correlates one booking with one processor intent.
type Payment struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	externalID string
	amount     decimal.Decimal
	currency   string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewPayment(now time.Time, bookingID uuid.UUID, externalID string, amount decimal.Decimal, currency string) (*Payment, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, ErrMissingExternalID
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		id:         uuid.New(),
		bookingID:  bookingID,
		externalID: externalID,
		amount:     amount,
		currency:   strings.ToLower(currency),
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructPayment(id, bookingID uuid.UUID, externalID string, amount decimal.Decimal, currency string, status Status, createdAt, updatedAt time.Time) *Payment {
	return &Payment{
		id:         id,
		bookingID:  bookingID,
		externalID: externalID,
		amount:     amount,
		currency:   currency,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// MarkSucceeded reports false when the payment already succeeded.
func (p *Payment) MarkSucceeded(now time.Time) bool {
	if p.status == StatusSucceeded {
		return false
	}
	p.status = StatusSucceeded
	p.updatedAt = now
	return true
}

// MarkFailed only moves a pending payment. A failure reported after success
// is stale and ignored.
func (p *Payment) MarkFailed(now time.Time) bool {
	if p.status != StatusPending {
		return false
	}
	p.status = StatusFailed
	p.updatedAt = now
	return true
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) BookingID() uuid.UUID    { return p.bookingID }
func (p *Payment) ExternalID() string      { return p.externalID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Currency() string        { return p.currency }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time    { return p.updatedAt }
