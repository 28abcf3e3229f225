//go:build unit || e2e

package builder

import (
	"time"

	"tour-booking/internal/domain/payment"
	sqlc "tour-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type PaymentBuilder struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	ExternalID string
	Amount     decimal.Decimal
	Currency   string
	Status     payment.Status
	CreatedAt  time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		ID:         uuid.New(),
		BookingID:  uuid.New(),
		ExternalID: "pi_" + uuid.NewString()[:8],
		Amount:     decimal.NewFromInt(150),
		Currency:   "usd",
		Status:     payment.StatusPending,
		CreatedAt:  time.Date(2024, 5, 1, 9, 5, 0, 0, time.UTC),
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

func (p *PaymentBuilder) ForBooking(b *BookingBuilder) *PaymentBuilder {
	p.BookingID = b.ID
	p.Amount = b.totalPrice()
	return p
}

func (p *PaymentBuilder) WithStatus(s payment.Status) *PaymentBuilder {
	p.Status = s
	return p
}

func (p *PaymentBuilder) BuildDomain() *payment.Payment {
	return payment.ReconstructPayment(p.ID, p.BookingID, p.ExternalID, p.Amount, p.Currency, p.Status, p.CreatedAt, p.CreatedAt)
}

func (p *PaymentBuilder) BuildInfra() sqlc.Payments {
	return sqlc.Payments{
		ID:         p.ID,
		BookingID:  p.BookingID,
		ExternalID: p.ExternalID,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Status:     p.Status.String(),
		CreatedAt:  pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
	}
}
