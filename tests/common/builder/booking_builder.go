//go:build unit || e2e

package builder

import (
	"time"

	"tour-booking/internal/domain/booking"
	reqdto "tour-booking/internal/handler/dto/request"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID            uuid.UUID
	ListingID     uuid.UUID
	ListingTitle  string
	BuyerID       uuid.UUID
	SellerID      uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	PricePerDay   decimal.Decimal
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	CreatedAt     time.Time
}

// NewBookingBuilder describes a 3 day booking at 50/day starting 2024-06-01.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		ListingID:     uuid.New(),
		ListingTitle:  "Old Town Walking Tour",
		BuyerID:       uuid.New(),
		SellerID:      uuid.New(),
		StartDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		PricePerDay:   decimal.NewFromInt(50),
		Status:        booking.StatusPending,
		PaymentStatus: booking.PaymentUnpaid,
		CreatedAt:     time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status, p booking.PaymentStatus) *BookingBuilder {
	b.Status = s
	b.PaymentStatus = p
	return b
}

// ForListing copies the listing's id, seller and price.
func (b *BookingBuilder) ForListing(l *ListingBuilder) *BookingBuilder {
	b.ListingID = l.ID
	b.ListingTitle = l.Title
	b.SellerID = l.Seller()
	b.PricePerDay = l.PricePerDay
	return b
}

func (b *BookingBuilder) totalPrice() decimal.Decimal {
	return booking.TotalPrice(b.PricePerDay, booking.DayCount(b.StartDate, b.EndDate))
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.ListingID, b.BuyerID, b.SellerID,
		booking.ReconstructPeriod(b.StartDate, b.EndDate),
		b.PricePerDay, b.totalPrice(),
		b.Status, b.PaymentStatus,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:            b.ID,
		ListingID:     b.ListingID,
		BuyerID:       b.BuyerID,
		SellerID:      b.SellerID,
		StartDate:     pgtype.Date{Time: b.StartDate, Valid: true},
		EndDate:       pgtype.Date{Time: b.EndDate, Valid: true},
		PricePerDay:   b.PricePerDay,
		TotalPrice:    b.totalPrice(),
		Status:        b.Status.String(),
		PaymentStatus: b.PaymentStatus.String(),
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildViewRow() sqlc.GetBookingViewByIDRow {
	r := b.BuildInfra()
	return sqlc.GetBookingViewByIDRow{
		ID:            r.ID,
		ListingID:     r.ListingID,
		ListingTitle:  b.ListingTitle,
		BuyerID:       r.BuyerID,
		SellerID:      r.SellerID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		PricePerDay:   r.PricePerDay,
		TotalPrice:    r.TotalPrice,
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		ListingID:     b.ListingID,
		ListingTitle:  b.ListingTitle,
		BuyerID:       b.BuyerID,
		SellerID:      b.SellerID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		PricePerDay:   b.PricePerDay,
		TotalPrice:    b.totalPrice(),
		Status:        b.Status.String(),
		PaymentStatus: b.PaymentStatus.String(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ListingID: b.ListingID,
		StartDate: b.StartDate.Format(time.DateOnly),
		EndDate:   b.EndDate.Format(time.DateOnly),
	}
}
