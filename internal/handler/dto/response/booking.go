package response

import (
	"time"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID            uuid.UUID       `json:"id"`
	ListingID     uuid.UUID       `json:"listingId"`
	ListingTitle  string          `json:"listingTitle,omitempty"`
	BuyerID       uuid.UUID       `json:"buyerId"`
	SellerID      uuid.UUID       `json:"sellerId"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	PricePerDay   decimal.Decimal `json:"pricePerDay"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID(),
		ListingID:     b.ListingID(),
		BuyerID:       b.BuyerID(),
		SellerID:      b.SellerID(),
		StartDate:     b.Period().Start().Format(time.DateOnly),
		EndDate:       b.Period().End().Format(time.DateOnly),
		PricePerDay:   b.PricePerDay(),
		TotalPrice:    b.TotalPrice(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            v.ID,
		ListingID:     v.ListingID,
		ListingTitle:  v.ListingTitle,
		BuyerID:       v.BuyerID,
		SellerID:      v.SellerID,
		StartDate:     v.StartDate.Format(time.DateOnly),
		EndDate:       v.EndDate.Format(time.DateOnly),
		PricePerDay:   v.PricePerDay,
		TotalPrice:    v.TotalPrice,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromBookingView(v))
	}
	return out
}
