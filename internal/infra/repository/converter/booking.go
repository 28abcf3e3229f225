package converter

import (
	"tour-booking/internal/domain/booking"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:            b.ID(),
		ListingID:     b.ListingID(),
		BuyerID:       b.BuyerID(),
		SellerID:      b.SellerID(),
		StartDate:     pgconv.DateToPgtype(b.Period().Start()),
		EndDate:       pgconv.DateToPgtype(b.Period().End()),
		PricePerDay:   b.PricePerDay(),
		TotalPrice:    b.TotalPrice(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToStatusParams(b *booking.Booking) sqlc.UpdateBookingStatusParams {
	return sqlc.UpdateBookingStatusParams{
		ID:            b.ID(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	paymentStatus, err := booking.ParsePaymentStatus(row.PaymentStatus)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	period := booking.ReconstructPeriod(pgconv.TimeFromPgDate(row.StartDate), pgconv.TimeFromPgDate(row.EndDate))

	return booking.ReconstructBooking(
		row.ID, row.ListingID, row.BuyerID, row.SellerID,
		period,
		row.PricePerDay, row.TotalPrice,
		status, paymentStatus,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
