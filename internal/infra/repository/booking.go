package repository

import (
	"context"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/infra"
	"tour-booking/internal/infra/repository/converter"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	HasOverlappingBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.HasOverlappingBookingParams) (bool, error)
	HasActiveBookingForBuyer(ctx context.Context, db sqlc.DBTX, arg sqlc.HasActiveBookingForBuyerParams) (bool, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) HasOverlap(ctx context.Context, listingID uuid.UUID, period booking.Period) (bool, error) {
	overlapping, err := r.queries.HasOverlappingBooking(ctx, r.db, sqlc.HasOverlappingBookingParams{
		ListingID: listingID,
		StartDate: pgconv.DateToPgtype(period.Start()),
		EndDate:   pgconv.DateToPgtype(period.End()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check calendar overlap", err)
	}
	return overlapping, nil
}

func (r *BookingRepository) HasActiveForBuyer(ctx context.Context, buyerID, listingID uuid.UUID) (bool, error) {
	active, err := r.queries.HasActiveBookingForBuyer(ctx, r.db, sqlc.HasActiveBookingForBuyerParams{
		BuyerID:   buyerID,
		ListingID: listingID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active booking", err)
	}
	return active, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingStatus(ctx, r.db, converter.BookingToStatusParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
