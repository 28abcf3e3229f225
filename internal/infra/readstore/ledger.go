package readstore

import (
	"context"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/domain/payment"
	"tour-booking/internal/infra"
	"tour-booking/internal/infra/repository/converter"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// LedgerReadQueries are the plain reads command handlers need for
// preconditions checked outside a locking transaction.
type LedgerReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetPaymentByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.Payments, error)
	HasActiveBookingForBuyer(ctx context.Context, db sqlc.DBTX, arg sqlc.HasActiveBookingForBuyerParams) (bool, error)
}

type LedgerReadStore struct {
	queries LedgerReadQueries
	db      sqlc.DBTX
}

func NewLedgerReadStore(queries LedgerReadQueries, db sqlc.DBTX) *LedgerReadStore {
	return &LedgerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LedgerReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return b, nil
}

func (r *LedgerReadStore) PaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByBookingID(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by booking", err)
	}
	p, err := converter.PaymentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt payment row", err)
	}
	return p, nil
}

func (r *LedgerReadStore) HasActiveBooking(ctx context.Context, buyerID, listingID uuid.UUID) (bool, error) {
	active, err := r.queries.HasActiveBookingForBuyer(ctx, r.db, sqlc.HasActiveBookingForBuyerParams{
		BuyerID:   buyerID,
		ListingID: listingID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active booking", err)
	}
	return active, nil
}
