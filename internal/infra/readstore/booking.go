package readstore

import (
	"context"
	"time"

	"tour-booking/internal/infra"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/pgconv"
	"tour-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListBookingsByBuyer(ctx context.Context, db sqlc.DBTX, buyerID uuid.UUID) ([]sqlc.ListBookingsByBuyerRow, error)
	ListBookingsByListing(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByListingParams) ([]sqlc.ListBookingsByListingRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// pgtype values are unwrapped to plain times; everything else copies by name.
var viewCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: pgtype.Date{},
			DstType: time.Time{},
			Fn: func(src any) (any, error) {
				return pgconv.TimeFromPgDate(src.(pgtype.Date)), nil
			},
		},
		{
			SrcType: pgtype.Timestamptz{},
			DstType: time.Time{},
			Fn: func(src any) (any, error) {
				return pgconv.TimeFromPgtype(src.(pgtype.Timestamptz)).UTC(), nil
			},
		},
	},
}

func toBookingView(row any) (*queries.BookingView, error) {
	var v queries.BookingView
	if err := copier.CopyWithOption(&v, row, viewCopyOption); err != nil {
		return nil, infra.WrapRepoErr("failed to map booking row", err)
	}
	return &v, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return toBookingView(row)
}

func (r *BookingReadStore) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByBuyer(ctx, r.db, buyerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list buyer bookings", err)
	}
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		if result[i], err = toBookingView(row); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *BookingReadStore) FindByListing(ctx context.Context, listingID, sellerID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByListing(ctx, r.db, sqlc.ListBookingsByListingParams{
		ListingID: listingID,
		SellerID:  sellerID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listing bookings", err)
	}
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		if result[i], err = toBookingView(row); err != nil {
			return nil, err
		}
	}
	return result, nil
}
