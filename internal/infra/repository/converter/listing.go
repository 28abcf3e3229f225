package converter

import (
	"tour-booking/internal/domain/listing"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/pgconv"
)

func ListingFromRow(row sqlc.Listings) *listing.Listing {
	return listing.ReconstructListing(
		row.ID,
		pgconv.UUIDPtrFromPgtype(row.SellerID),
		row.Title,
		row.PricePerDay,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
