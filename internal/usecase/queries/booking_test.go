//go:build unit

package queries_test

import (
	"context"
	"testing"

	"tour-booking/internal/domain/user"
	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/usecase/queries"
	"tour-booking/tests/common/builder"
	queriesmock "tour-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	view := builder.NewBookingBuilder().BuildView()

	testCases := []struct {
		name    string
		actor   user.Actor
		found   bool
		wantErr error
	}{
		{name: "buyer sees own booking", actor: builder.Buyer(view.BuyerID), found: true},
		{name: "seller sees booking on own listing", actor: builder.Seller(view.SellerID), found: true},
		{name: "admin sees any booking", actor: builder.Admin(uuid.New()), found: true},
		{name: "unrelated buyer is refused", actor: builder.Buyer(uuid.New()), found: true, wantErr: queries.ErrBookingAccess},
		{name: "unrelated seller is refused", actor: builder.Seller(uuid.New()), found: true, wantErr: queries.ErrBookingAccess},
		{name: "missing booking", actor: builder.Admin(uuid.New()), found: false, wantErr: queries.ErrBookingNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			q := queries.NewBookingQueries(store, queriesmock.NewMockListingReader(ctrl))

			if tc.found {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
			} else {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))
			}

			got, err := q.GetByID(context.Background(), tc.actor, view.ID)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(view, got); diff != "" {
				t.Errorf("view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBookingQueries_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	q := queries.NewBookingQueries(store, queriesmock.NewMockListingReader(ctrl))
	buyerID := uuid.New()
	views := []*queries.BookingView{
		builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.BuyerID = buyerID }).BuildView(),
	}
	store.EXPECT().FindByBuyer(gomock.Any(), buyerID).Return(views, nil)

	got, err := q.ListMine(context.Background(), builder.Buyer(buyerID))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = q.ListMine(context.Background(), builder.Seller(buyerID))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrAuthorization))
}

func TestBookingQueries_ListByListing(t *testing.T) {
	lb := builder.NewListingBuilder()

	testCases := []struct {
		name    string
		actor   user.Actor
		setup   func(store *queriesmock.MockBookingReadStore, listings *queriesmock.MockListingReader)
		wantErr error
	}{
		{
			name:  "owner lists bookings",
			actor: builder.Seller(lb.Seller()),
			setup: func(store *queriesmock.MockBookingReadStore, listings *queriesmock.MockListingReader) {
				listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(lb.BuildDomain(), nil)
				store.EXPECT().FindByListing(gomock.Any(), lb.ID, lb.Seller()).
					Return([]*queries.BookingView{builder.NewBookingBuilder().ForListing(lb).BuildView()}, nil)
			},
		},
		{
			name:  "another seller",
			actor: builder.Seller(uuid.New()),
			setup: func(_ *queriesmock.MockBookingReadStore, listings *queriesmock.MockListingReader) {
				listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(lb.BuildDomain(), nil)
			},
			wantErr: queries.ErrListingNotOwned,
		},
		{
			name:  "unknown listing",
			actor: builder.Seller(lb.Seller()),
			setup: func(_ *queriesmock.MockBookingReadStore, listings *queriesmock.MockListingReader) {
				listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound))
			},
			wantErr: queries.ErrListingNotFound,
		},
		{
			name:    "buyer is refused",
			actor:   builder.Buyer(uuid.New()),
			setup:   func(*queriesmock.MockBookingReadStore, *queriesmock.MockListingReader) {},
			wantErr: queries.ErrSellersOnly,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			listings := queriesmock.NewMockListingReader(ctrl)
			tc.setup(store, listings)

			got, err := queries.NewBookingQueries(store, listings).ListByListing(context.Background(), tc.actor, lb.ID)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr))
				return
			}
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, lb.ID, got[0].ListingID)
		})
	}
}
