//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/domain/user"
	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/config"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/usecase/commands"
	"tour-booking/internal/usecase/shared"
	"tour-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func (f *fixture) bookingUseCase() commands.BookingCommands {
	return commands.NewBookingCommands(f.uow, f.listings, f.clock, config.BookingConfig{MaxDays: 30}, f.logger)
}

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingCommands_Create(t *testing.T) {
	buyerID := uuid.New()
	lb := builder.NewListingBuilder()
	l := lb.BuildDomain()

	f := newFixture(t)
	f.listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(l, nil)
	f.reads.EXPECT().HasActiveBooking(gomock.Any(), buyerID, lb.ID).Return(false, nil)
	f.runWithin()
	f.txReads.EXPECT().ListingByID(gomock.Any(), lb.ID).Return(l, nil)
	f.bookings.EXPECT().HasActiveForBuyer(gomock.Any(), buyerID, lb.ID).Return(false, nil)
	f.bookings.EXPECT().HasOverlap(gomock.Any(), lb.ID, gomock.Any()).Return(false, nil)
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg shared.OutboxMessage) error {
		assert.Equal(t, commands.EventBookingCreated, msg.EventType)
		var body struct {
			Status     string `json:"status"`
			TotalPrice string `json:"totalPrice"`
		}
		require.NoError(t, json.Unmarshal(msg.Payload, &body))
		assert.Equal(t, "pending", body.Status)
		assert.Equal(t, "150.00", body.TotalPrice)
		return nil
	})

	b, err := f.bookingUseCase().Create(context.Background(), builder.Buyer(buyerID), commands.CreateBookingInput{
		ListingID: lb.ID,
		StartDate: day(1),
		EndDate:   day(4),
	})

	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, booking.PaymentUnpaid, b.PaymentStatus())
	assert.Equal(t, 3, b.Period().Days())
	assert.True(t, decimal.NewFromInt(150).Equal(b.TotalPrice()))
	assert.Equal(t, lb.Seller(), b.SellerID())
	assert.Equal(t, fixedNow, b.CreatedAt())
}

func TestBookingCommands_CreateRejected(t *testing.T) {
	buyerID := uuid.New()

	testCases := []struct {
		name     string
		actor    user.Actor
		listing  *builder.ListingBuilder
		start    time.Time
		end      time.Time
		setup    func(f *fixture, lb *builder.ListingBuilder)
		category error
		code     string
	}{
		{
			name:     "seller cannot book",
			actor:    builder.Seller(uuid.New()),
			listing:  builder.NewListingBuilder(),
			start:    day(1),
			end:      day(4),
			setup:    func(*fixture, *builder.ListingBuilder) {},
			category: errs.ErrAuthorization,
			code:     "forbidden",
		},
		{
			name:    "listing not found",
			actor:   builder.Buyer(buyerID),
			listing: builder.NewListingBuilder(),
			start:   day(1),
			end:     day(4),
			setup: func(f *fixture, lb *builder.ListingBuilder) {
				f.listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(nil, notFound())
			},
			category: errs.ErrNotFound,
			code:     "listing_not_found",
		},
		{
			name:    "listing without seller",
			actor:   builder.Buyer(buyerID),
			listing: builder.NewListingBuilder().WithoutSeller(),
			start:   day(1),
			end:     day(4),
			setup: func(f *fixture, lb *builder.ListingBuilder) {
				f.listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(lb.BuildDomain(), nil)
			},
			category: errs.ErrState,
			code:     "no_assigned_seller",
		},
		{
			name:    "own listing",
			actor:   builder.Buyer(buyerID),
			listing: builder.NewListingBuilder().WithSeller(buyerID),
			start:   day(1),
			end:     day(4),
			setup: func(f *fixture, lb *builder.ListingBuilder) {
				f.listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(lb.BuildDomain(), nil)
			},
			category: errs.ErrValidation,
			code:     "self_booking",
		},
		{
			name:    "already has an active booking",
			actor:   builder.Buyer(buyerID),
			listing: builder.NewListingBuilder(),
			start:   day(1),
			end:     day(4),
			setup: func(f *fixture, lb *builder.ListingBuilder) {
				f.listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(lb.BuildDomain(), nil)
				f.reads.EXPECT().HasActiveBooking(gomock.Any(), buyerID, lb.ID).Return(true, nil)
			},
			category: errs.ErrConflict,
			code:     "duplicate_active_booking",
		},
		{
			name:    "end not after start",
			actor:   builder.Buyer(buyerID),
			listing: builder.NewListingBuilder(),
			start:   day(4),
			end:     day(4),
			setup: func(f *fixture, lb *builder.ListingBuilder) {
				f.listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(lb.BuildDomain(), nil)
				f.reads.EXPECT().HasActiveBooking(gomock.Any(), buyerID, lb.ID).Return(false, nil)
			},
			category: errs.ErrValidation,
			code:     "invalid_period",
		},
		{
			name:    "longer than the maximum",
			actor:   builder.Buyer(buyerID),
			listing: builder.NewListingBuilder(),
			start:   day(1),
			end:     day(1).AddDate(0, 0, 31),
			setup: func(f *fixture, lb *builder.ListingBuilder) {
				f.listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(lb.BuildDomain(), nil)
				f.reads.EXPECT().HasActiveBooking(gomock.Any(), buyerID, lb.ID).Return(false, nil)
			},
			category: errs.ErrValidation,
			code:     "period_too_long",
		},
		{
			name:    "non positive price",
			actor:   builder.Buyer(buyerID),
			listing: builder.NewListingBuilder().WithPrice("0"),
			start:   day(1),
			end:     day(4),
			setup: func(f *fixture, lb *builder.ListingBuilder) {
				f.listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(lb.BuildDomain(), nil)
				f.reads.EXPECT().HasActiveBooking(gomock.Any(), buyerID, lb.ID).Return(false, nil)
			},
			category: errs.ErrValidation,
			code:     "invalid_price",
		},
		{
			name:    "overlap found inside the transaction",
			actor:   builder.Buyer(buyerID),
			listing: builder.NewListingBuilder(),
			start:   day(1),
			end:     day(4),
			setup: func(f *fixture, lb *builder.ListingBuilder) {
				l := lb.BuildDomain()
				f.listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(l, nil)
				f.reads.EXPECT().HasActiveBooking(gomock.Any(), buyerID, lb.ID).Return(false, nil)
				f.runWithin()
				f.txReads.EXPECT().ListingByID(gomock.Any(), lb.ID).Return(l, nil)
				f.bookings.EXPECT().HasActiveForBuyer(gomock.Any(), buyerID, lb.ID).Return(false, nil)
				f.bookings.EXPECT().HasOverlap(gomock.Any(), lb.ID, gomock.Any()).Return(true, nil)
			},
			category: errs.ErrConflict,
			code:     "overlap",
		},
		{
			name:    "exclusion constraint fires on insert",
			actor:   builder.Buyer(buyerID),
			listing: builder.NewListingBuilder(),
			start:   day(1),
			end:     day(4),
			setup: func(f *fixture, lb *builder.ListingBuilder) {
				l := lb.BuildDomain()
				f.listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(l, nil)
				f.reads.EXPECT().HasActiveBooking(gomock.Any(), buyerID, lb.ID).Return(false, nil)
				f.runWithin()
				f.txReads.EXPECT().ListingByID(gomock.Any(), lb.ID).Return(l, nil)
				f.bookings.EXPECT().HasActiveForBuyer(gomock.Any(), buyerID, lb.ID).Return(false, nil)
				f.bookings.EXPECT().HasOverlap(gomock.Any(), lb.ID, gomock.Any()).Return(false, nil)
				f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "23P01", ConstraintName: "ex_bookings_no_overlap"}))
			},
			category: errs.ErrConflict,
			code:     "overlap",
		},
		{
			name:    "unique index fires on insert",
			actor:   builder.Buyer(buyerID),
			listing: builder.NewListingBuilder(),
			start:   day(1),
			end:     day(4),
			setup: func(f *fixture, lb *builder.ListingBuilder) {
				l := lb.BuildDomain()
				f.listings.EXPECT().FindByID(gomock.Any(), lb.ID).Return(l, nil)
				f.reads.EXPECT().HasActiveBooking(gomock.Any(), buyerID, lb.ID).Return(false, nil)
				f.runWithin()
				f.txReads.EXPECT().ListingByID(gomock.Any(), lb.ID).Return(l, nil)
				f.bookings.EXPECT().HasActiveForBuyer(gomock.Any(), buyerID, lb.ID).Return(false, nil)
				f.bookings.EXPECT().HasOverlap(gomock.Any(), lb.ID, gomock.Any()).Return(false, nil)
				f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "23505", ConstraintName: "uq_bookings_active_buyer_listing"}))
			},
			category: errs.ErrConflict,
			code:     "duplicate_active_booking",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setup(f, tc.listing)

			b, err := f.bookingUseCase().Create(context.Background(), tc.actor, commands.CreateBookingInput{
				ListingID: tc.listing.ID,
				StartDate: tc.start,
				EndDate:   tc.end,
			})

			require.Error(t, err)
			assert.Nil(t, b)
			assert.Equal(t, tc.category, errs.Category(err))
			assert.Equal(t, tc.code, errs.CodeOf(err))
		})
	}
}

func TestBookingCommands_ChangeStatus(t *testing.T) {
	sellerID := uuid.New()
	buyerID := uuid.New()
	base := func() *builder.BookingBuilder {
		return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.SellerID = sellerID
			b.BuyerID = buyerID
		})
	}

	testCases := []struct {
		name        string
		booking     *builder.BookingBuilder
		actor       user.Actor
		requested   string
		wantStatus  booking.Status
		wantPayment booking.PaymentStatus
	}{
		{
			name:        "seller confirms a paid booking",
			booking:     base().WithStatus(booking.StatusPending, booking.PaymentPaid),
			actor:       builder.Seller(sellerID),
			requested:   "confirmed",
			wantStatus:  booking.StatusConfirmed,
			wantPayment: booking.PaymentPaid,
		},
		{
			name:        "buyer cancels a paid pending booking and is refunded",
			booking:     base().WithStatus(booking.StatusPending, booking.PaymentPaid),
			actor:       builder.Buyer(buyerID),
			requested:   "cancelled",
			wantStatus:  booking.StatusCancelled,
			wantPayment: booking.PaymentRefunded,
		},
		{
			name:        "admin cancels a confirmed booking",
			booking:     base().WithStatus(booking.StatusConfirmed, booking.PaymentPaid),
			actor:       builder.Admin(uuid.New()),
			requested:   "cancelled",
			wantStatus:  booking.StatusCancelled,
			wantPayment: booking.PaymentPaid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			b := tc.booking.BuildDomain()
			previous := b.Status()

			f.runWithin()
			f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), tc.booking.ID).Return(b, nil)
			f.bookings.EXPECT().UpdateStatus(gomock.Any(), b).Return(nil)
			f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg shared.OutboxMessage) error {
				assert.Equal(t, commands.EventBookingStatusChanged, msg.EventType)
				var body struct {
					Status   string `json:"status"`
					Previous string `json:"previousStatus"`
				}
				require.NoError(t, json.Unmarshal(msg.Payload, &body))
				assert.Equal(t, tc.wantStatus.String(), body.Status)
				assert.Equal(t, previous.String(), body.Previous)
				return nil
			})

			got, err := f.bookingUseCase().ChangeStatus(context.Background(), tc.actor, tc.booking.ID, tc.requested)

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status())
			assert.Equal(t, tc.wantPayment, got.PaymentStatus())
			assert.Equal(t, fixedNow, got.UpdatedAt())
		})
	}
}

func TestBookingCommands_ChangeStatusRejected(t *testing.T) {
	sellerID := uuid.New()
	buyerID := uuid.New()
	base := func() *builder.BookingBuilder {
		return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.SellerID = sellerID
			b.BuyerID = buyerID
		})
	}

	testCases := []struct {
		name      string
		booking   *builder.BookingBuilder
		actor     user.Actor
		requested string
		category  error
		code      string
	}{
		{
			name:      "confirm before payment",
			booking:   base(),
			actor:     builder.Seller(sellerID),
			requested: "confirmed",
			category:  errs.ErrState,
			code:      string(booking.ReasonPaymentRequired),
		},
		{
			name:      "another seller",
			booking:   base(),
			actor:     builder.Seller(uuid.New()),
			requested: "cancelled",
			category:  errs.ErrAuthorization,
			code:      string(booking.ReasonNotOwner),
		},
		{
			name:      "unknown status",
			booking:   base(),
			actor:     builder.Seller(sellerID),
			requested: "shipped",
			category:  errs.ErrValidation,
			code:      string(booking.ReasonInvalidStatus),
		},
		{
			name:      "complete before the tour ends",
			booking:   base().WithStatus(booking.StatusConfirmed, booking.PaymentPaid),
			actor:     builder.Seller(sellerID),
			requested: "completed",
			category:  errs.ErrState,
			code:      string(booking.ReasonTooEarly),
		},
		{
			name:      "completed booking is terminal",
			booking:   base().WithStatus(booking.StatusCompleted, booking.PaymentPaid),
			actor:     builder.Admin(uuid.New()),
			requested: "cancelled",
			category:  errs.ErrState,
			code:      string(booking.ReasonTerminalState),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.runWithin()
			f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), tc.booking.ID).Return(tc.booking.BuildDomain(), nil)

			got, err := f.bookingUseCase().ChangeStatus(context.Background(), tc.actor, tc.booking.ID, tc.requested)

			require.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, tc.category, errs.Category(err))
			assert.Equal(t, tc.code, errs.CodeOf(err))
		})
	}
}

func TestBookingCommands_ChangeStatusNotFound(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.runWithin()
	f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(nil, notFound())

	_, err := f.bookingUseCase().ChangeStatus(context.Background(), builder.Admin(uuid.New()), id, "cancelled")

	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
}
