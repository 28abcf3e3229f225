//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/domain/payment"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/usecase/commands"
	"tour-booking/internal/usecase/shared"
	"tour-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const signature = "t=1,v1=abc"

func (f *fixture) eventUseCase() commands.PaymentEventCommands {
	return commands.NewPaymentEventCommands(f.uow, f.verifier, f.marker, f.clock, f.logger)
}

func succeededEvent(b *builder.BookingBuilder, p *builder.PaymentBuilder) *commands.PaymentEvent {
	return &commands.PaymentEvent{
		ID:          "evt_1",
		Type:        commands.PaymentEventSucceeded,
		IntentID:    p.ExternalID,
		BookingID:   b.ID.String(),
		AmountMinor: booking.MinorUnits(p.Amount),
		Currency:    p.Currency,
	}
}

func TestApplyEvent_InvalidSignature(t *testing.T) {
	f := newFixture(t)
	f.verifier.EXPECT().Verify([]byte("{}"), "bogus").Return(nil, errors.New("no valid signature"))

	outcome, err := f.eventUseCase().ApplyEvent(context.Background(), []byte("{}"), "bogus")

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrSignature))
	assert.Equal(t, "invalid_webhook", errs.CodeOf(err))
	assert.Empty(t, outcome)
}

func TestApplyEvent_AlreadySeen(t *testing.T) {
	f := newFixture(t)
	bb := builder.NewBookingBuilder()
	pb := builder.NewPaymentBuilder().ForBooking(bb)
	f.verifier.EXPECT().Verify(gomock.Any(), signature).Return(succeededEvent(bb, pb), nil)
	f.marker.EXPECT().Seen(gomock.Any(), "evt_1").Return(true, nil)

	outcome, err := f.eventUseCase().ApplyEvent(context.Background(), []byte("{}"), signature)

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeDuplicate, outcome)
}

func TestApplyEvent_Succeeded(t *testing.T) {
	f := newFixture(t)
	bb := builder.NewBookingBuilder()
	pb := builder.NewPaymentBuilder().ForBooking(bb)
	b, p := bb.BuildDomain(), pb.BuildDomain()

	f.verifier.EXPECT().Verify(gomock.Any(), signature).Return(succeededEvent(bb, pb), nil)
	f.marker.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, nil)
	f.runWithin()
	f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bb.ID).Return(b, nil)
	f.payments.EXPECT().FindByExternalIDForUpdate(gomock.Any(), pb.ExternalID).Return(p, nil)
	f.bookings.EXPECT().UpdateStatus(gomock.Any(), b).DoAndReturn(func(_ context.Context, got *booking.Booking) error {
		assert.Equal(t, booking.StatusPending, got.Status(), "payment never moves the lifecycle")
		assert.Equal(t, booking.PaymentPaid, got.PaymentStatus())
		return nil
	})
	f.payments.EXPECT().UpdateStatus(gomock.Any(), p).DoAndReturn(func(_ context.Context, got *payment.Payment) error {
		assert.Equal(t, payment.StatusSucceeded, got.Status())
		return nil
	})
	f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg shared.OutboxMessage) error {
		assert.Equal(t, commands.EventPaymentSucceeded, msg.EventType)
		assert.Equal(t, bb.ID.String(), msg.Key)

		var body map[string]any
		require.NoError(t, json.Unmarshal(msg.Payload, &body))
		want := map[string]any{
			"bookingId":  bb.ID.String(),
			"paymentId":  pb.ID.String(),
			"externalId": pb.ExternalID,
			"status":     "succeeded",
			"amount":     "150.00",
			"currency":   "usd",
		}
		delete(body, "occurredAt")
		if diff := cmp.Diff(want, body); diff != "" {
			t.Errorf("payload mismatch (-want +got):\n%s", diff)
		}
		return nil
	})
	f.marker.EXPECT().Mark(gomock.Any(), "evt_1").Return(nil)

	outcome, err := f.eventUseCase().ApplyEvent(context.Background(), []byte("{}"), signature)

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeApplied, outcome)
}

func TestApplyEvent_RetriedTransactionReportsFinalOutcome(t *testing.T) {
	f := newFixture(t)
	bb := builder.NewBookingBuilder()
	pb := builder.NewPaymentBuilder().ForBooking(bb)
	b, p := bb.BuildDomain(), pb.BuildDomain()

	f.verifier.EXPECT().Verify(gomock.Any(), signature).Return(succeededEvent(bb, pb), nil)
	f.marker.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, nil)
	// the first attempt's commit hits a serialization failure and is rerun
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			if err := fn(ctx, f.tx); err != nil {
				return err
			}
			return fn(ctx, f.tx)
		})
	gomock.InOrder(
		f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bb.ID).Return(nil, notFound()),
		f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bb.ID).Return(b, nil),
	)
	f.payments.EXPECT().FindByExternalIDForUpdate(gomock.Any(), pb.ExternalID).Return(p, nil)
	f.bookings.EXPECT().UpdateStatus(gomock.Any(), b).Return(nil)
	f.payments.EXPECT().UpdateStatus(gomock.Any(), p).Return(nil)
	f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
	f.marker.EXPECT().Mark(gomock.Any(), "evt_1").Return(nil)

	outcome, err := f.eventUseCase().ApplyEvent(context.Background(), []byte("{}"), signature)

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeApplied, outcome)
}

func TestApplyEvent_SucceededAmountDriftStillApplies(t *testing.T) {
	f := newFixture(t)
	bb := builder.NewBookingBuilder()
	pb := builder.NewPaymentBuilder().ForBooking(bb)
	ev := succeededEvent(bb, pb)
	ev.AmountMinor = 1

	f.verifier.EXPECT().Verify(gomock.Any(), signature).Return(ev, nil)
	f.marker.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, nil)
	f.runWithin()
	f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
	f.payments.EXPECT().FindByExternalIDForUpdate(gomock.Any(), pb.ExternalID).Return(pb.BuildDomain(), nil)
	f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
	f.payments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
	f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
	f.marker.EXPECT().Mark(gomock.Any(), "evt_1").Return(nil)

	outcome, err := f.eventUseCase().ApplyEvent(context.Background(), []byte("{}"), signature)

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeApplied, outcome)
}

func TestApplyEvent_SucceededNoOps(t *testing.T) {
	testCases := []struct {
		name    string
		booking func() *builder.BookingBuilder
		payment func(*builder.BookingBuilder) *builder.PaymentBuilder
		setup   func(f *fixture, bb *builder.BookingBuilder, pb *builder.PaymentBuilder)
		want    commands.ApplyOutcome
	}{
		{
			name: "booking already paid",
			booking: func() *builder.BookingBuilder {
				return builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed, booking.PaymentPaid)
			},
			payment: func(bb *builder.BookingBuilder) *builder.PaymentBuilder {
				return builder.NewPaymentBuilder().ForBooking(bb).WithStatus(payment.StatusSucceeded)
			},
			setup: func(f *fixture, bb *builder.BookingBuilder, pb *builder.PaymentBuilder) {
				f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
				f.payments.EXPECT().FindByExternalIDForUpdate(gomock.Any(), pb.ExternalID).Return(pb.BuildDomain(), nil)
			},
			want: commands.OutcomeDuplicate,
		},
		{
			name:    "payment already succeeded",
			booking: builder.NewBookingBuilder,
			payment: func(bb *builder.BookingBuilder) *builder.PaymentBuilder {
				return builder.NewPaymentBuilder().ForBooking(bb).WithStatus(payment.StatusSucceeded)
			},
			setup: func(f *fixture, bb *builder.BookingBuilder, pb *builder.PaymentBuilder) {
				f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
				f.payments.EXPECT().FindByExternalIDForUpdate(gomock.Any(), pb.ExternalID).Return(pb.BuildDomain(), nil)
			},
			want: commands.OutcomeDuplicate,
		},
		{
			name:    "unknown booking",
			booking: builder.NewBookingBuilder,
			payment: func(bb *builder.BookingBuilder) *builder.PaymentBuilder {
				return builder.NewPaymentBuilder().ForBooking(bb)
			},
			setup: func(f *fixture, bb *builder.BookingBuilder, _ *builder.PaymentBuilder) {
				f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bb.ID).Return(nil, notFound())
			},
			want: commands.OutcomeIgnored,
		},
		{
			name:    "unknown intent",
			booking: builder.NewBookingBuilder,
			payment: func(bb *builder.BookingBuilder) *builder.PaymentBuilder {
				return builder.NewPaymentBuilder().ForBooking(bb)
			},
			setup: func(f *fixture, bb *builder.BookingBuilder, pb *builder.PaymentBuilder) {
				f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
				f.payments.EXPECT().FindByExternalIDForUpdate(gomock.Any(), pb.ExternalID).Return(nil, notFound())
			},
			want: commands.OutcomeIgnored,
		},
		{
			name:    "intent belongs to another booking",
			booking: builder.NewBookingBuilder,
			payment: func(*builder.BookingBuilder) *builder.PaymentBuilder {
				return builder.NewPaymentBuilder()
			},
			setup: func(f *fixture, bb *builder.BookingBuilder, pb *builder.PaymentBuilder) {
				f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
				f.payments.EXPECT().FindByExternalIDForUpdate(gomock.Any(), pb.ExternalID).Return(pb.BuildDomain(), nil)
			},
			want: commands.OutcomeIgnored,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			bb := tc.booking()
			pb := tc.payment(bb)

			f.verifier.EXPECT().Verify(gomock.Any(), signature).Return(succeededEvent(bb, pb), nil)
			f.marker.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, nil)
			f.runWithin()
			tc.setup(f, bb, pb)
			f.marker.EXPECT().Mark(gomock.Any(), "evt_1").Return(nil)

			outcome, err := f.eventUseCase().ApplyEvent(context.Background(), []byte("{}"), signature)

			require.NoError(t, err)
			assert.Equal(t, tc.want, outcome)
		})
	}
}

func TestApplyEvent_SucceededWithoutBookingMetadata(t *testing.T) {
	f := newFixture(t)
	f.verifier.EXPECT().Verify(gomock.Any(), signature).Return(&commands.PaymentEvent{
		ID:       "evt_2",
		Type:     commands.PaymentEventSucceeded,
		IntentID: "pi_123",
	}, nil)
	f.marker.EXPECT().Seen(gomock.Any(), "evt_2").Return(false, nil)

	_, err := f.eventUseCase().ApplyEvent(context.Background(), []byte("{}"), signature)

	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrMissingBookingMetadata))
}

func TestApplyEvent_StorageFailureIsNotMarked(t *testing.T) {
	f := newFixture(t)
	bb := builder.NewBookingBuilder()
	pb := builder.NewPaymentBuilder().ForBooking(bb)
	dbErr := errors.New("connection reset")

	f.verifier.EXPECT().Verify(gomock.Any(), signature).Return(succeededEvent(bb, pb), nil)
	f.marker.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, nil)
	f.runWithin()
	f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bb.ID).Return(nil, dbErr)

	_, err := f.eventUseCase().ApplyEvent(context.Background(), []byte("{}"), signature)

	require.ErrorIs(t, err, dbErr)
}

func TestApplyEvent_MarkerOutageFallsBackToStorage(t *testing.T) {
	f := newFixture(t)
	bb := builder.NewBookingBuilder().WithStatus(booking.StatusPending, booking.PaymentPaid)
	pb := builder.NewPaymentBuilder().ForBooking(bb).WithStatus(payment.StatusSucceeded)

	f.verifier.EXPECT().Verify(gomock.Any(), signature).Return(succeededEvent(bb, pb), nil)
	f.marker.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, errors.New("redis down"))
	f.runWithin()
	f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
	f.payments.EXPECT().FindByExternalIDForUpdate(gomock.Any(), pb.ExternalID).Return(pb.BuildDomain(), nil)
	f.marker.EXPECT().Mark(gomock.Any(), "evt_1").Return(errors.New("redis down"))

	outcome, err := f.eventUseCase().ApplyEvent(context.Background(), []byte("{}"), signature)

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeDuplicate, outcome)
}

func TestApplyEvent_Failed(t *testing.T) {
	testCases := []struct {
		name          string
		paymentStatus payment.Status
		found         bool
		want          commands.ApplyOutcome
	}{
		{name: "pending payment fails", paymentStatus: payment.StatusPending, found: true, want: commands.OutcomeApplied},
		{name: "failure after success is stale", paymentStatus: payment.StatusSucceeded, found: true, want: commands.OutcomeDuplicate},
		{name: "repeated failure", paymentStatus: payment.StatusFailed, found: true, want: commands.OutcomeDuplicate},
		{name: "unknown intent", found: false, want: commands.OutcomeIgnored},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			pb := builder.NewPaymentBuilder().WithStatus(tc.paymentStatus)

			f.verifier.EXPECT().Verify(gomock.Any(), signature).Return(&commands.PaymentEvent{
				ID:       "evt_3",
				Type:     commands.PaymentEventFailed,
				IntentID: pb.ExternalID,
			}, nil)
			f.marker.EXPECT().Seen(gomock.Any(), "evt_3").Return(false, nil)
			f.runWithin()
			if tc.found {
				f.payments.EXPECT().FindByExternalIDForUpdate(gomock.Any(), pb.ExternalID).Return(pb.BuildDomain(), nil)
			} else {
				f.payments.EXPECT().FindByExternalIDForUpdate(gomock.Any(), pb.ExternalID).Return(nil, notFound())
			}
			if tc.want == commands.OutcomeApplied {
				f.payments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got *payment.Payment) error {
					assert.Equal(t, payment.StatusFailed, got.Status())
					return nil
				})
				f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg shared.OutboxMessage) error {
					assert.Equal(t, commands.EventPaymentFailed, msg.EventType)
					return nil
				})
			}
			f.marker.EXPECT().Mark(gomock.Any(), "evt_3").Return(nil)

			outcome, err := f.eventUseCase().ApplyEvent(context.Background(), []byte("{}"), signature)

			require.NoError(t, err)
			assert.Equal(t, tc.want, outcome)
		})
	}
}

func TestApplyEvent_UnrelatedTypeIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.verifier.EXPECT().Verify(gomock.Any(), signature).Return(&commands.PaymentEvent{
		ID:   "evt_4",
		Type: "charge.refunded",
	}, nil)
	f.marker.EXPECT().Seen(gomock.Any(), "evt_4").Return(false, nil)
	f.marker.EXPECT().Mark(gomock.Any(), "evt_4").Return(nil)

	outcome, err := f.eventUseCase().ApplyEvent(context.Background(), []byte("{}"), signature)

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeIgnored, outcome)
}
