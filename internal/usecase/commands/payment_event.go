package commands

import (
	"context"
	"log/slog"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/infra"
	"tour-booking/internal/infra/metrics"
	"tour-booking/internal/pkg/clock"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ApplyOutcome string

const (
	OutcomeApplied   ApplyOutcome = "applied"
	OutcomeDuplicate ApplyOutcome = "duplicate"
	OutcomeIgnored   ApplyOutcome = "ignored"
)

type PaymentEventCommands interface {
	// ApplyEvent verifies and applies one processor delivery. A nil error
	// means the delivery may be acknowledged.
	ApplyEvent(ctx context.Context, payload []byte, signatureHeader string) (ApplyOutcome, error)
}

type paymentEventUseCaseImpl struct {
	uow      shared.UnitOfWork
	verifier EventVerifier
	marker   EventMarker
	clock    clock.Clock
	logger   *slog.Logger
}

func NewPaymentEventCommands(uow shared.UnitOfWork, verifier EventVerifier, marker EventMarker, clk clock.Clock, logger *slog.Logger) PaymentEventCommands {
	return &paymentEventUseCaseImpl{
		uow:      uow,
		verifier: verifier,
		marker:   marker,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *paymentEventUseCaseImpl) ApplyEvent(ctx context.Context, payload []byte, signatureHeader string) (ApplyOutcome, error) {
	ev, err := uc.verifier.Verify(payload, signatureHeader)
	if err != nil {
		metrics.PaymentEvents.WithLabelValues("unknown", "invalid_signature").Inc()
		uc.logger.Warn("rejected webhook delivery", "error", err)
		return "", signatureError(err)
	}
	uc.logger.Info("payment event received", "event_id", ev.ID, "type", ev.Type)

	if seen, err := uc.marker.Seen(ctx, ev.ID); err != nil {
		uc.logger.Warn("event marker lookup failed", "event_id", ev.ID, "error", err)
	} else if seen {
		metrics.PaymentEvents.WithLabelValues(string(ev.Type), string(OutcomeDuplicate)).Inc()
		return OutcomeDuplicate, nil
	}

	var outcome ApplyOutcome
	switch ev.Type {
	case PaymentEventSucceeded:
		outcome, err = uc.applySucceeded(ctx, ev)
	case PaymentEventFailed:
		outcome, err = uc.applyFailed(ctx, ev)
	default:
		outcome = OutcomeIgnored
	}
	if err != nil {
		metrics.PaymentEvents.WithLabelValues(string(ev.Type), "error").Inc()
		uc.logger.Error("payment event not applied", "event_id", ev.ID, "type", ev.Type, "error", err)
		return "", err
	}

	metrics.PaymentEvents.WithLabelValues(string(ev.Type), string(outcome)).Inc()
	if err := uc.marker.Mark(ctx, ev.ID); err != nil {
		uc.logger.Warn("event marker write failed", "event_id", ev.ID, "error", err)
	}
	return outcome, nil
}

func (uc *paymentEventUseCaseImpl) applySucceeded(ctx context.Context, ev *PaymentEvent) (ApplyOutcome, error) {
	bookingID, err := uuid.Parse(ev.BookingID)
	if err != nil {
		return "", ErrMissingBookingMetadata
	}

	var outcome ApplyOutcome
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Within may rerun this closure after a serialization failure
		outcome = OutcomeApplied
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				uc.logger.Warn("payment event for unknown booking", "booking_id", bookingID, "intent_id", ev.IntentID)
				outcome = OutcomeIgnored
				return nil
			}
			return err
		}
		p, err := tx.Payments().FindByExternalIDForUpdate(ctx, ev.IntentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				uc.logger.Warn("payment event for unknown intent", "booking_id", bookingID, "intent_id", ev.IntentID)
				outcome = OutcomeIgnored
				return nil
			}
			return err
		}
		if p.BookingID() != b.ID() {
			uc.logger.Error("payment event correlates to a different booking",
				"booking_id", b.ID(),
				"payment_booking_id", p.BookingID(),
				"intent_id", ev.IntentID)
			outcome = OutcomeIgnored
			return nil
		}

		if b.PaymentStatus() == booking.PaymentPaid || !p.MarkSucceeded(uc.clock.Now()) {
			outcome = OutcomeDuplicate
			return nil
		}
		if expected := booking.MinorUnits(p.Amount()); ev.AmountMinor != expected {
			metrics.PaymentAmountDrift.Inc()
			uc.logger.Warn("charged amount differs from recorded payment",
				"booking_id", b.ID(),
				"intent_id", ev.IntentID,
				"expected_minor", expected,
				"charged_minor", ev.AmountMinor)
		}

		now := uc.clock.Now()
		b.MarkPaid(now)
		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return err
		}
		if err := tx.Payments().UpdateStatus(ctx, p); err != nil {
			return err
		}
		msg, err := newPaymentMessage(EventPaymentSucceeded, p, now)
		if err != nil {
			return err
		}
		return tx.Outbox().Enqueue(ctx, msg)
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}

// applyFailed leaves the booking untouched. A failure reported after the
// payment succeeded is stale and ignored.
func (uc *paymentEventUseCaseImpl) applyFailed(ctx context.Context, ev *PaymentEvent) (ApplyOutcome, error) {
	var outcome ApplyOutcome
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outcome = OutcomeApplied
		p, err := tx.Payments().FindByExternalIDForUpdate(ctx, ev.IntentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				outcome = OutcomeIgnored
				return nil
			}
			return err
		}
		now := uc.clock.Now()
		if !p.MarkFailed(now) {
			outcome = OutcomeDuplicate
			return nil
		}
		if err := tx.Payments().UpdateStatus(ctx, p); err != nil {
			return err
		}
		msg, err := newPaymentMessage(EventPaymentFailed, p, now)
		if err != nil {
			return err
		}
		return tx.Outbox().Enqueue(ctx, msg)
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}
