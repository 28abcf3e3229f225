package commands

import (
	"context"
	"log/slog"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/domain/payment"
	"tour-booking/internal/domain/user"
	"tour-booking/internal/infra"
	"tour-booking/internal/infra/metrics"
	"tour-booking/internal/pkg/clock"
	"tour-booking/internal/pkg/config"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateIntentInput struct {
	BookingID uuid.UUID
	// RequestID scopes the processor idempotency key to one inbound request.
	RequestID string
}

type IntentResult struct {
	PaymentID    uuid.UUID
	IntentID     string
	ClientSecret string
	Amount       decimal.Decimal
	Currency     string
}

type PaymentCommands interface {
	CreateIntent(ctx context.Context, actor user.Actor, in CreateIntentInput) (*IntentResult, error)
}

type paymentUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	clock    clock.Clock
	currency string
	logger   *slog.Logger
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway PaymentGateway, clk clock.Clock, cfg config.PaymentConfig, logger *slog.Logger) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		clock:    clk,
		currency: cfg.Currency,
		logger:   logger,
	}
}

func (uc *paymentUseCaseImpl) CreateIntent(ctx context.Context, actor user.Actor, in CreateIntentInput) (*IntentResult, error) {
	res, err := uc.createIntent(ctx, actor, in)
	if err != nil {
		metrics.PaymentIntents.WithLabelValues("rejected").Inc()
		return nil, err
	}
	metrics.PaymentIntents.WithLabelValues("created").Inc()
	return res, nil
}

func (uc *paymentUseCaseImpl) createIntent(ctx context.Context, actor user.Actor, in CreateIntentInput) (*IntentResult, error) {
	buyer, ok := actor.(user.Buyer)
	if !ok {
		return nil, ErrBuyersOnlyPay
	}

	reads := uc.uow.CommandReads()
	b, err := reads.BookingByID(ctx, in.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if err := checkPayable(b, buyer.ID()); err != nil {
		return nil, err
	}

	switch _, err := reads.PaymentByBookingID(ctx, b.ID()); {
	case err == nil:
		return nil, ErrPaymentAlreadyInitiated
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}

	// Nothing is persisted until the processor has issued the intent.
	intent, err := uc.gateway.CreateIntent(ctx, IntentRequest{
		BookingID:      b.ID(),
		BuyerID:        buyer.ID(),
		AmountMinor:    booking.MinorUnits(b.TotalPrice()),
		Currency:       uc.currency,
		IdempotencyKey: "booking-intent:" + b.ID().String() + ":" + in.RequestID,
	})
	if err != nil {
		uc.logger.Error("payment intent creation failed", "booking_id", b.ID(), "error", err)
		return nil, providerError(err)
	}

	var created *payment.Payment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Bookings().FindByIDForUpdate(ctx, b.ID())
		if err != nil {
			return err
		}
		if err := checkPayable(locked, buyer.ID()); err != nil {
			return err
		}
		p, err := payment.NewPayment(uc.clock.Now(), locked.ID(), intent.ID, locked.TotalPrice(), uc.currency)
		if err != nil {
			return classify(err)
		}
		if err := tx.Payments().Create(ctx, p); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrPaymentAlreadyInitiated
			}
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		uc.cancelOrphan(ctx, intent.ID, b.ID())
		return nil, err
	}

	uc.logger.Info("payment intent created",
		"booking_id", b.ID(),
		"payment_id", created.ID(),
		"intent_id", intent.ID)
	return &IntentResult{
		PaymentID:    created.ID(),
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       created.Amount(),
		Currency:     created.Currency(),
	}, nil
}

func checkPayable(b *booking.Booking, buyerID uuid.UUID) error {
	switch {
	case !b.IsOwnedByBuyer(buyerID):
		return ErrNotBookingOwner
	case b.Status() == booking.StatusCancelled:
		return ErrBookingCancelled
	case b.Status() != booking.StatusPending:
		return ErrBookingNotPending
	case b.PaymentStatus() == booking.PaymentPaid:
		return ErrBookingAlreadyPaid
	}
	return nil
}

// cancelOrphan voids an intent whose Payment row never committed. A retry that
// shares the idempotency key gets the same intent back, so an intent already
// recorded against the booking is left alone.
func (uc *paymentUseCaseImpl) cancelOrphan(ctx context.Context, intentID string, bookingID uuid.UUID) {
	ctx = context.WithoutCancel(ctx)
	existing, err := uc.uow.CommandReads().PaymentByBookingID(ctx, bookingID)
	switch {
	case err == nil && existing.ExternalID() == intentID:
		uc.logger.Info("payment intent already recorded, not cancelling",
			"booking_id", bookingID,
			"intent_id", intentID)
		return
	case err != nil && !infra.IsKind(err, infra.KindNotFound):
		uc.logger.Error("failed to check payment before cancelling intent",
			"booking_id", bookingID,
			"intent_id", intentID,
			"error", err)
		return
	}
	if err := uc.gateway.CancelIntent(ctx, intentID); err != nil {
		uc.logger.Error("failed to cancel orphaned payment intent",
			"booking_id", bookingID,
			"intent_id", intentID,
			"error", err)
		return
	}
	uc.logger.Warn("cancelled orphaned payment intent", "booking_id", bookingID, "intent_id", intentID)
}
