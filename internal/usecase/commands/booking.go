package commands

import (
	"context"
	"log/slog"
	"time"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/domain/user"
	"tour-booking/internal/infra"
	"tour-booking/internal/infra/metrics"
	"tour-booking/internal/pkg/clock"
	"tour-booking/internal/pkg/config"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	ListingID uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, actor user.Actor, in CreateBookingInput) (*booking.Booking, error)
	ChangeStatus(ctx context.Context, actor user.Actor, bookingID uuid.UUID, requested string) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	listings ListingLookup
	clock    clock.Clock
	maxDays  int
	logger   *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, listings ListingLookup, clk clock.Clock, cfg config.BookingConfig, logger *slog.Logger) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		listings: listings,
		clock:    clk,
		maxDays:  cfg.MaxDays,
		logger:   logger,
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, actor user.Actor, in CreateBookingInput) (*booking.Booking, error) {
	b, err := uc.create(ctx, actor, in)
	if err != nil {
		metrics.BookingsCreated.WithLabelValues("rejected").Inc()
		return nil, err
	}
	metrics.BookingsCreated.WithLabelValues("created").Inc()
	uc.logger.Info("booking created",
		"booking_id", b.ID(),
		"listing_id", b.ListingID(),
		"buyer_id", b.BuyerID(),
		"days", b.Period().Days())
	return b, nil
}

func (uc *bookingUseCaseImpl) create(ctx context.Context, actor user.Actor, in CreateBookingInput) (*booking.Booking, error) {
	buyer, ok := actor.(user.Buyer)
	if !ok {
		return nil, ErrBuyersOnlyBook
	}

	l, err := uc.listings.FindByID(ctx, in.ListingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if _, err := booking.CheckEligibility(l, buyer.ID()); err != nil {
		return nil, classify(err)
	}

	active, err := uc.uow.CommandReads().HasActiveBooking(ctx, buyer.ID(), l.ID())
	if err != nil {
		return nil, err
	}
	if active {
		return nil, ErrDuplicateActiveBooking
	}

	period, err := booking.NewPeriod(in.StartDate, in.EndDate)
	if err != nil {
		return nil, classify(err)
	}
	// Price and duration checks on the possibly cached listing fail fast;
	// the transaction re-validates against the stored row.
	if _, err := booking.NewBooking(uc.clock.Now(), l, buyer.ID(), period, uc.maxDays); err != nil {
		return nil, classify(err)
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().ListingByID(ctx, in.ListingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrListingNotFound
			}
			return err
		}
		now := uc.clock.Now()
		b, err := booking.NewBooking(now, current, buyer.ID(), period, uc.maxDays)
		if err != nil {
			return classify(err)
		}

		if active, err := tx.Bookings().HasActiveForBuyer(ctx, buyer.ID(), current.ID()); err != nil {
			return err
		} else if active {
			return ErrDuplicateActiveBooking
		}
		if overlapping, err := tx.Bookings().HasOverlap(ctx, current.ID(), period); err != nil {
			return err
		} else if overlapping {
			return ErrCalendarOverlap
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			return translateInsertErr(err)
		}

		msg, err := newBookingMessage(EventBookingCreated, b, now, nil)
		if err != nil {
			return err
		}
		if err := tx.Outbox().Enqueue(ctx, msg); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// translateInsertErr maps storage-level backstops to the same conflicts the
// explicit checks report.
func translateInsertErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return ErrCalendarOverlap
	case infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == constraintActiveBuyerListing:
		return ErrDuplicateActiveBooking
	default:
		return err
	}
}

// ChangeStatus runs read, decide and write under one row lock.
func (uc *bookingUseCaseImpl) ChangeStatus(ctx context.Context, actor user.Actor, bookingID uuid.UUID, requested string) (*booking.Booking, error) {
	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		now := uc.clock.Now()
		t, err := b.RequestStatus(actor, booking.Status(requested), now)
		if err != nil {
			metrics.StatusTransitions.WithLabelValues(roleLabel(actor), statusLabel(requested), "rejected").Inc()
			return classify(err)
		}
		b.Apply(t, now)

		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return err
		}
		msg, err := newBookingMessage(EventBookingStatusChanged, b, now, func(ev *bookingEvent) {
			ev.PreviousState = t.From.String()
		})
		if err != nil {
			return err
		}
		if err := tx.Outbox().Enqueue(ctx, msg); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.StatusTransitions.WithLabelValues(roleLabel(actor), statusLabel(requested), "approved").Inc()
	uc.logger.Info("booking status changed",
		"booking_id", updated.ID(),
		"status", updated.Status(),
		"payment_status", updated.PaymentStatus(),
		"actor_role", roleLabel(actor))
	return updated, nil
}

func roleLabel(actor user.Actor) string {
	if actor == nil {
		return "none"
	}
	return actor.Role().String()
}

func statusLabel(s string) string {
	if !booking.Status(s).IsValid() {
		return "invalid"
	}
	return s
}
