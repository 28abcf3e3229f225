package booking

import (
	"fmt"
	"time"

	"tour-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Reason is a stable, machine-readable rejection code.
type Reason string

const (
	ReasonInvalidStatus     Reason = "invalid_status"
	ReasonNotOwner          Reason = "not_owner"
	ReasonNotAllowed        Reason = "not_allowed"
	ReasonTooEarly          Reason = "too_early"
	ReasonPaymentRequired   Reason = "payment_required"
	ReasonForbidden         Reason = "forbidden"
	ReasonNoOp              Reason = "no_op"
	ReasonTerminalState     Reason = "immutable_terminal_state"
	ReasonIllegalTransition Reason = "illegal_transition"
)

type RejectionError struct {
	Reason Reason
	From   Status
	To     Status
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("status change %s -> %s rejected: %s", e.From, e.To, e.Reason)
}

// IsAuthorization reports whether the rejection is about who is asking rather
// than the booking's state.
func (e *RejectionError) IsAuthorization() bool {
	return e.Reason == ReasonNotOwner || e.Reason == ReasonForbidden
}

// IsValidation reports whether the request itself was malformed.
func (e *RejectionError) IsValidation() bool {
	return e.Reason == ReasonInvalidStatus
}

type TransitionInput struct {
	Current   Status
	Payment   PaymentStatus
	EndDate   time.Time
	BuyerID   uuid.UUID
	SellerID  uuid.UUID
	Actor     user.Actor
	Requested Status
	Now       time.Time
}

// Transition is an approved (status, paymentStatus) change.
type Transition struct {
	From        Status
	To          Status
	PaymentFrom PaymentStatus
	PaymentTo   PaymentStatus
}

// Decide is a total function over its input: it returns either an approved
// Transition or a *RejectionError. Rules are evaluated in order and the first
// one that matches decides.
func Decide(in TransitionInput) (Transition, error) {
	reject := func(r Reason) (Transition, error) {
		return Transition{}, &RejectionError{Reason: r, From: in.Current, To: in.Requested}
	}
	approve := func(payment PaymentStatus) (Transition, error) {
		return Transition{From: in.Current, To: in.Requested, PaymentFrom: in.Payment, PaymentTo: payment}, nil
	}

	if !in.Requested.IsValid() {
		return reject(ReasonInvalidStatus)
	}

	switch a := in.Actor.(type) {
	case user.Buyer:
		if a.ID() != in.BuyerID {
			return reject(ReasonNotOwner)
		}
		if in.Current != StatusPending || in.Requested != StatusCancelled {
			return reject(ReasonNotAllowed)
		}
		payment := in.Payment
		if payment == PaymentPaid {
			payment = PaymentRefunded
		}
		return approve(payment)

	case user.Seller:
		if a.ID() != in.SellerID {
			return reject(ReasonNotOwner)
		}
		switch in.Requested {
		case StatusConfirmed, StatusCompleted, StatusCancelled:
		default:
			return reject(ReasonNotAllowed)
		}
		if in.Requested == StatusCompleted && in.Now.Before(in.EndDate) {
			return reject(ReasonTooEarly)
		}
		if in.Requested == StatusConfirmed && in.Payment != PaymentPaid {
			return reject(ReasonPaymentRequired)
		}

	case user.Admin:
		if in.Requested != StatusPending && in.Requested != StatusCancelled {
			return reject(ReasonForbidden)
		}

	default:
		return reject(ReasonForbidden)
	}

	switch {
	case in.Requested == in.Current:
		return reject(ReasonNoOp)
	case in.Current.IsTerminal():
		return reject(ReasonTerminalState)
	case !canTransition(in.Current, in.Requested):
		return reject(ReasonIllegalTransition)
	}
	return approve(in.Payment)
}

// RequestStatus evaluates a status change for this booking.
func (b *Booking) RequestStatus(actor user.Actor, requested Status, now time.Time) (Transition, error) {
	return Decide(TransitionInput{
		Current:   b.status,
		Payment:   b.paymentStatus,
		EndDate:   b.period.End(),
		BuyerID:   b.buyerID,
		SellerID:  b.sellerID,
		Actor:     actor,
		Requested: requested,
		Now:       now,
	})
}
