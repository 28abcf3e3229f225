package commands

import (
	"tour-booking/internal/domain/booking"
	"tour-booking/internal/domain/listing"
	"tour-booking/internal/domain/payment"
	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/errs"
)

var (
	ErrBuyersOnlyBook          = errs.Define(errs.ErrAuthorization, "forbidden", "only buyers can book tours")
	ErrBuyersOnlyPay           = errs.Define(errs.ErrAuthorization, "forbidden", "only buyers can make payments")
	ErrListingNotFound         = errs.Define(errs.ErrNotFound, "listing_not_found", "listing not found")
	ErrBookingNotFound         = errs.Define(errs.ErrNotFound, "booking_not_found", "booking not found")
	ErrDuplicateActiveBooking  = errs.Define(errs.ErrConflict, "duplicate_active_booking", "you already have an active booking for this tour")
	ErrCalendarOverlap         = errs.Define(errs.ErrConflict, "overlap", "this tour is already booked for the selected dates")
	ErrNotBookingOwner         = errs.Define(errs.ErrAuthorization, "not_owner", "you do not own this booking")
	ErrBookingCancelled        = errs.Define(errs.ErrState, "booking_cancelled", "cannot pay for a cancelled booking")
	ErrBookingNotPending       = errs.Define(errs.ErrState, "booking_not_pending", "payment is only allowed for pending bookings")
	ErrBookingAlreadyPaid      = errs.Define(errs.ErrConflict, "already_paid", "booking is already paid")
	ErrPaymentAlreadyInitiated = errs.Define(errs.ErrConflict, "payment_already_initiated", "payment already initiated for this booking")
	ErrMissingBookingMetadata  = errs.Define(errs.ErrValidation, "missing_booking_metadata", "payment event carries no booking id")
)

// Processor failures keep their cause for logging but carry a fixed code.
func providerError(err error) error {
	return errs.Mark(errs.WithCode(err, "payment_provider_error"), errs.ErrExternalService)
}

func signatureError(err error) error {
	return errs.Mark(errs.WithCode(err, "invalid_webhook"), errs.ErrSignature)
}

const constraintActiveBuyerListing = "uq_bookings_active_buyer_listing"

// classify marks domain and rejection errors with their taxonomy category.
// Errors that already carry a category pass through.
func classify(err error) error {
	if err == nil || errs.Category(err) != nil {
		return err
	}

	var rej *booking.RejectionError
	if errs.As(err, &rej) {
		coded := errs.WithCode(err, string(rej.Reason))
		switch {
		case rej.IsAuthorization():
			return errs.Mark(coded, errs.ErrAuthorization)
		case rej.IsValidation():
			return errs.Mark(coded, errs.ErrValidation)
		default:
			return errs.Mark(coded, errs.ErrState)
		}
	}

	switch {
	case errs.Is(err, booking.ErrInvalidPeriod):
		return errs.Mark(errs.WithCode(err, "invalid_period"), errs.ErrValidation)
	case errs.Is(err, booking.ErrPeriodTooLong):
		return errs.Mark(errs.WithCode(err, "period_too_long"), errs.ErrValidation)
	case errs.Is(err, booking.ErrSelfBooking):
		return errs.Mark(errs.WithCode(err, "self_booking"), errs.ErrValidation)
	case errs.Is(err, listing.ErrInvalidPrice):
		return errs.Mark(errs.WithCode(err, "invalid_price"), errs.ErrValidation)
	case errs.Is(err, listing.ErrNoAssignedSeller):
		return errs.Mark(errs.WithCode(err, "no_assigned_seller"), errs.ErrState)
	case errs.Is(err, payment.ErrMissingExternalID), errs.Is(err, payment.ErrInvalidAmount):
		return errs.Mark(errs.WithCode(err, "invalid_payment"), errs.ErrValidation)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(errs.WithCode(err, "overlap"), errs.ErrConflict)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(errs.WithCode(err, "duplicate"), errs.ErrConflict)
	}
	return err
}
