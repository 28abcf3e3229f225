package errs

import "errors"

// Category markers. Use cases Mark concrete errors with exactly one of these
// and the HTTP layer maps the category to a status code.
var (
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrAuthorization   = errors.New("authorization error")
	ErrState           = errors.New("state error")
	ErrNotFound        = errors.New("not found")
	ErrExternalService = errors.New("external service error")
	ErrSignature       = errors.New("signature error")
)
