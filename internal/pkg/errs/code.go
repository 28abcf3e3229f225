package errs

// codedError attaches a stable, machine-readable code to an error.
type codedError struct {
	cause error
	code  string
}

func (e *codedError) Error() string { return e.cause.Error() }
func (e *codedError) Unwrap() error { return e.cause }

func WithCode(err error, code string) error {
	if err == nil {
		return nil
	}
	return &codedError{cause: err, code: code}
}

// CodeOf returns the outermost code in the chain, or "" when none is attached.
func CodeOf(err error) string {
	var ce *codedError
	if As(err, &ce) {
		return ce.code
	}
	return ""
}

// Define builds a sentinel that carries both a category marker and a code.
func Define(category error, code, msg string) error {
	return Mark(WithCode(New(msg), code), category)
}

// Category returns which taxonomy marker err carries, or nil.
func Category(err error) error {
	for _, c := range []error{
		ErrValidation, ErrConflict, ErrAuthorization, ErrState,
		ErrNotFound, ErrExternalService, ErrSignature,
	} {
		if Is(err, c) {
			return c
		}
	}
	return nil
}
