package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrOpenProformaExists indicates the membership already has an open proforma. It
// wraps ErrDuplicate.
var ErrOpenProformaExists = fmt.Errorf("%w: membership already has an open proforma", ErrDuplicate)

// ErrReferenceCodeTaken indicates a generated reference code is already used in the
// tenant. Callers regenerate the code and post again.
var ErrReferenceCodeTaken = errors.New("reference code already in use")

// ErrConflict indicates that a ledger entry changed state between read and write,
// e.g. two requests trying to settle the same open proforma.
var ErrConflict = errors.New("concurrent modification")

// ErrInvariant indicates the ledger would end up in a state it must never be in.
var ErrInvariant = errors.New("ledger invariant violated")

// AppError carries an HTTP-ish status code and a message next to the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the cause so errors.Is keeps working through the wrapper.
func (e *AppError) Unwrap() error {
	return e.Err
}
