package commands

import (
	"fmt"

	"rentwheels/internal/domain/reservation"
	"rentwheels/internal/pkg/errs"
)

var (
	ErrCarNotFound       = errs.New("car not found")
	ErrCarUnavailable    = errs.New("car is not available")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrPaymentNotFound   = errs.New("payment record not found")
	ErrAnomalyNotFound   = errs.New("open anomaly not found")
	ErrAccessDenied      = errs.New("access denied")
	ErrInvalidRange      = errs.New("invalid rental period")
	ErrAmountMismatch    = errs.New("declared amount does not match booking total")
	ErrUnknownMethod     = errs.New("unsupported payment method")
	ErrInvalidTransition = errs.New("invalid status transition")
	ErrAlreadySettled    = errs.New("booking already has a settled payment")
	ErrBookingNotPayable = errs.New("booking can no longer accept payments")
	ErrNotCashBooking    = errs.New("latest payment attempt is not cash")
	ErrReasonRequired    = errs.New("override reason is required")
	ErrDatabaseFailure   = errs.New("database operation failed")
)

// ValidationError carries the per-field failures of a wizard step back to
// the handler for display. Validation never mutates state.
type ValidationError struct {
	Step   reservation.Step
	Fields reservation.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed at step %s (%d fields)", e.Step, len(e.Fields))
}

func NewValidationError(step reservation.Step, fields reservation.FieldErrors) *ValidationError {
	return &ValidationError{Step: step, Fields: fields}
}
