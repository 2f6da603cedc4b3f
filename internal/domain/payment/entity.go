package payment

import (
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownMethod     = errs.New("unsupported payment method")
	ErrMissingSenderRef  = errs.New("sender reference required for this method")
	ErrInvalidTransition = errs.New("invalid payment status transition")
)

// Record is one payment attempt against a booking. A booking accumulates
// records across retries; the transaction ID is generated fresh for every
// attempt and never reused.
type Record struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	method        Method
	amount        booking.Money
	senderRef     string
	transactionID string
	status        Status
	createdAt     time.Time
	settledAt     *time.Time
}

func NewRecord(bookingID uuid.UUID, method Method, amount booking.Money, senderRef string, now time.Time) (*Record, error) {
	if !method.IsValid() {
		return nil, ErrUnknownMethod
	}
	if method.RequiresSenderRef() && senderRef == "" {
		return nil, ErrMissingSenderRef
	}

	return &Record{
		id:            uuid.New(),
		bookingID:     bookingID,
		method:        method,
		amount:        amount,
		senderRef:     senderRef,
		transactionID: "TXN-" + uuid.NewString(),
		status:        StatusPending,
		createdAt:     now,
	}, nil
}

func ReconstructRecord(
	id, bookingID uuid.UUID,
	method Method,
	amount booking.Money,
	senderRef, transactionID string,
	status Status,
	createdAt time.Time,
	settledAt *time.Time,
) *Record {
	return &Record{
		id:            id,
		bookingID:     bookingID,
		method:        method,
		amount:        amount,
		senderRef:     senderRef,
		transactionID: transactionID,
		status:        status,
		createdAt:     createdAt,
		settledAt:     settledAt,
	}
}

func (r *Record) MarkPaid(now time.Time) error {
	return r.transition(StatusPaid, &now)
}

func (r *Record) MarkFailed(now time.Time) error {
	return r.transition(StatusFailed, &now)
}

// Refund is only reachable through the booking cancellation path; nothing
// else may move a paid record.
func (r *Record) Refund(now time.Time) error {
	return r.transition(StatusRefunded, &now)
}

func (r *Record) transition(target Status, settledAt *time.Time) error {
	if !r.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	r.status = target
	r.settledAt = settledAt
	return nil
}

func (r *Record) IsSettled() bool {
	return r.status == StatusPaid || r.status == StatusFailed
}

func (r *Record) ID() uuid.UUID         { return r.id }
func (r *Record) BookingID() uuid.UUID  { return r.bookingID }
func (r *Record) Method() Method        { return r.method }
func (r *Record) Amount() booking.Money { return r.amount }
func (r *Record) SenderRef() string     { return r.senderRef }
func (r *Record) TransactionID() string { return r.transactionID }
func (r *Record) Status() Status        { return r.status }
func (r *Record) CreatedAt() time.Time  { return r.createdAt }
func (r *Record) SettledAt() *time.Time { return r.settledAt }
