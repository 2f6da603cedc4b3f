package commands

import (
	"context"
	"log/slog"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/payment"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/pkg/jwt"
	"rentwheels/internal/usecase/queries"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettlementOutcome is the inbound event from the payment provider.
type SettlementOutcome string

const (
	OutcomePaid   SettlementOutcome = "paid"
	OutcomeFailed SettlementOutcome = "failed"
)

func (o SettlementOutcome) IsValid() bool {
	return o == OutcomePaid || o == OutcomeFailed
}

// PaymentCommands is the ledger's write surface. Attempts are recorded
// under the booking row lock so two concurrent submissions can never both
// become the sole paid record.
type PaymentCommands interface {
	RecordAttempt(ctx context.Context, bookingID uuid.UUID, method payment.Method, declaredAmountCents int64, senderRef string, requesterID uuid.UUID, role jwt.Role) (*queries.PaymentView, error)
	// ApplySettlement consumes a provider callback. Replays of an
	// already-applied outcome are no-ops.
	ApplySettlement(ctx context.Context, transactionID string, outcome SettlementOutcome) error
	// MarkCashReceived settles the latest pending cash attempt; only an
	// administrator at the counter calls this.
	MarkCashReceived(ctx context.Context, bookingID, actorID uuid.UUID) error
	// ExpireStale fails attempts stuck pending past the cutoff. Driven
	// by the maintenance job.
	ExpireStale(ctx context.Context, ttl time.Duration, limit int) (int, error)
}

type paymentCommandsImpl struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	reconciler  ReconcilerCommands
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewPaymentCommands(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	reconciler ReconcilerCommands,
	db *pgxpool.Pool,
	clock clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		reconciler:  reconciler,
		db:          db,
		clock:       clock,
	}
}

func (c *paymentCommandsImpl) RecordAttempt(
	ctx context.Context,
	bookingID uuid.UUID,
	method payment.Method,
	declaredAmountCents int64,
	senderRef string,
	requesterID uuid.UUID,
	role jwt.Role,
) (*queries.PaymentView, error) {
	if !method.IsValid() {
		return nil, ErrUnknownMethod
	}

	return shared.RunInTx(ctx, c.db, func(tx pgx.Tx) (*queries.PaymentView, error) {
		b, err := c.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return nil, err
		}
		if role != jwt.RoleAdmin && b.RenterID() != requesterID {
			return nil, ErrAccessDenied
		}
		if b.RentalStatus().IsTerminal() {
			return nil, ErrBookingNotPayable
		}

		// No partial payments: the declared amount must equal the total
		// frozen at booking creation.
		if declaredAmountCents != b.Breakdown().TotalCents {
			return nil, ErrAmountMismatch
		}

		paidCount, err := c.paymentRepo.CountPaid(ctx, tx, bookingID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseFailure)
		}
		if paidCount > 0 || b.PaymentStatus() == booking.PaymentPaid {
			return nil, ErrAlreadySettled
		}

		amount, err := booking.NewMoney(declaredAmountCents)
		if err != nil {
			return nil, ErrAmountMismatch
		}

		rec, err := payment.NewRecord(bookingID, method, amount, senderRef, c.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, ErrUnknownMethod)
		}
		if err := c.paymentRepo.Create(ctx, tx, rec); err != nil {
			return nil, errs.Mark(err, ErrDatabaseFailure)
		}

		// A retry after a failure reopens the booking's payment axis.
		if b.PaymentStatus() == booking.PaymentFailed {
			if err := b.ResetPaymentPending(); err != nil {
				return nil, errs.Mark(err, ErrInvalidTransition)
			}
			b.Touch(c.clock.Now())
			if err := c.bookingRepo.UpdateStatuses(ctx, tx, b); err != nil {
				return nil, errs.Mark(err, ErrDatabaseFailure)
			}
		}

		slog.Info("payment attempt recorded",
			"booking_id", bookingID, "method", method.String(),
			"transaction_id", rec.TransactionID())
		return recordToView(rec), nil
	})
}

func (c *paymentCommandsImpl) ApplySettlement(ctx context.Context, transactionID string, outcome SettlementOutcome) error {
	if !outcome.IsValid() {
		return ErrInvalidTransition
	}

	// Resolve the booking outside the lock, then re-read both rows under
	// it so the decision never runs against stale status.
	probe, err := c.paymentRepo.FindByTransactionID(ctx, c.db, transactionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPaymentNotFound
		}
		return errs.Mark(err, ErrDatabaseFailure)
	}

	_, err = shared.RunInTx(ctx, c.db, func(tx pgx.Tx) (struct{}, error) {
		var none struct{}

		b, err := c.lockBooking(ctx, tx, probe.BookingID())
		if err != nil {
			return none, err
		}
		rec, err := c.paymentRepo.FindByTransactionID(ctx, tx, transactionID)
		if err != nil {
			return none, errs.Mark(err, ErrDatabaseFailure)
		}

		// Provider callbacks retry; an already-applied outcome is fine.
		if rec.Status().String() == string(outcome) {
			return none, nil
		}

		return none, c.settle(ctx, tx, b, rec, outcome)
	})
	return err
}

func (c *paymentCommandsImpl) MarkCashReceived(ctx context.Context, bookingID, actorID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.db, func(tx pgx.Tx) (struct{}, error) {
		var none struct{}

		b, err := c.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return none, err
		}

		records, err := c.paymentRepo.FindByBookingID(ctx, tx, bookingID)
		if err != nil {
			return none, errs.Mark(err, ErrDatabaseFailure)
		}

		var rec *payment.Record
		for _, candidate := range records {
			if candidate.Method() == payment.MethodCash && candidate.Status() == payment.StatusPending {
				rec = candidate
				break
			}
		}
		if rec == nil {
			return none, ErrNotCashBooking
		}

		slog.Info("cash payment marked received",
			"booking_id", bookingID, "actor_id", actorID,
			"transaction_id", rec.TransactionID())
		return none, c.settle(ctx, tx, b, rec, OutcomePaid)
	})
	return err
}

func (c *paymentCommandsImpl) ExpireStale(ctx context.Context, ttl time.Duration, limit int) (int, error) {
	cutoff := c.clock.Now().Add(-ttl)

	stale, err := c.paymentRepo.FindStalePending(ctx, c.db, cutoff, limit)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseFailure)
	}

	expired := 0
	for _, probe := range stale {
		_, err := shared.RunInTx(ctx, c.db, func(tx pgx.Tx) (struct{}, error) {
			var none struct{}

			b, err := c.lockBooking(ctx, tx, probe.BookingID())
			if err != nil {
				return none, err
			}
			rec, err := c.paymentRepo.FindByTransactionID(ctx, tx, probe.TransactionID())
			if err != nil {
				return none, errs.Mark(err, ErrDatabaseFailure)
			}
			if rec.Status() != payment.StatusPending {
				return none, nil
			}
			return none, c.settle(ctx, tx, b, rec, OutcomeFailed)
		})
		if err != nil {
			slog.Error("failed to expire stale payment",
				"transaction_id", probe.TransactionID(), "error", err)
			continue
		}
		expired++
	}
	return expired, nil
}

// settle applies the outcome to the record, syncs the booking's payment
// axis and hands the result to the reconciler, all inside the caller's
// transaction.
func (c *paymentCommandsImpl) settle(ctx context.Context, tx pgx.Tx, b *booking.Booking, rec *payment.Record, outcome SettlementOutcome) error {
	now := c.clock.Now()

	switch outcome {
	case OutcomePaid:
		if err := rec.MarkPaid(now); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
	case OutcomeFailed:
		if err := rec.MarkFailed(now); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
	}
	if err := c.paymentRepo.UpdateStatus(ctx, tx, rec); err != nil {
		return errs.Mark(err, ErrDatabaseFailure)
	}

	// The record always settles. When the booking's axis cannot take the
	// outcome (another record settled it first), the axis is left alone
	// and the reconciler files whatever anomaly the pair produces.
	var transitionErr error
	switch outcome {
	case OutcomePaid:
		transitionErr = b.MarkPaid()
	case OutcomeFailed:
		transitionErr = b.MarkPaymentFailed()
	}
	if transitionErr != nil {
		slog.Warn("settlement outcome conflicts with booking payment status",
			"booking_id", b.ID(), "transaction_id", rec.TransactionID(),
			"outcome", string(outcome), "payment_status", b.PaymentStatus().String())
	} else {
		b.Touch(now)
		if err := c.bookingRepo.UpdateStatuses(ctx, tx, b); err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
	}

	slog.Info("payment settled",
		"booking_id", b.ID(), "transaction_id", rec.TransactionID(),
		"outcome", string(outcome))

	return c.reconciler.OnPaymentSettled(ctx, tx, b)
}

func (c *paymentCommandsImpl) lockBooking(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := c.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return b, nil
}

func recordToView(rec *payment.Record) *queries.PaymentView {
	var senderRef *string
	if rec.SenderRef() != "" {
		s := rec.SenderRef()
		senderRef = &s
	}
	return &queries.PaymentView{
		ID:            rec.ID(),
		BookingID:     rec.BookingID(),
		Method:        rec.Method().String(),
		AmountCents:   rec.Amount().Cents(),
		SenderRef:     senderRef,
		TransactionID: rec.TransactionID(),
		Status:        rec.Status().String(),
		CreatedAt:     rec.CreatedAt(),
		SettledAt:     rec.SettledAt(),
	}
}
