package commands

import (
	"context"
	"log/slog"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/payment"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/pkg/jwt"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LifecycleCommands drives the rental-status axis. Every operation locks
// the booking row first, so concurrent transitions serialize per booking
// and never act on stale status.
type LifecycleCommands interface {
	// ConfirmCashOnPickup is the explicit administrative confirmation
	// for bookings that will pay cash at the counter. It is the only
	// normal path to confirmed that does not require settlement.
	ConfirmCashOnPickup(ctx context.Context, bookingID, actorID uuid.UUID) error
	// Complete closes out a confirmed booking after drop-off. Explicit
	// operation, never time-triggered.
	Complete(ctx context.Context, bookingID, actorID uuid.UUID) error
	// Cancel aborts a pending or confirmed booking. A settled payment is
	// refunded in the same transaction.
	Cancel(ctx context.Context, bookingID, requesterID uuid.UUID, role jwt.Role) error
}

type lifecycleCommandsImpl struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	reconciler  ReconcilerCommands
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewLifecycleCommands(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	reconciler ReconcilerCommands,
	db *pgxpool.Pool,
	clock clock.Clock,
) LifecycleCommands {
	return &lifecycleCommandsImpl{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		reconciler:  reconciler,
		db:          db,
		clock:       clock,
	}
}

func (c *lifecycleCommandsImpl) ConfirmCashOnPickup(ctx context.Context, bookingID, actorID uuid.UUID) error {
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
		if len(records) > 0 && records[0].Method() != payment.MethodCash {
			return none, ErrNotCashBooking
		}

		if err := b.ConfirmWithoutSettlement(); err != nil {
			return none, errs.Mark(err, ErrInvalidTransition)
		}
		b.Touch(c.clock.Now())
		if err := c.bookingRepo.UpdateStatuses(ctx, tx, b); err != nil {
			return none, errs.Mark(err, ErrDatabaseFailure)
		}

		slog.Info("cash booking confirmed without settlement",
			"booking_id", bookingID, "actor_id", actorID)
		return none, nil
	})
	return err
}

// Complete closes out a confirmed rental. The drop-off date is not
// checked: an early return is closed the moment the car is back.
func (c *lifecycleCommandsImpl) Complete(ctx context.Context, bookingID, actorID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.db, func(tx pgx.Tx) (struct{}, error) {
		var none struct{}

		b, err := c.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return none, err
		}

		if err := b.Complete(); err != nil {
			return none, errs.Mark(err, ErrInvalidTransition)
		}
		b.Touch(c.clock.Now())
		if err := c.bookingRepo.UpdateStatuses(ctx, tx, b); err != nil {
			return none, errs.Mark(err, ErrDatabaseFailure)
		}

		slog.Info("booking completed", "booking_id", bookingID, "actor_id", actorID)
		return none, nil
	})
	return err
}

func (c *lifecycleCommandsImpl) Cancel(ctx context.Context, bookingID, requesterID uuid.UUID, role jwt.Role) error {
	_, err := shared.RunInTx(ctx, c.db, func(tx pgx.Tx) (struct{}, error) {
		var none struct{}

		b, err := c.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return none, err
		}
		if role != jwt.RoleAdmin && b.RenterID() != requesterID {
			return none, ErrAccessDenied
		}

		if err := b.Cancel(); err != nil {
			return none, errs.Mark(err, ErrInvalidTransition)
		}

		// Refund rides in the same transaction: either the booking ends
		// cancelled with the payment refunded, or nothing changes.
		if b.CancelRequiresRefund() {
			if err := c.reconciler.OnBookingCancelled(ctx, tx, b); err != nil {
				return none, err
			}
		}

		b.Touch(c.clock.Now())
		if err := c.bookingRepo.UpdateStatuses(ctx, tx, b); err != nil {
			return none, errs.Mark(err, ErrDatabaseFailure)
		}

		slog.Info("booking cancelled",
			"booking_id", bookingID, "requester_id", requesterID,
			"payment_status", b.PaymentStatus().String())
		return none, nil
	})
	return err
}

func (c *lifecycleCommandsImpl) lockBooking(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := c.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return b, nil
}
