package commands

import (
	"context"
	"fmt"
	"log/slog"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/payment"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReconcilerCommands is the policy layer keeping the two status axes
// consistent. It is the only component allowed to read booking and
// payment state together; the lifecycle and the ledger never reference
// each other directly.
type ReconcilerCommands interface {
	// OnPaymentSettled runs inside the settlement transaction, after the
	// ledger and the booking's payment axis are updated. It advances
	// pending bookings whose payment settled and files anomalies for
	// state pairs that must never occur.
	OnPaymentSettled(ctx context.Context, tx pgx.Tx, b *booking.Booking) error
	// OnBookingCancelled runs inside the cancellation transaction. If a
	// settled payment exists it drives the refund, so a cancelled
	// booking never stays paired with a paid payment.
	OnBookingCancelled(ctx context.Context, tx pgx.Tx, b *booking.Booking) error
	// Audit re-checks one booking on demand and files anomalies for
	// whatever it finds. Used by the back office after overrides.
	Audit(ctx context.Context, bookingID uuid.UUID) ([]shared.Anomaly, error)
}

type reconcilerImpl struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	anomalyRepo AnomalyRepository
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewReconcilerCommands(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	anomalyRepo AnomalyRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) ReconcilerCommands {
	return &reconcilerImpl{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		anomalyRepo: anomalyRepo,
		db:          db,
		clock:       clock,
	}
}

func (r *reconcilerImpl) OnPaymentSettled(ctx context.Context, tx pgx.Tx, b *booking.Booking) error {
	if b.PaymentStatus() == booking.PaymentPaid && b.RentalStatus() == booking.RentalPending {
		if err := b.Confirm(); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		b.Touch(r.clock.Now())
		if err := r.bookingRepo.UpdateStatuses(ctx, tx, b); err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
		slog.Info("booking confirmed after settlement", "booking_id", b.ID())
	}

	anomalies, err := r.detect(ctx, tx, b)
	if err != nil {
		return err
	}
	return r.file(ctx, tx, anomalies)
}

func (r *reconcilerImpl) OnBookingCancelled(ctx context.Context, tx pgx.Tx, b *booking.Booking) error {
	records, err := r.paymentRepo.FindByBookingID(ctx, tx, b.ID())
	if err != nil {
		return errs.Mark(err, ErrDatabaseFailure)
	}

	now := r.clock.Now()
	for _, rec := range records {
		if rec.Status() != payment.StatusPaid {
			continue
		}
		if err := rec.Refund(now); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := r.paymentRepo.UpdateStatus(ctx, tx, rec); err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
		slog.Info("payment refunded on cancellation",
			"booking_id", b.ID(), "transaction_id", rec.TransactionID())
	}

	if b.PaymentStatus() == booking.PaymentPaid {
		if err := b.MarkRefunded(); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
	}
	return nil
}

func (r *reconcilerImpl) Audit(ctx context.Context, bookingID uuid.UUID) ([]shared.Anomaly, error) {
	return shared.RunInTx(ctx, r.db, func(tx pgx.Tx) ([]shared.Anomaly, error) {
		b, err := r.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseFailure)
		}

		anomalies, err := r.detect(ctx, tx, b)
		if err != nil {
			return nil, err
		}
		if err := r.file(ctx, tx, anomalies); err != nil {
			return nil, err
		}
		return anomalies, nil
	})
}

// detect evaluates the state pairs that must be surfaced, never
// auto-corrected: repair here could mask fraud or a double charge.
func (r *reconcilerImpl) detect(ctx context.Context, q shared.Querier, b *booking.Booking) ([]shared.Anomaly, error) {
	var anomalies []shared.Anomaly
	now := r.clock.Now()

	if b.RentalStatus() == booking.RentalConfirmed && b.PaymentStatus() == booking.PaymentFailed {
		anomalies = append(anomalies, shared.Anomaly{
			ID:         uuid.New(),
			BookingID:  b.ID(),
			Kind:       shared.AnomalyConfirmedWithFailedPayment,
			Detail:     "booking is confirmed while its payment is failed",
			DetectedAt: now,
		})
	}

	if b.RentalStatus() == booking.RentalCancelled && b.PaymentStatus() == booking.PaymentPaid {
		anomalies = append(anomalies, shared.Anomaly{
			ID:         uuid.New(),
			BookingID:  b.ID(),
			Kind:       shared.AnomalyCancelledStillPaid,
			Detail:     "booking is cancelled while its payment is still paid",
			DetectedAt: now,
		})
	}

	paidCount, err := r.paymentRepo.CountPaid(ctx, q, b.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	if paidCount > 1 {
		anomalies = append(anomalies, shared.Anomaly{
			ID:         uuid.New(),
			BookingID:  b.ID(),
			Kind:       shared.AnomalyDoubleSettlement,
			Detail:     fmt.Sprintf("%d paid records for one booking", paidCount),
			DetectedAt: now,
		})
	}

	return anomalies, nil
}

func (r *reconcilerImpl) file(ctx context.Context, q shared.Querier, anomalies []shared.Anomaly) error {
	for _, a := range anomalies {
		if err := r.anomalyRepo.Create(ctx, q, a); err != nil {
			return errs.Mark(err, ErrDatabaseFailure)
		}
		slog.Warn("reconciliation anomaly filed",
			"booking_id", a.BookingID, "kind", string(a.Kind), "detail", a.Detail)
	}
	return nil
}
