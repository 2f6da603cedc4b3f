package commands

import (
	"context"
	"log/slog"
	"strings"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/repository"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminCommands covers the back-office escape hatches. Overrides bypass
// the transition tables but every one is written to the audit trail and
// re-checked by the reconciler afterwards.
type AdminCommands interface {
	ForceRentalStatus(ctx context.Context, bookingID, actorID uuid.UUID, target booking.RentalStatus, reason string) error
	ForcePaymentStatus(ctx context.Context, bookingID, actorID uuid.UUID, target booking.PaymentStatus, reason string) error
	ResolveAnomaly(ctx context.Context, anomalyID, actorID uuid.UUID) error
}

type adminCommandsImpl struct {
	bookingRepo  BookingRepository
	anomalyRepo  AnomalyRepository
	overrideRepo OverrideRepository
	reconciler   ReconcilerCommands
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewAdminCommands(
	bookingRepo BookingRepository,
	anomalyRepo AnomalyRepository,
	overrideRepo OverrideRepository,
	reconciler ReconcilerCommands,
	db *pgxpool.Pool,
	clock clock.Clock,
) AdminCommands {
	return &adminCommandsImpl{
		bookingRepo:  bookingRepo,
		anomalyRepo:  anomalyRepo,
		overrideRepo: overrideRepo,
		reconciler:   reconciler,
		db:           db,
		clock:        clock,
	}
}

func (c *adminCommandsImpl) ForceRentalStatus(ctx context.Context, bookingID, actorID uuid.UUID, target booking.RentalStatus, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}

	return c.override(ctx, bookingID, func(b *booking.Booking) (repository.OverrideEntry, error) {
		from := b.RentalStatus().String()
		if err := b.ForceRentalStatus(target); err != nil {
			return repository.OverrideEntry{}, errs.Mark(err, ErrInvalidTransition)
		}
		return repository.OverrideEntry{
			ID:         uuid.New(),
			BookingID:  bookingID,
			ActorID:    actorID,
			Axis:       repository.OverrideAxisRental,
			FromStatus: from,
			ToStatus:   target.String(),
			Reason:     reason,
			CreatedAt:  c.clock.Now(),
		}, nil
	})
}

func (c *adminCommandsImpl) ForcePaymentStatus(ctx context.Context, bookingID, actorID uuid.UUID, target booking.PaymentStatus, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}

	return c.override(ctx, bookingID, func(b *booking.Booking) (repository.OverrideEntry, error) {
		from := b.PaymentStatus().String()
		if err := b.ForcePaymentStatus(target); err != nil {
			return repository.OverrideEntry{}, errs.Mark(err, ErrInvalidTransition)
		}
		return repository.OverrideEntry{
			ID:         uuid.New(),
			BookingID:  bookingID,
			ActorID:    actorID,
			Axis:       repository.OverrideAxisPayment,
			FromStatus: from,
			ToStatus:   target.String(),
			Reason:     reason,
			CreatedAt:  c.clock.Now(),
		}, nil
	})
}

// override locks the booking, applies the forced change, records the
// audit entry and runs anomaly detection in one transaction.
func (c *adminCommandsImpl) override(ctx context.Context, bookingID uuid.UUID, apply func(*booking.Booking) (repository.OverrideEntry, error)) error {
	_, err := shared.RunInTx(ctx, c.db, func(tx pgx.Tx) (struct{}, error) {
		var none struct{}

		b, err := c.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return none, ErrBookingNotFound
			}
			return none, errs.Mark(err, ErrDatabaseFailure)
		}

		entry, err := apply(b)
		if err != nil {
			return none, err
		}

		b.Touch(c.clock.Now())
		if err := c.bookingRepo.UpdateStatuses(ctx, tx, b); err != nil {
			return none, errs.Mark(err, ErrDatabaseFailure)
		}
		if err := c.overrideRepo.Create(ctx, tx, entry); err != nil {
			return none, errs.Mark(err, ErrDatabaseFailure)
		}

		slog.Warn("status override applied",
			"booking_id", bookingID, "actor_id", entry.ActorID,
			"axis", entry.Axis, "from", entry.FromStatus, "to", entry.ToStatus,
			"reason", entry.Reason)
		return none, nil
	})
	if err != nil {
		return err
	}

	// Overrides can land the booking in a pair the reconciler must see.
	if _, err := c.reconciler.Audit(ctx, bookingID); err != nil {
		slog.Error("post-override audit failed", "booking_id", bookingID, "error", err)
	}
	return nil
}

func (c *adminCommandsImpl) ResolveAnomaly(ctx context.Context, anomalyID, actorID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.db, func(tx pgx.Tx) (struct{}, error) {
		var none struct{}

		if err := c.anomalyRepo.Resolve(ctx, tx, anomalyID, actorID, c.clock.Now()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return none, ErrAnomalyNotFound
			}
			return none, errs.Mark(err, ErrDatabaseFailure)
		}

		slog.Info("anomaly resolved", "anomaly_id", anomalyID, "actor_id", actorID)
		return none, nil
	})
	return err
}
