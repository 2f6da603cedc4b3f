package commands

import (
	"context"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/payment"
	"rentwheels/internal/infra/repository"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Write-side ports. Implementations live in internal/infra/repository.

type BookingRepository interface {
	Create(ctx context.Context, q shared.Querier, b *booking.Booking) error
	FindByID(ctx context.Context, q shared.Querier, id uuid.UUID) (*booking.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*booking.Booking, error)
	UpdateStatuses(ctx context.Context, q shared.Querier, b *booking.Booking) error
}

type PaymentRepository interface {
	Create(ctx context.Context, q shared.Querier, rec *payment.Record) error
	UpdateStatus(ctx context.Context, q shared.Querier, rec *payment.Record) error
	FindByTransactionID(ctx context.Context, q shared.Querier, transactionID string) (*payment.Record, error)
	FindByBookingID(ctx context.Context, q shared.Querier, bookingID uuid.UUID) ([]*payment.Record, error)
	CountPaid(ctx context.Context, q shared.Querier, bookingID uuid.UUID) (int, error)
	FindStalePending(ctx context.Context, q shared.Querier, cutoff time.Time, limit int) ([]*payment.Record, error)
}

// CarCatalog is the read-only contract point to the catalog collaborator.
type CarCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.CarSnapshot, error)
}

type AnomalyRepository interface {
	Create(ctx context.Context, q shared.Querier, a shared.Anomaly) error
	Resolve(ctx context.Context, q shared.Querier, id, actorID uuid.UUID, now time.Time) error
}

type OverrideRepository interface {
	Create(ctx context.Context, q shared.Querier, e repository.OverrideEntry) error
}
