package repository

import (
	"context"
	"time"

	"rentwheels/internal/infra"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	OverrideAxisRental  = "rental"
	OverrideAxisPayment = "payment"
)

// OverrideEntry is one audit row for an administrative status override.
// Overrides bypass the transition tables, so the trail is mandatory.
type OverrideEntry struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	ActorID    uuid.UUID
	Axis       string
	FromStatus string
	ToStatus   string
	Reason     string
	CreatedAt  time.Time
}

type OverrideRepository struct{}

func NewOverrideRepository() *OverrideRepository {
	return &OverrideRepository{}
}

const insertOverrideSQL = `
	INSERT INTO admin_overrides (id, booking_id, actor_id, axis, from_status, to_status, reason, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *OverrideRepository) Create(ctx context.Context, q shared.Querier, e OverrideEntry) error {
	_, err := q.Exec(ctx, insertOverrideSQL,
		e.ID, e.BookingID, e.ActorID, e.Axis, e.FromStatus, e.ToStatus, e.Reason, e.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert override audit entry", err)
	}
	return nil
}

const listOverridesSQL = `
	SELECT id, booking_id, actor_id, axis, from_status, to_status, reason, created_at
	FROM admin_overrides
	WHERE booking_id = $1
	ORDER BY created_at DESC`

func (r *OverrideRepository) ListByBookingID(ctx context.Context, q shared.Querier, bookingID uuid.UUID) ([]OverrideEntry, error) {
	rows, err := q.Query(ctx, listOverridesSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list override audit entries", err)
	}
	defer rows.Close()

	var entries []OverrideEntry
	for rows.Next() {
		var e OverrideEntry
		if err := rows.Scan(&e.ID, &e.BookingID, &e.ActorID, &e.Axis, &e.FromStatus, &e.ToStatus, &e.Reason, &e.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan override audit entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate override audit entries", err)
	}
	return entries, nil
}
