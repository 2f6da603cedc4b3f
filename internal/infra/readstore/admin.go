package readstore

import (
	"context"

	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/pgconv"
	"rentwheels/internal/usecase/queries"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AdminReadStore struct {
	db shared.Querier
}

func NewAdminReadStore(db shared.Querier) *AdminReadStore {
	return &AdminReadStore{db: db}
}

const openAnomaliesSQL = `
	SELECT id, booking_id, kind, detail, detected_at, resolved_by, resolved_at
	FROM reconciliation_anomalies
	WHERE resolved_at IS NULL
	ORDER BY detected_at`

func (s *AdminReadStore) FindOpenAnomalies(ctx context.Context) ([]*queries.AnomalyView, error) {
	rows, err := s.db.Query(ctx, openAnomaliesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list open anomalies", err)
	}
	defer rows.Close()

	var views []*queries.AnomalyView
	for rows.Next() {
		var (
			v          queries.AnomalyView
			resolvedBy pgtype.UUID
			resolvedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.BookingID, &v.Kind, &v.Detail, &v.DetectedAt, &resolvedBy, &resolvedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan anomaly view", err)
		}
		v.ResolvedBy = pgconv.UUIDPtrFromPgtype(resolvedBy)
		v.ResolvedAt = pgconv.TimePtrFromPgtype(resolvedAt)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate anomalies", err)
	}
	return views, nil
}

const overridesByBookingSQL = `
	SELECT id, booking_id, actor_id, axis, from_status, to_status, reason, created_at
	FROM admin_overrides
	WHERE booking_id = $1
	ORDER BY created_at DESC`

func (s *AdminReadStore) FindOverridesByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*queries.OverrideView, error) {
	rows, err := s.db.Query(ctx, overridesByBookingSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list overrides", err)
	}
	defer rows.Close()

	var views []*queries.OverrideView
	for rows.Next() {
		var v queries.OverrideView
		if err := rows.Scan(&v.ID, &v.BookingID, &v.ActorID, &v.Axis, &v.FromStatus, &v.ToStatus, &v.Reason, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan override view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate overrides", err)
	}
	return views, nil
}
