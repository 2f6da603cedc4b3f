package repository

import (
	"context"
	"time"

	"rentwheels/internal/infra"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
)

type AnomalyRepository struct{}

func NewAnomalyRepository() *AnomalyRepository {
	return &AnomalyRepository{}
}

const insertAnomalySQL = `
	INSERT INTO reconciliation_anomalies (id, booking_id, kind, detail, detected_at)
	VALUES ($1, $2, $3, $4, $5)`

func (r *AnomalyRepository) Create(ctx context.Context, q shared.Querier, a shared.Anomaly) error {
	_, err := q.Exec(ctx, insertAnomalySQL, a.ID, a.BookingID, string(a.Kind), a.Detail, a.DetectedAt)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert anomaly", err)
	}
	return nil
}

const resolveAnomalySQL = `
	UPDATE reconciliation_anomalies
	SET resolved_by = $2, resolved_at = $3
	WHERE id = $1 AND resolved_at IS NULL`

func (r *AnomalyRepository) Resolve(ctx context.Context, q shared.Querier, id, actorID uuid.UUID, now time.Time) error {
	tag, err := q.Exec(ctx, resolveAnomalySQL, id, actorID, now)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to resolve anomaly", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "open anomaly not found", nil)
	}
	return nil
}
