package queries

import (
	"context"

	"github.com/google/uuid"
)

type AdminReadStore interface {
	FindOpenAnomalies(ctx context.Context) ([]*AnomalyView, error)
	FindOverridesByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*OverrideView, error)
}

type AdminQueries interface {
	OpenAnomalies(ctx context.Context) ([]*AnomalyView, error)
	OverridesForBooking(ctx context.Context, bookingID uuid.UUID) ([]*OverrideView, error)
}

type adminQueriesImpl struct {
	store AdminReadStore
}

func NewAdminQueries(store AdminReadStore) AdminQueries {
	return &adminQueriesImpl{store: store}
}

func (q *adminQueriesImpl) OpenAnomalies(ctx context.Context) ([]*AnomalyView, error) {
	return q.store.FindOpenAnomalies(ctx)
}

func (q *adminQueriesImpl) OverridesForBooking(ctx context.Context, bookingID uuid.UUID) ([]*OverrideView, error) {
	return q.store.FindOverridesByBookingID(ctx, bookingID)
}
