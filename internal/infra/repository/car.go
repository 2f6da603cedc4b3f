package repository

import (
	"context"
	"errors"

	"rentwheels/internal/infra"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CarCache is the optional read-through layer in front of the catalog.
type CarCache interface {
	Get(ctx context.Context, carID uuid.UUID) (*shared.CarSnapshot, bool)
	Set(ctx context.Context, snap *shared.CarSnapshot)
}

// CarRepository reads the catalog. The catalog is owned elsewhere; this
// core never writes it.
type CarRepository struct {
	db    shared.Querier
	cache CarCache
}

func NewCarRepository(db shared.Querier, cache CarCache) *CarRepository {
	return &CarRepository{db: db, cache: cache}
}

const selectCarSQL = `
	SELECT id, model, daily_rate_cents, seats, fuel_type, transmission, available
	FROM cars
	WHERE id = $1`

func (r *CarRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.CarSnapshot, error) {
	if r.cache != nil {
		if snap, ok := r.cache.Get(ctx, id); ok {
			return snap, nil
		}
	}

	var snap shared.CarSnapshot
	err := r.db.QueryRow(ctx, selectCarSQL, id).Scan(
		&snap.ID, &snap.Model, &snap.DailyRateCents, &snap.Seats,
		&snap.FuelType, &snap.Transmission, &snap.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "car not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load car", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, &snap)
	}
	return &snap, nil
}
