package readstore

import (
	"context"
	"errors"

	"rentwheels/internal/infra"
	"rentwheels/internal/usecase/queries"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db shared.Querier
}

func NewBookingReadStore(db shared.Querier) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingViewSQL = `
	SELECT b.id, b.car_id, c.model, b.renter_id,
	       b.renter_name, b.renter_email, b.renter_phone,
	       b.pickup_at, b.dropoff_at, b.pickup_location, b.dropoff_location,
	       b.insurance_tier, b.service_ids, b.special_requests,
	       b.days, b.subtotal_cents, b.insurance_cents, b.services_cents, b.tax_cents, b.total_cents,
	       b.rental_status, b.payment_status, b.created_at, b.updated_at
	FROM bookings b
	JOIN cars c ON c.id = b.car_id
	WHERE b.id = $1`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := s.db.QueryRow(ctx, bookingViewSQL, id).Scan(
		&v.ID, &v.CarID, &v.CarModel, &v.RenterID,
		&v.RenterName, &v.RenterEmail, &v.RenterPhone,
		&v.PickupAt, &v.DropoffAt, &v.PickupLocation, &v.DropoffLocation,
		&v.InsuranceTier, &v.ServiceIDs, &v.SpecialRequests,
		&v.Breakdown.Days, &v.Breakdown.SubtotalCents, &v.Breakdown.InsuranceCents,
		&v.Breakdown.ServicesCents, &v.Breakdown.TaxCents, &v.Breakdown.TotalCents,
		&v.RentalStatus, &v.PaymentStatus, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking by ID", err)
	}
	return &v, nil
}

const bookingListSQL = `
	SELECT b.id, c.model, b.pickup_at, b.dropoff_at, b.total_cents,
	       b.rental_status, b.payment_status, b.created_at
	FROM bookings b
	JOIN cars c ON c.id = b.car_id`

func (s *BookingReadStore) FindByRenterID(ctx context.Context, renterID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, bookingListSQL+" WHERE b.renter_id = $1 ORDER BY b.created_at DESC", renterID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings by renter", err)
	}
	return scanBookingList(rows)
}

// FindAll serves the back-office list. Empty filter strings mean "any".
func (s *BookingReadStore) FindAll(ctx context.Context, rentalStatus, paymentStatus string) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx,
		bookingListSQL+`
	WHERE ($1 = '' OR b.rental_status = $1)
	  AND ($2 = '' OR b.payment_status = $2)
	ORDER BY b.created_at DESC`,
		rentalStatus, paymentStatus)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	return scanBookingList(rows)
}

func scanBookingList(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.CarModel, &item.PickupAt, &item.DropoffAt, &item.TotalCents,
			&item.RentalStatus, &item.PaymentStatus, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking list item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate booking list", err)
	}
	return items, nil
}
