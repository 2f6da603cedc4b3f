package repository

import (
	"context"
	"errors"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/pgconv"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const insertBookingSQL = `
	INSERT INTO bookings (
		id, car_id, renter_id,
		renter_name, renter_email, renter_phone, renter_license,
		pickup_at, dropoff_at, pickup_location, dropoff_location,
		insurance_tier, service_ids, special_requests,
		days, subtotal_cents, insurance_cents, services_cents, tax_cents, total_cents,
		rental_status, payment_status, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
	)`

func (r *BookingRepository) Create(ctx context.Context, q shared.Querier, b *booking.Booking) error {
	bd := b.Breakdown()
	_, err := q.Exec(ctx, insertBookingSQL,
		b.ID(), b.CarID(), b.RenterID(),
		b.Renter().FullName, b.Renter().Email, b.Renter().Phone, b.Renter().LicenseNumber,
		b.Period().Pickup(), b.Period().Dropoff(), b.PickupLocation(), b.DropoffLocation(),
		b.InsuranceTier().String(), b.ServiceIDs(), pgconv.TextPtrToPgtype(nilIfEmpty(b.SpecialRequests())),
		bd.Days, bd.SubtotalCents, bd.InsuranceCents, bd.ServicesCents, bd.TaxCents, bd.TotalCents,
		b.RentalStatus().String(), b.PaymentStatus().String(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, "booking references missing row", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert booking", err)
	}
	return nil
}

const selectBookingSQL = `
	SELECT id, car_id, renter_id,
	       renter_name, renter_email, renter_phone, renter_license,
	       pickup_at, dropoff_at, pickup_location, dropoff_location,
	       insurance_tier, service_ids, COALESCE(special_requests, ''),
	       days, subtotal_cents, insurance_cents, services_cents, tax_cents, total_cents,
	       rental_status, payment_status, created_at, updated_at
	FROM bookings
	WHERE id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, q shared.Querier, id uuid.UUID) (*booking.Booking, error) {
	return r.scanBooking(q.QueryRow(ctx, selectBookingSQL, id))
}

// FindByIDForUpdate locks the booking row for the rest of the transaction.
// The booking row is the unit of mutual exclusion: any read-then-transition
// sequence must hold this lock so concurrent attempts serialize.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*booking.Booking, error) {
	return r.scanBooking(tx.QueryRow(ctx, selectBookingSQL+" FOR UPDATE", id))
}

const updateBookingStatusSQL = `
	UPDATE bookings
	SET rental_status = $2, payment_status = $3, updated_at = $4
	WHERE id = $1`

func (r *BookingRepository) UpdateStatuses(ctx context.Context, q shared.Querier, b *booking.Booking) error {
	tag, err := q.Exec(ctx, updateBookingStatusSQL,
		b.ID(), b.RentalStatus().String(), b.PaymentStatus().String(), b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update booking statuses", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, carID, renterID    uuid.UUID
		renter                 booking.Renter
		pickupAt, dropoffAt    time.Time
		pickupLoc, dropoffLoc  string
		tier                   string
		serviceIDs             []string
		specialRequests        string
		bd                     booking.PriceBreakdown
		rentalStatus, payState string
		createdAt, updatedAt   time.Time
	)

	err := row.Scan(
		&id, &carID, &renterID,
		&renter.FullName, &renter.Email, &renter.Phone, &renter.LicenseNumber,
		&pickupAt, &dropoffAt, &pickupLoc, &dropoffLoc,
		&tier, &serviceIDs, &specialRequests,
		&bd.Days, &bd.SubtotalCents, &bd.InsuranceCents, &bd.ServicesCents, &bd.TaxCents, &bd.TotalCents,
		&rentalStatus, &payState, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking", err)
	}

	period, err := booking.NewRentalPeriod(pickupAt, dropoffAt)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored booking has invalid period", err)
	}

	return booking.Reconstruct(
		id, carID, renterID,
		renter, period, pickupLoc, dropoffLoc,
		booking.InsuranceTier(tier), serviceIDs, specialRequests,
		bd,
		booking.RentalStatus(rentalStatus), booking.PaymentStatus(payState),
		createdAt, updatedAt,
	), nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
