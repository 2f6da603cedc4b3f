package queries

import (
	"time"

	"rentwheels/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side). Statuses and the frozen breakdown are
// exposed verbatim; formatting is the caller's concern.
type BookingView struct {
	ID              uuid.UUID              `json:"id"`
	CarID           uuid.UUID              `json:"car_id"`
	CarModel        string                 `json:"car_model"`
	RenterID        uuid.UUID              `json:"renter_id"`
	RenterName      string                 `json:"renter_name"`
	RenterEmail     string                 `json:"renter_email"`
	RenterPhone     string                 `json:"renter_phone"`
	PickupAt        time.Time              `json:"pickup_at"`
	DropoffAt       time.Time              `json:"dropoff_at"`
	PickupLocation  string                 `json:"pickup_location"`
	DropoffLocation string                 `json:"dropoff_location"`
	InsuranceTier   string                 `json:"insurance_tier"`
	ServiceIDs      []string               `json:"service_ids"`
	SpecialRequests *string                `json:"special_requests,omitempty"`
	Breakdown       booking.PriceBreakdown `json:"breakdown"`
	RentalStatus    string                 `json:"rental_status"`
	PaymentStatus   string                 `json:"payment_status"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	CarModel      string    `json:"car_model"`
	PickupAt      time.Time `json:"pickup_at"`
	DropoffAt     time.Time `json:"dropoff_at"`
	TotalCents    int64     `json:"total_cents"`
	RentalStatus  string    `json:"rental_status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaymentView struct {
	ID            uuid.UUID  `json:"id"`
	BookingID     uuid.UUID  `json:"booking_id"`
	Method        string     `json:"method"`
	AmountCents   int64      `json:"amount_cents"`
	SenderRef     *string    `json:"sender_ref,omitempty"`
	TransactionID string     `json:"transaction_id"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	SettledAt     *time.Time `json:"settled_at,omitempty"`
}

type AnomalyView struct {
	ID         uuid.UUID  `json:"id"`
	BookingID  uuid.UUID  `json:"booking_id"`
	Kind       string     `json:"kind"`
	Detail     string     `json:"detail"`
	DetectedAt time.Time  `json:"detected_at"`
	ResolvedBy *uuid.UUID `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type OverrideView struct {
	ID         uuid.UUID `json:"id"`
	BookingID  uuid.UUID `json:"booking_id"`
	ActorID    uuid.UUID `json:"actor_id"`
	Axis       string    `json:"axis"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}
