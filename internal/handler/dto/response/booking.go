package response

import (
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
)

type BreakdownResponse struct {
	Days           int   `json:"days"`
	SubtotalCents  int64 `json:"subtotal_cents"`
	InsuranceCents int64 `json:"insurance_cents"`
	ServicesCents  int64 `json:"services_cents"`
	TaxCents       int64 `json:"tax_cents"`
	TotalCents     int64 `json:"total_cents"`
}

type BookingResponse struct {
	ID              uuid.UUID         `json:"id"`
	CarID           uuid.UUID         `json:"car_id"`
	CarModel        string            `json:"car_model"`
	RenterName      string            `json:"renter_name"`
	RenterEmail     string            `json:"renter_email"`
	RenterPhone     string            `json:"renter_phone"`
	PickupAt        time.Time         `json:"pickup_at"`
	DropoffAt       time.Time         `json:"dropoff_at"`
	PickupLocation  string            `json:"pickup_location"`
	DropoffLocation string            `json:"dropoff_location"`
	InsuranceTier   string            `json:"insurance_tier"`
	ServiceIDs      []string          `json:"service_ids"`
	SpecialRequests *string           `json:"special_requests,omitempty"`
	Breakdown       BreakdownResponse `json:"breakdown"`
	RentalStatus    string            `json:"rental_status"`
	RentalBadge     booking.Badge     `json:"rental_badge"`
	PaymentStatus   string            `json:"payment_status"`
	PaymentBadge    booking.Badge     `json:"payment_badge"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type BookingListResponse struct {
	ID            uuid.UUID     `json:"id"`
	CarModel      string        `json:"car_model"`
	PickupAt      time.Time     `json:"pickup_at"`
	DropoffAt     time.Time     `json:"dropoff_at"`
	TotalCents    int64         `json:"total_cents"`
	RentalStatus  string        `json:"rental_status"`
	RentalBadge   booking.Badge `json:"rental_badge"`
	PaymentStatus string        `json:"payment_status"`
	PaymentBadge  booking.Badge `json:"payment_badge"`
	CreatedAt     time.Time     `json:"created_at"`
}

func FromBreakdown(b booking.PriceBreakdown) BreakdownResponse {
	return BreakdownResponse{
		Days:           b.Days,
		SubtotalCents:  b.SubtotalCents,
		InsuranceCents: b.InsuranceCents,
		ServicesCents:  b.ServicesCents,
		TaxCents:       b.TaxCents,
		TotalCents:     b.TotalCents,
	}
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		CarID:           rm.CarID,
		CarModel:        rm.CarModel,
		RenterName:      rm.RenterName,
		RenterEmail:     rm.RenterEmail,
		RenterPhone:     rm.RenterPhone,
		PickupAt:        rm.PickupAt,
		DropoffAt:       rm.DropoffAt,
		PickupLocation:  rm.PickupLocation,
		DropoffLocation: rm.DropoffLocation,
		InsuranceTier:   rm.InsuranceTier,
		ServiceIDs:      rm.ServiceIDs,
		SpecialRequests: rm.SpecialRequests,
		Breakdown:       FromBreakdown(rm.Breakdown),
		RentalStatus:    rm.RentalStatus,
		RentalBadge:     booking.BadgeForRentalStatus(booking.RentalStatus(rm.RentalStatus)),
		PaymentStatus:   rm.PaymentStatus,
		PaymentBadge:    booking.BadgeForPaymentStatus(booking.PaymentStatus(rm.PaymentStatus)),
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:            rm.ID,
		CarModel:      rm.CarModel,
		PickupAt:      rm.PickupAt,
		DropoffAt:     rm.DropoffAt,
		TotalCents:    rm.TotalCents,
		RentalStatus:  rm.RentalStatus,
		RentalBadge:   booking.BadgeForRentalStatus(booking.RentalStatus(rm.RentalStatus)),
		PaymentStatus: rm.PaymentStatus,
		PaymentBadge:  booking.BadgeForPaymentStatus(booking.PaymentStatus(rm.PaymentStatus)),
		CreatedAt:     rm.CreatedAt,
	}
}
