package request

import (
	"strings"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/payment"
	"rentwheels/internal/domain/reservation"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	CarID         uuid.UUID `json:"car_id" binding:"required"`
	PickupDate    time.Time `json:"pickup_date" binding:"required"`
	DropoffDate   time.Time `json:"dropoff_date" binding:"required"`
	InsuranceTier string    `json:"insurance_tier" binding:"required"`
	ServiceIDs    []string  `json:"service_ids,omitempty"`
}

type CardRequest struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Holder string `json:"holder"`
}

type CreateBookingRequest struct {
	CarID           uuid.UUID    `json:"car_id" binding:"required"`
	FullName        string       `json:"full_name" binding:"required"`
	Email           string       `json:"email" binding:"required"`
	Phone           string       `json:"phone" binding:"required"`
	LicenseNumber   string       `json:"license_number" binding:"required"`
	PickupDate      time.Time    `json:"pickup_date" binding:"required"`
	DropoffDate     time.Time    `json:"dropoff_date" binding:"required"`
	PickupLocation  string       `json:"pickup_location" binding:"required"`
	DropoffLocation string       `json:"dropoff_location,omitempty"`
	SpecialRequests string       `json:"special_requests,omitempty"`
	InsuranceTier   string       `json:"insurance_tier" binding:"required"`
	ServiceIDs      []string     `json:"service_ids,omitempty"`
	PaymentMethod   string       `json:"payment_method" binding:"required"`
	Card            *CardRequest `json:"card,omitempty"`
}

// ToDraft carries the wizard fields into the domain draft. Field-level
// validation happens behind the usecase gates, not here; gin binding only
// rejects structurally broken JSON.
func (r CreateBookingRequest) ToDraft() reservation.Draft {
	d := reservation.Draft{
		CarID:           r.CarID,
		FullName:        strings.TrimSpace(r.FullName),
		Email:           strings.TrimSpace(r.Email),
		Phone:           strings.TrimSpace(r.Phone),
		LicenseNumber:   strings.TrimSpace(r.LicenseNumber),
		PickupDate:      r.PickupDate,
		DropoffDate:     r.DropoffDate,
		PickupLocation:  strings.TrimSpace(r.PickupLocation),
		DropoffLocation: strings.TrimSpace(r.DropoffLocation),
		SpecialRequests: strings.TrimSpace(r.SpecialRequests),
		InsuranceTier:   booking.InsuranceTier(r.InsuranceTier),
		ServiceIDs:      r.ServiceIDs,
		PaymentMethod:   payment.Method(r.PaymentMethod),
	}
	if r.Card != nil {
		d.Card = &reservation.CardInstrument{
			Number: r.Card.Number,
			Expiry: r.Card.Expiry,
			CVV:    r.Card.CVV,
			Holder: r.Card.Holder,
		}
	}
	return d
}

// ValidateStepRequest checks one wizard step server-side so the client can
// gate navigation without creating anything.
type ValidateStepRequest struct {
	Step    string               `json:"step" binding:"required"`
	Booking CreateBookingRequest `json:"booking" binding:"required"`
}
