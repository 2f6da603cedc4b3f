//go:build unit || e2e

package builder

import (
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/payment"
	"rentwheels/internal/domain/reservation"
	reqdto "rentwheels/internal/handler/dto/request"
	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CarID           uuid.UUID
	RenterID        uuid.UUID
	FullName        string
	Email           string
	Phone           string
	LicenseNumber   string
	PickupDate      time.Time
	DropoffDate     time.Time
	PickupLocation  string
	DropoffLocation string
	SpecialRequests string
	InsuranceTier   booking.InsuranceTier
	ServiceIDs      []string
	PaymentMethod   payment.Method
	Card            *reservation.CardInstrument
	Breakdown       booking.PriceBreakdown
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	pickup := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		CarID:          uuid.New(),
		RenterID:       uuid.New(),
		FullName:       "Ana Ferreira",
		Email:          "ana@example.com",
		Phone:          "+258 84 123 4567",
		LicenseNumber:  "MZ-889231",
		PickupDate:     pickup,
		DropoffDate:    pickup.AddDate(0, 0, 5),
		PickupLocation: "Maputo Airport",
		InsuranceTier:  booking.InsuranceBasic,
		PaymentMethod:  payment.MethodEVC,
		Breakdown: booking.PriceBreakdown{
			Days:           5,
			SubtotalCents:  64500,
			InsuranceCents: 5000,
			ServicesCents:  0,
			TaxCents:       5560,
			TotalCents:     75060,
		},
		CreatedAt: pickup.AddDate(0, 0, -7),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDraft() reservation.Draft {
	return reservation.Draft{
		CarID:           b.CarID,
		FullName:        b.FullName,
		Email:           b.Email,
		Phone:           b.Phone,
		LicenseNumber:   b.LicenseNumber,
		PickupDate:      b.PickupDate,
		DropoffDate:     b.DropoffDate,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		SpecialRequests: b.SpecialRequests,
		InsuranceTier:   b.InsuranceTier,
		ServiceIDs:      b.ServiceIDs,
		PaymentMethod:   b.PaymentMethod,
		Card:            b.Card,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := booking.NewRentalPeriod(b.PickupDate, b.DropoffDate)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(
		b.CarID, b.RenterID,
		booking.Renter{FullName: b.FullName, Email: b.Email, Phone: b.Phone, LicenseNumber: b.LicenseNumber},
		period, b.PickupLocation, b.DropoffLocation,
		b.InsuranceTier, b.ServiceIDs, b.SpecialRequests,
		b.Breakdown, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	var card *reqdto.CardRequest
	if b.Card != nil {
		card = &reqdto.CardRequest{
			Number: b.Card.Number,
			Expiry: b.Card.Expiry,
			CVV:    b.Card.CVV,
			Holder: b.Card.Holder,
		}
	}
	return reqdto.CreateBookingRequest{
		CarID:           b.CarID,
		FullName:        b.FullName,
		Email:           b.Email,
		Phone:           b.Phone,
		LicenseNumber:   b.LicenseNumber,
		PickupDate:      b.PickupDate,
		DropoffDate:     b.DropoffDate,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		SpecialRequests: b.SpecialRequests,
		InsuranceTier:   b.InsuranceTier.String(),
		ServiceIDs:      b.ServiceIDs,
		PaymentMethod:   b.PaymentMethod.String(),
		Card:            card,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              uuid.New(),
		CarID:           b.CarID,
		CarModel:        "Toyota Corolla",
		RenterID:        b.RenterID,
		RenterName:      b.FullName,
		RenterEmail:     b.Email,
		RenterPhone:     b.Phone,
		PickupAt:        b.PickupDate,
		DropoffAt:       b.DropoffDate,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		InsuranceTier:   b.InsuranceTier.String(),
		ServiceIDs:      b.ServiceIDs,
		Breakdown:       b.Breakdown,
		RentalStatus:    booking.RentalPending.String(),
		PaymentStatus:   booking.PaymentPending.String(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}
