package reservation

import (
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/payment"

	"github.com/google/uuid"
)

// Draft is the client-held wizard state before confirmation. It is never
// persisted: it either produces a Booking or is discarded. Card fields
// exist only for the instrument step and must not outlive submission.
type Draft struct {
	CarID           uuid.UUID
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
	Card            *CardInstrument
}

// CardInstrument holds the raw card fields collected by the wizard's
// payment step.
type CardInstrument struct {
	Number string
	Expiry string
	CVV    string
	Holder string
}

func (d Draft) Renter() booking.Renter {
	return booking.Renter{
		FullName:      d.FullName,
		Email:         d.Email,
		Phone:         d.Phone,
		LicenseNumber: d.LicenseNumber,
	}
}
