package booking

import (
	"slices"
	"time"

	"rentwheels/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition    = errs.New("invalid booking status transition")
	ErrPaymentNotSettled    = errs.New("payment has not settled")
	ErrInvalidInsuranceTier = errs.New("invalid insurance tier")
)

// InsuranceTier selected for the rental. Per-day rates live in the pricing
// calculator configuration, not here.
type InsuranceTier string

const (
	InsuranceNone    InsuranceTier = "none"
	InsuranceBasic   InsuranceTier = "basic"
	InsurancePremium InsuranceTier = "premium"
)

func (t InsuranceTier) String() string {
	return string(t)
}

func (t InsuranceTier) IsValid() bool {
	switch t {
	case InsuranceNone, InsuranceBasic, InsurancePremium:
		return true
	default:
		return false
	}
}

// Renter is the contact snapshot captured from the reservation wizard.
type Renter struct {
	FullName      string
	Email         string
	Phone         string
	LicenseNumber string
}

// Booking is the durable reservation aggregate. The price breakdown is
// frozen at creation; later rate changes never touch an existing booking.
// It is never deleted; cancellation is a status, not a removal.
type Booking struct {
	id              uuid.UUID
	carID           uuid.UUID
	renterID        uuid.UUID
	renter          Renter
	period          RentalPeriod
	pickupLocation  string
	dropoffLocation string
	insuranceTier   InsuranceTier
	serviceIDs      []string
	specialRequests string
	breakdown       PriceBreakdown
	rentalStatus    RentalStatus
	paymentStatus   PaymentStatus
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(
	carID, renterID uuid.UUID,
	renter Renter,
	period RentalPeriod,
	pickupLocation, dropoffLocation string,
	tier InsuranceTier,
	serviceIDs []string,
	specialRequests string,
	breakdown PriceBreakdown,
	now time.Time,
) (*Booking, error) {
	if !tier.IsValid() {
		return nil, ErrInvalidInsuranceTier
	}
	if err := breakdown.Validate(); err != nil {
		return nil, err
	}

	return &Booking{
		id:              uuid.New(),
		carID:           carID,
		renterID:        renterID,
		renter:          renter,
		period:          period,
		pickupLocation:  pickupLocation,
		dropoffLocation: dropoffLocation,
		insuranceTier:   tier,
		serviceIDs:      normalizeServiceIDs(serviceIDs),
		specialRequests: specialRequests,
		breakdown:       breakdown,
		rentalStatus:    RentalPending,
		paymentStatus:   PaymentPending,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(
	id, carID, renterID uuid.UUID,
	renter Renter,
	period RentalPeriod,
	pickupLocation, dropoffLocation string,
	tier InsuranceTier,
	serviceIDs []string,
	specialRequests string,
	breakdown PriceBreakdown,
	rentalStatus RentalStatus,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		carID:           carID,
		renterID:        renterID,
		renter:          renter,
		period:          period,
		pickupLocation:  pickupLocation,
		dropoffLocation: dropoffLocation,
		insuranceTier:   tier,
		serviceIDs:      serviceIDs,
		specialRequests: specialRequests,
		breakdown:       breakdown,
		rentalStatus:    rentalStatus,
		paymentStatus:   paymentStatus,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Services are a set: duplicates collapse and order is irrelevant.
func normalizeServiceIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Confirm advances pending → confirmed once payment has settled. The
// reconciler is the only caller on the normal path.
func (b *Booking) Confirm() error {
	if !b.rentalStatus.CanTransitionTo(RentalConfirmed) {
		return ErrInvalidTransition
	}
	if b.paymentStatus != PaymentPaid {
		return ErrPaymentNotSettled
	}
	b.rentalStatus = RentalConfirmed
	return nil
}

// ConfirmWithoutSettlement is the cash-on-pickup path: an administrator
// confirms before any payment settles. Still only valid from pending.
func (b *Booking) ConfirmWithoutSettlement() error {
	if !b.rentalStatus.CanTransitionTo(RentalConfirmed) {
		return ErrInvalidTransition
	}
	b.rentalStatus = RentalConfirmed
	return nil
}

func (b *Booking) Complete() error {
	if !b.rentalStatus.CanTransitionTo(RentalCompleted) {
		return ErrInvalidTransition
	}
	b.rentalStatus = RentalCompleted
	return nil
}

func (b *Booking) Cancel() error {
	if !b.rentalStatus.CanTransitionTo(RentalCancelled) {
		return ErrInvalidTransition
	}
	b.rentalStatus = RentalCancelled
	return nil
}

// CancelRequiresRefund reports whether cancelling now must also move the
// settled payment to refunded. A cancelled booking must never stay paired
// with a paid payment.
func (b *Booking) CancelRequiresRefund() bool {
	return b.paymentStatus == PaymentPaid
}

func (b *Booking) MarkPaid() error {
	return b.setPaymentStatus(PaymentPaid)
}

func (b *Booking) MarkPaymentFailed() error {
	return b.setPaymentStatus(PaymentFailed)
}

func (b *Booking) MarkRefunded() error {
	return b.setPaymentStatus(PaymentRefunded)
}

// ResetPaymentPending reopens the payment axis when a retry attempt is
// recorded after a failure.
func (b *Booking) ResetPaymentPending() error {
	return b.setPaymentStatus(PaymentPending)
}

func (b *Booking) setPaymentStatus(target PaymentStatus) error {
	if !b.paymentStatus.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	b.paymentStatus = target
	return nil
}

// ForceRentalStatus bypasses the transition table. Reserved for the
// back-office override surface; every call must be audit-logged.
func (b *Booking) ForceRentalStatus(s RentalStatus) error {
	if !s.IsValid() {
		return ErrInvalidTransition
	}
	b.rentalStatus = s
	return nil
}

// ForcePaymentStatus bypasses the transition table. Reserved for the
// back-office override surface; every call must be audit-logged.
func (b *Booking) ForcePaymentStatus(s PaymentStatus) error {
	if !s.IsValid() {
		return ErrInvalidTransition
	}
	b.paymentStatus = s
	return nil
}

func (b *Booking) Touch(now time.Time) {
	b.updatedAt = now
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) CarID() uuid.UUID             { return b.carID }
func (b *Booking) RenterID() uuid.UUID          { return b.renterID }
func (b *Booking) Renter() Renter               { return b.renter }
func (b *Booking) Period() RentalPeriod         { return b.period }
func (b *Booking) PickupLocation() string       { return b.pickupLocation }
func (b *Booking) DropoffLocation() string      { return b.dropoffLocation }
func (b *Booking) InsuranceTier() InsuranceTier { return b.insuranceTier }
func (b *Booking) ServiceIDs() []string         { return slices.Clone(b.serviceIDs) }
func (b *Booking) SpecialRequests() string      { return b.specialRequests }
func (b *Booking) Breakdown() PriceBreakdown    { return b.breakdown }
func (b *Booking) RentalStatus() RentalStatus   { return b.rentalStatus }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
