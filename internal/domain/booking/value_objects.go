package booking

import (
	"time"

	"rentwheels/internal/pkg/errs"
)

var (
	ErrInvalidRange   = errs.New("drop-off must be after pickup")
	ErrNegativeAmount = errs.New("amount cannot be negative")
)

// Money is an amount in minor units (cents). All pricing arithmetic stays
// in integer cents so repeated quoting never drifts.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Equals(other Money) bool {
	return m.cents == other.cents
}

// RentalPeriod is the validated pickup/drop-off range. Construction fails
// unless drop-off is strictly after pickup, so downstream pricing can
// assume a positive duration.
type RentalPeriod struct {
	pickup  time.Time
	dropoff time.Time
}

func NewRentalPeriod(pickup, dropoff time.Time) (RentalPeriod, error) {
	if !dropoff.After(pickup) {
		return RentalPeriod{}, ErrInvalidRange
	}
	return RentalPeriod{pickup: pickup, dropoff: dropoff}, nil
}

func (p RentalPeriod) Pickup() time.Time {
	return p.pickup
}

func (p RentalPeriod) Dropoff() time.Time {
	return p.dropoff
}

// Days bills any started day as a full day, with a floor of one day for
// same-day rentals.
func (p RentalPeriod) Days() int {
	d := p.dropoff.Sub(p.pickup)
	days := int((d + 24*time.Hour - 1) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return days
}

// PriceBreakdown is the itemized quote frozen onto a booking at creation.
// Invariant: TotalCents == SubtotalCents + InsuranceCents + ServicesCents + TaxCents.
type PriceBreakdown struct {
	Days           int   `json:"days"`
	SubtotalCents  int64 `json:"subtotalCents"`
	InsuranceCents int64 `json:"insuranceCents"`
	ServicesCents  int64 `json:"servicesCents"`
	TaxCents       int64 `json:"taxCents"`
	TotalCents     int64 `json:"totalCents"`
}

var ErrBreakdownMismatch = errs.New("price breakdown components do not sum to total")

func (b PriceBreakdown) Validate() error {
	if b.Days < 1 {
		return ErrInvalidRange
	}
	if b.SubtotalCents < 0 || b.InsuranceCents < 0 || b.ServicesCents < 0 || b.TaxCents < 0 || b.TotalCents < 0 {
		return ErrNegativeAmount
	}
	if b.TotalCents != b.SubtotalCents+b.InsuranceCents+b.ServicesCents+b.TaxCents {
		return ErrBreakdownMismatch
	}
	return nil
}

func (b PriceBreakdown) Total() Money {
	return Money{cents: b.TotalCents}
}
