package pricing

import (
	"rentwheels/internal/domain/booking"
	"rentwheels/internal/pkg/errs"
)

var (
	ErrNegativeRate = errs.New("daily rate cannot be negative")
	ErrUnknownTier  = errs.New("unknown insurance tier")
)

// Calculator turns a validated rental request into an itemized quote.
// Implementations must be pure: identical inputs yield identical output.
type Calculator interface {
	Quote(dailyRateCents int64, period booking.RentalPeriod, tier booking.InsuranceTier, serviceIDs []string) (booking.PriceBreakdown, error)
}

// Rates is the configurable price table. All amounts are cents per day.
// Service rates are keyed per service ID; any ID missing from the map
// falls back to DefaultServiceCents, which matches the storefront's
// current uniform pricing.
type Rates struct {
	InsuranceCentsPerDay map[booking.InsuranceTier]int64
	ServiceCentsPerDay   map[string]int64
	DefaultServiceCents  int64
	TaxBasisPoints       int64
}

func DefaultRates() Rates {
	return Rates{
		InsuranceCentsPerDay: map[booking.InsuranceTier]int64{
			booking.InsuranceNone:    0,
			booking.InsuranceBasic:   1000,
			booking.InsurancePremium: 1500,
		},
		DefaultServiceCents: 1000,
		TaxBasisPoints:      800,
	}
}

type StandardCalculator struct {
	rates Rates
}

func NewStandardCalculator(rates Rates) *StandardCalculator {
	if rates.InsuranceCentsPerDay == nil {
		rates = DefaultRates()
	}
	return &StandardCalculator{rates: rates}
}

// Quote computes the frozen breakdown for a rental. Subtotal, insurance
// and services are exact in cents; tax is rounded half-up exactly once,
// and the total is the plain sum of the four components, so the identity
// total == subtotal + insurance + services + tax always holds.
func (c *StandardCalculator) Quote(
	dailyRateCents int64,
	period booking.RentalPeriod,
	tier booking.InsuranceTier,
	serviceIDs []string,
) (booking.PriceBreakdown, error) {
	if dailyRateCents < 0 {
		return booking.PriceBreakdown{}, ErrNegativeRate
	}

	insurancePerDay, ok := c.rates.InsuranceCentsPerDay[tier]
	if !ok {
		return booking.PriceBreakdown{}, ErrUnknownTier
	}

	days := int64(period.Days())
	subtotal := days * dailyRateCents
	insurance := days * insurancePerDay

	var services int64
	for _, id := range uniqueServiceIDs(serviceIDs) {
		perDay, ok := c.rates.ServiceCentsPerDay[id]
		if !ok {
			perDay = c.rates.DefaultServiceCents
		}
		services += days * perDay
	}

	taxBase := subtotal + insurance + services
	tax := (taxBase*c.rates.TaxBasisPoints + 5000) / 10000

	return booking.PriceBreakdown{
		Days:           int(days),
		SubtotalCents:  subtotal,
		InsuranceCents: insurance,
		ServicesCents:  services,
		TaxCents:       tax,
		TotalCents:     subtotal + insurance + services + tax,
	}, nil
}

func uniqueServiceIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
