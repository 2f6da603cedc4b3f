package reservation

import (
	"regexp"
	"strings"

	"rentwheels/internal/pkg/errs"
)

var (
	ErrMissingField      = errs.New("required field is missing")
	ErrInvalidEmail      = errs.New("email is not structurally valid")
	ErrInvalidRange      = errs.New("drop-off must be after pickup")
	ErrInvalidCardNumber = errs.New("card number must be 16 digits")
	ErrInvalidExpiry     = errs.New("expiry must be MM/YY")
	ErrInvalidCVV        = errs.New("cvv must be 3 or 4 digits")
	ErrMissingCardHolder = errs.New("card holder name is required")
	ErrUnknownStep       = errs.New("unknown reservation step")
)

// Step is one gate of the reservation wizard. The confirm step re-displays
// already validated data and adds no checks of its own.
type Step string

const (
	StepIdentitySchedule  Step = "identity_schedule"
	StepPaymentInstrument Step = "payment_instrument"
	StepConfirm           Step = "confirm"
)

// FieldErrors maps a field name to the failure for display. An empty map
// means the step passed.
type FieldErrors map[string]error

func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

func (fe FieldErrors) Messages() map[string]string {
	if len(fe) == 0 {
		return nil
	}
	out := make(map[string]string, len(fe))
	for field, err := range fe {
		out[field] = err.Error()
	}
	return out
}

var (
	// Structural check only: something before and after the @, and a dot
	// in the domain segment. Deliverability is not this layer's problem.
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/?\d{2}$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// Validator runs the wizard's step gates. It is stateless and never
// mutates booking or payment state: it only reports pass/fail per field.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStep dispatches to the gate for the given step. The payment
// instrument gate only applies when the chosen method captures one; for
// other methods it passes vacuously.
func (v *Validator) ValidateStep(step Step, d Draft) (FieldErrors, error) {
	switch step {
	case StepIdentitySchedule:
		return v.ValidateIdentitySchedule(d), nil
	case StepPaymentInstrument:
		return v.ValidatePaymentInstrument(d), nil
	case StepConfirm:
		return FieldErrors{}, nil
	default:
		return nil, ErrUnknownStep
	}
}

func (v *Validator) ValidateIdentitySchedule(d Draft) FieldErrors {
	fe := FieldErrors{}

	requireField(fe, "fullName", d.FullName)
	requireField(fe, "phone", d.Phone)
	requireField(fe, "licenseNumber", d.LicenseNumber)
	requireField(fe, "pickupLocation", d.PickupLocation)

	switch {
	case strings.TrimSpace(d.Email) == "":
		fe["email"] = ErrMissingField
	case !emailPattern.MatchString(strings.TrimSpace(d.Email)):
		fe["email"] = ErrInvalidEmail
	}

	switch {
	case d.PickupDate.IsZero():
		fe["pickupDate"] = ErrMissingField
	case d.DropoffDate.IsZero():
		fe["dropoffDate"] = ErrMissingField
	case !d.DropoffDate.After(d.PickupDate):
		fe["dropoffDate"] = ErrInvalidRange
	}

	return fe
}

func (v *Validator) ValidatePaymentInstrument(d Draft) FieldErrors {
	fe := FieldErrors{}

	if !d.PaymentMethod.RequiresInstrument() {
		return fe
	}

	card := d.Card
	if card == nil {
		fe["cardNumber"] = ErrMissingField
		fe["cardExpiry"] = ErrMissingField
		fe["cardCvv"] = ErrMissingField
		fe["cardHolder"] = ErrMissingCardHolder
		return fe
	}

	pan := stripSeparators(card.Number)
	if len(pan) != 16 || !digitsPattern.MatchString(pan) {
		fe["cardNumber"] = ErrInvalidCardNumber
	}

	if !expiryPattern.MatchString(strings.TrimSpace(card.Expiry)) {
		fe["cardExpiry"] = ErrInvalidExpiry
	}

	cvv := strings.TrimSpace(card.CVV)
	if len(cvv) < 3 || len(cvv) > 4 || !digitsPattern.MatchString(cvv) {
		fe["cardCvv"] = ErrInvalidCVV
	}

	if strings.TrimSpace(card.Holder) == "" {
		fe["cardHolder"] = ErrMissingCardHolder
	}

	return fe
}

func requireField(fe FieldErrors, name, value string) {
	if strings.TrimSpace(value) == "" {
		fe[name] = ErrMissingField
	}
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
}
