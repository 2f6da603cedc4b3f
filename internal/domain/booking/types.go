package booking

// RentalStatus is the lifecycle of the reservation itself. It moves
// pending → confirmed → completed on the success path; pending and
// confirmed may abort to cancelled. Terminal states never leave.
type RentalStatus string

const (
	RentalPending   RentalStatus = "pending"
	RentalConfirmed RentalStatus = "confirmed"
	RentalCompleted RentalStatus = "completed"
	RentalCancelled RentalStatus = "cancelled"
)

func (s RentalStatus) String() string {
	return string(s)
}

func (s RentalStatus) IsValid() bool {
	switch s {
	case RentalPending, RentalConfirmed, RentalCompleted, RentalCancelled:
		return true
	default:
		return false
	}
}

func (s RentalStatus) IsTerminal() bool {
	return s == RentalCompleted || s == RentalCancelled
}

var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalPending:   {RentalConfirmed, RentalCancelled},
	RentalConfirmed: {RentalCompleted, RentalCancelled},
	RentalCompleted: {},
	RentalCancelled: {},
}

func (s RentalStatus) CanTransitionTo(target RentalStatus) bool {
	for _, allowed := range rentalTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// PaymentStatus is the money-movement axis of a booking, tracked
// independently of RentalStatus and reconciled by policy.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed:
		return true
	default:
		return false
	}
}

// failed → pending covers a retry attempt replacing a failed one.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:  {PaymentPaid, PaymentFailed},
	PaymentPaid:     {PaymentRefunded},
	PaymentFailed:   {PaymentPending},
	PaymentRefunded: {},
}

func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
