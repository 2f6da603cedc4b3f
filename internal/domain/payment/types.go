package payment

// Method is the tagged set of supported payment instruments. Each method
// carries its own required fields; there is no duck-typed payload.
type Method string

const (
	MethodEVC  Method = "evc"
	MethodCard Method = "card"
	MethodCash Method = "cash"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodEVC, MethodCard, MethodCash:
		return true
	default:
		return false
	}
}

// RequiresInstrument reports whether the wizard must collect and validate
// card details before this method can be submitted.
func (m Method) RequiresInstrument() bool {
	return m == MethodCard
}

// RequiresSenderRef reports whether the method needs a sender reference,
// e.g. the wallet phone number for mobile money.
func (m Method) RequiresSenderRef() bool {
	return m == MethodEVC
}

// SettlesOutOfBand reports whether settlement arrives later via a provider
// callback rather than at submission time.
func (m Method) SettlesOutOfBand() bool {
	return m == MethodEVC || m == MethodCard
}

// Status of a single payment attempt. A paid record is immutable except
// for the refund transition, which only the cancellation path may drive.
type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusFailed   Status = "failed"
	StatusRefunded Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed, StatusRefunded:
		return true
	default:
		return false
	}
}

var statusTransitions = map[Status][]Status{
	StatusPending:  {StatusPaid, StatusFailed},
	StatusPaid:     {StatusRefunded},
	StatusFailed:   {},
	StatusRefunded: {},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
