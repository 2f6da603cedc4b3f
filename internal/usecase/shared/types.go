package shared

import (
	"time"

	"github.com/google/uuid"
)

// CarSnapshot is the read-only view of a catalog car this core consumes.
// The catalog itself is an external collaborator; nothing here writes it.
type CarSnapshot struct {
	ID             uuid.UUID `json:"id"`
	Model          string    `json:"model"`
	DailyRateCents int64     `json:"dailyRateCents"`
	Seats          int       `json:"seats"`
	FuelType       string    `json:"fuelType"`
	Transmission   string    `json:"transmission"`
	Available      bool      `json:"available"`
}

// AnomalyKind classifies a reconciliation finding.
type AnomalyKind string

const (
	// A booking confirmed while its payment axis reads failed.
	AnomalyConfirmedWithFailedPayment AnomalyKind = "confirmed_with_failed_payment"
	// More than one paid record for the same booking.
	AnomalyDoubleSettlement AnomalyKind = "double_settlement"
	// A cancelled booking still paired with a paid payment.
	AnomalyCancelledStillPaid AnomalyKind = "cancelled_still_paid"
)

// Anomaly is an operator-queue entry. Anomalies are surfaced, never
// auto-corrected: silent repair could mask fraud or a double charge.
type Anomaly struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	Kind       AnomalyKind
	Detail     string
	DetectedAt time.Time
	ResolvedBy *uuid.UUID
	ResolvedAt *time.Time
}

func (a Anomaly) Resolved() bool {
	return a.ResolvedAt != nil
}
