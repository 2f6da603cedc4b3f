package response

import (
	"time"

	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
)

type AnomalyResponse struct {
	ID         uuid.UUID  `json:"id"`
	BookingID  uuid.UUID  `json:"booking_id"`
	Kind       string     `json:"kind"`
	Detail     string     `json:"detail"`
	DetectedAt time.Time  `json:"detected_at"`
	ResolvedBy *uuid.UUID `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type OverrideResponse struct {
	ID         uuid.UUID `json:"id"`
	BookingID  uuid.UUID `json:"booking_id"`
	ActorID    uuid.UUID `json:"actor_id"`
	Axis       string    `json:"axis"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromAnomalyView(rm *queries.AnomalyView) *AnomalyResponse {
	return &AnomalyResponse{
		ID:         rm.ID,
		BookingID:  rm.BookingID,
		Kind:       rm.Kind,
		Detail:     rm.Detail,
		DetectedAt: rm.DetectedAt,
		ResolvedBy: rm.ResolvedBy,
		ResolvedAt: rm.ResolvedAt,
	}
}

func FromOverrideView(rm *queries.OverrideView) *OverrideResponse {
	return &OverrideResponse{
		ID:         rm.ID,
		BookingID:  rm.BookingID,
		ActorID:    rm.ActorID,
		Axis:       rm.Axis,
		FromStatus: rm.FromStatus,
		ToStatus:   rm.ToStatus,
		Reason:     rm.Reason,
		CreatedAt:  rm.CreatedAt,
	}
}
