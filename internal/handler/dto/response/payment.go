package response

import (
	"time"

	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID            uuid.UUID  `json:"id"`
	BookingID     uuid.UUID  `json:"booking_id"`
	Method        string     `json:"method"`
	AmountCents   int64      `json:"amount_cents"`
	SenderRef     *string    `json:"sender_ref,omitempty"`
	TransactionID string     `json:"transaction_id"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	SettledAt     *time.Time `json:"settled_at,omitempty"`
}

func FromPaymentView(rm *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		ID:            rm.ID,
		BookingID:     rm.BookingID,
		Method:        rm.Method,
		AmountCents:   rm.AmountCents,
		SenderRef:     rm.SenderRef,
		TransactionID: rm.TransactionID,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
		SettledAt:     rm.SettledAt,
	}
}
