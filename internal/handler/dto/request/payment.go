package request

type RecordPaymentRequest struct {
	Method      string `json:"method" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required"`
	SenderRef   string `json:"sender_ref,omitempty"`
}

// SettlementCallbackRequest is the payload posted by the payment provider
// once an out-of-band transfer resolves.
type SettlementCallbackRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Outcome       string `json:"outcome" binding:"required"`
}
