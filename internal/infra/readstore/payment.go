package readstore

import (
	"context"

	"rentwheels/internal/infra"
	"rentwheels/internal/usecase/queries"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentReadStore struct {
	db shared.Querier
}

func NewPaymentReadStore(db shared.Querier) *PaymentReadStore {
	return &PaymentReadStore{db: db}
}

const paymentHistorySQL = `
	SELECT id, booking_id, method, amount_cents, sender_ref,
	       transaction_id, status, created_at, settled_at
	FROM payments
	WHERE booking_id = $1
	ORDER BY created_at DESC`

func (s *PaymentReadStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := s.db.Query(ctx, paymentHistorySQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list payment history", err)
	}
	defer rows.Close()

	var views []*queries.PaymentView
	for rows.Next() {
		var v queries.PaymentView
		if err := rows.Scan(
			&v.ID, &v.BookingID, &v.Method, &v.AmountCents, &v.SenderRef,
			&v.TransactionID, &v.Status, &v.CreatedAt, &v.SettledAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan payment view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate payment history", err)
	}
	return views, nil
}
