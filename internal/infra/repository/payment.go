package repository

import (
	"context"
	"errors"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/payment"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/pgconv"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

const insertPaymentSQL = `
	INSERT INTO payments (
		id, booking_id, method, amount_cents, sender_ref,
		transaction_id, status, created_at, settled_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *PaymentRepository) Create(ctx context.Context, q shared.Querier, rec *payment.Record) error {
	_, err := q.Exec(ctx, insertPaymentSQL,
		rec.ID(), rec.BookingID(), rec.Method().String(), rec.Amount().Cents(), rec.SenderRef(),
		rec.TransactionID(), rec.Status().String(), rec.CreatedAt(), rec.SettledAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "duplicate transaction id", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert payment record", err)
	}
	return nil
}

const updatePaymentSQL = `
	UPDATE payments
	SET status = $2, settled_at = $3
	WHERE id = $1`

func (r *PaymentRepository) UpdateStatus(ctx context.Context, q shared.Querier, rec *payment.Record) error {
	tag, err := q.Exec(ctx, updatePaymentSQL, rec.ID(), rec.Status().String(), rec.SettledAt())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update payment record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "payment record not found", nil)
	}
	return nil
}

const selectPaymentSQL = `
	SELECT id, booking_id, method, amount_cents, COALESCE(sender_ref, ''),
	       transaction_id, status, created_at, settled_at
	FROM payments`

func (r *PaymentRepository) FindByTransactionID(ctx context.Context, q shared.Querier, transactionID string) (*payment.Record, error) {
	return r.scanRecord(q.QueryRow(ctx, selectPaymentSQL+" WHERE transaction_id = $1", transactionID))
}

func (r *PaymentRepository) FindByBookingID(ctx context.Context, q shared.Querier, bookingID uuid.UUID) ([]*payment.Record, error) {
	rows, err := q.Query(ctx, selectPaymentSQL+" WHERE booking_id = $1 ORDER BY created_at DESC", bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list payment records", err)
	}
	defer rows.Close()

	var records []*payment.Record
	for rows.Next() {
		rec, err := r.scanRecordFromRows(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate payment records", err)
	}
	return records, nil
}

// CountPaid reports how many records for the booking have settled as paid.
// More than one is a reconciliation anomaly.
func (r *PaymentRepository) CountPaid(ctx context.Context, q shared.Querier, bookingID uuid.UUID) (int, error) {
	var count int
	err := q.QueryRow(ctx,
		"SELECT COUNT(*) FROM payments WHERE booking_id = $1 AND status = $2",
		bookingID, payment.StatusPaid.String(),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to count paid records", err)
	}
	return count, nil
}

// FindStalePending returns pending attempts created before the cutoff, for
// the expiry job. Cash attempts never expire: they settle at the counter.
func (r *PaymentRepository) FindStalePending(ctx context.Context, q shared.Querier, cutoff time.Time, limit int) ([]*payment.Record, error) {
	rows, err := q.Query(ctx,
		selectPaymentSQL+` WHERE status = $1 AND method <> $2 AND created_at < $3 ORDER BY created_at LIMIT $4`,
		payment.StatusPending.String(), payment.MethodCash.String(), cutoff, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list stale pending payments", err)
	}
	defer rows.Close()

	var records []*payment.Record
	for rows.Next() {
		rec, err := r.scanRecordFromRows(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate stale pending payments", err)
	}
	return records, nil
}

func (r *PaymentRepository) scanRecord(row pgx.Row) (*payment.Record, error) {
	rec, err := scanPayment(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "payment record not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan payment record", err)
	}
	return rec, nil
}

func (r *PaymentRepository) scanRecordFromRows(rows pgx.Rows) (*payment.Record, error) {
	rec, err := scanPayment(rows.Scan)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan payment record", err)
	}
	return rec, nil
}

func scanPayment(scan func(dest ...any) error) (*payment.Record, error) {
	var (
		id, bookingID          uuid.UUID
		method, status         string
		amountCents            int64
		senderRef, transaction string
		createdAt              time.Time
		settledAt              pgtype.Timestamptz
	)

	if err := scan(&id, &bookingID, &method, &amountCents, &senderRef,
		&transaction, &status, &createdAt, &settledAt); err != nil {
		return nil, err
	}

	amount, err := booking.NewMoney(amountCents)
	if err != nil {
		return nil, err
	}

	return payment.ReconstructRecord(
		id, bookingID, payment.Method(method), amount,
		senderRef, transaction, payment.Status(status), createdAt,
		pgconv.TimePtrFromPgtype(settledAt),
	), nil
}
