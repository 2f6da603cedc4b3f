//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/payment"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/usecase/shared"
	"rentwheels/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settleBookingRepo struct {
	BookingRepository
	updates int
}

func (s *settleBookingRepo) UpdateStatuses(_ context.Context, _ shared.Querier, _ *booking.Booking) error {
	s.updates++
	return nil
}

type settlePaymentRepo struct {
	PaymentRepository
	updated []*payment.Record
}

func (s *settlePaymentRepo) UpdateStatus(_ context.Context, _ shared.Querier, rec *payment.Record) error {
	s.updated = append(s.updated, rec)
	return nil
}

type settleReconciler struct {
	ReconcilerCommands
	calls int
}

func (s *settleReconciler) OnPaymentSettled(_ context.Context, _ pgx.Tx, _ *booking.Booking) error {
	s.calls++
	return nil
}

func newSettleFixture(t *testing.T) (*paymentCommandsImpl, *settleBookingRepo, *settlePaymentRepo, *settleReconciler) {
	t.Helper()
	bookings := &settleBookingRepo{}
	payments := &settlePaymentRepo{}
	reconciler := &settleReconciler{}
	impl := &paymentCommandsImpl{
		bookingRepo: bookings,
		paymentRepo: payments,
		reconciler:  reconciler,
		clock:       clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)),
	}
	return impl, bookings, payments, reconciler
}

func newPendingRecord(t *testing.T, b *booking.Booking) *payment.Record {
	t.Helper()
	rec, err := payment.NewRecord(b.ID(), payment.MethodEVC,
		booking.MustMoney(b.Breakdown().TotalCents), "+258841234567",
		time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return rec
}

func TestSettle(t *testing.T) {
	ctx := context.Background()

	t.Run("paid outcome settles the record and the booking together", func(t *testing.T) {
		impl, bookings, payments, reconciler := newSettleFixture(t)

		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		rec := newPendingRecord(t, b)

		require.NoError(t, impl.settle(ctx, nil, b, rec, OutcomePaid))
		assert.Equal(t, payment.StatusPaid, rec.Status())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, 1, bookings.updates)
		assert.Len(t, payments.updated, 1)
		assert.Equal(t, 1, reconciler.calls)
	})

	t.Run("failed outcome for a second record never rolls back, axis stays paid", func(t *testing.T) {
		impl, bookings, payments, reconciler := newSettleFixture(t)

		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.MarkPaid())
		rec := newPendingRecord(t, b)

		require.NoError(t, impl.settle(ctx, nil, b, rec, OutcomeFailed))
		assert.Equal(t, payment.StatusFailed, rec.Status())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, 0, bookings.updates)
		assert.Len(t, payments.updated, 1)
		assert.Equal(t, 1, reconciler.calls)
	})

	t.Run("second paid record leaves the axis alone and still reaches the reconciler", func(t *testing.T) {
		impl, bookings, _, reconciler := newSettleFixture(t)

		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.MarkPaid())
		rec := newPendingRecord(t, b)

		require.NoError(t, impl.settle(ctx, nil, b, rec, OutcomePaid))
		assert.Equal(t, payment.StatusPaid, rec.Status())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, 0, bookings.updates)
		// The reconciler sees both paid records and files the anomaly.
		assert.Equal(t, 1, reconciler.calls)
	})
}
