//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/payment"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/shared"
	"rentwheels/tests/common/builder"
	commandsmock "rentwheels/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcilerMocks struct {
	bookingRepo *commandsmock.MockBookingRepository
	paymentRepo *commandsmock.MockPaymentRepository
	anomalyRepo *commandsmock.MockAnomalyRepository
}

func newReconciler(t *testing.T) (commands.ReconcilerCommands, reconcilerMocks, *clock.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := reconcilerMocks{
		bookingRepo: commandsmock.NewMockBookingRepository(ctrl),
		paymentRepo: commandsmock.NewMockPaymentRepository(ctrl),
		anomalyRepo: commandsmock.NewMockAnomalyRepository(ctrl),
	}
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	rc := commands.NewReconcilerCommands(m.bookingRepo, m.paymentRepo, m.anomalyRepo, nil, clk)
	return rc, m, clk
}

func pendingBooking(t *testing.T) *booking.Booking {
	t.Helper()
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	return b
}

func paidRecord(t *testing.T, bookingID uuid.UUID, now time.Time) *payment.Record {
	t.Helper()
	rec, err := payment.NewRecord(bookingID, payment.MethodEVC, booking.MustMoney(75060), "+258841234567", now)
	require.NoError(t, err)
	require.NoError(t, rec.MarkPaid(now))
	return rec
}

// ================================================================================
// TestReconciler_OnPaymentSettled
// ================================================================================

func TestReconciler_OnPaymentSettled(t *testing.T) {
	ctx := context.Background()

	t.Run("settled payment on a pending booking confirms it", func(t *testing.T) {
		rc, m, _ := newReconciler(t)

		b := pendingBooking(t)
		require.NoError(t, b.MarkPaid())

		m.bookingRepo.EXPECT().UpdateStatuses(gomock.Any(), gomock.Any(), b).Return(nil).Times(1)
		m.paymentRepo.EXPECT().CountPaid(gomock.Any(), gomock.Any(), b.ID()).Return(1, nil).Times(1)

		require.NoError(t, rc.OnPaymentSettled(ctx, nil, b))
		assert.Equal(t, booking.RentalConfirmed, b.RentalStatus())
	})

	t.Run("already confirmed booking is left alone", func(t *testing.T) {
		rc, m, _ := newReconciler(t)

		b := pendingBooking(t)
		require.NoError(t, b.MarkPaid())
		require.NoError(t, b.Confirm())

		m.paymentRepo.EXPECT().CountPaid(gomock.Any(), gomock.Any(), b.ID()).Return(1, nil).Times(1)

		require.NoError(t, rc.OnPaymentSettled(ctx, nil, b))
		assert.Equal(t, booking.RentalConfirmed, b.RentalStatus())
	})

	t.Run("confirmed booking with failed payment files an anomaly", func(t *testing.T) {
		rc, m, _ := newReconciler(t)

		b := pendingBooking(t)
		require.NoError(t, b.ForceRentalStatus(booking.RentalConfirmed))
		require.NoError(t, b.ForcePaymentStatus(booking.PaymentFailed))

		m.paymentRepo.EXPECT().CountPaid(gomock.Any(), gomock.Any(), b.ID()).Return(0, nil).Times(1)

		var filed shared.Anomaly
		m.anomalyRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Querier, a shared.Anomaly) error {
				filed = a
				return nil
			}).Times(1)

		require.NoError(t, rc.OnPaymentSettled(ctx, nil, b))
		assert.Equal(t, shared.AnomalyConfirmedWithFailedPayment, filed.Kind)
		assert.Equal(t, b.ID(), filed.BookingID)
		// Surfaced, never auto-corrected
		assert.Equal(t, booking.RentalConfirmed, b.RentalStatus())
		assert.Equal(t, booking.PaymentFailed, b.PaymentStatus())
	})

	t.Run("more than one paid record files a double settlement anomaly", func(t *testing.T) {
		rc, m, _ := newReconciler(t)

		b := pendingBooking(t)
		require.NoError(t, b.MarkPaid())
		require.NoError(t, b.Confirm())

		m.paymentRepo.EXPECT().CountPaid(gomock.Any(), gomock.Any(), b.ID()).Return(2, nil).Times(1)

		var filed shared.Anomaly
		m.anomalyRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Querier, a shared.Anomaly) error {
				filed = a
				return nil
			}).Times(1)

		require.NoError(t, rc.OnPaymentSettled(ctx, nil, b))
		assert.Equal(t, shared.AnomalyDoubleSettlement, filed.Kind)
	})

	t.Run("error: persistence failure surfaces as database failure", func(t *testing.T) {
		rc, m, _ := newReconciler(t)

		b := pendingBooking(t)
		require.NoError(t, b.MarkPaid())

		m.bookingRepo.EXPECT().
			UpdateStatuses(gomock.Any(), gomock.Any(), b).
			Return(errs.New("connection reset")).Times(1)

		err := rc.OnPaymentSettled(ctx, nil, b)
		assert.ErrorIs(t, err, commands.ErrDatabaseFailure)
	})
}

// ================================================================================
// TestReconciler_OnBookingCancelled
// ================================================================================

func TestReconciler_OnBookingCancelled(t *testing.T) {
	ctx := context.Background()

	t.Run("paid record is refunded alongside the booking", func(t *testing.T) {
		rc, m, clk := newReconciler(t)

		b := pendingBooking(t)
		require.NoError(t, b.MarkPaid())
		require.NoError(t, b.Confirm())
		require.NoError(t, b.Cancel())

		rec := paidRecord(t, b.ID(), clk.Now())
		m.paymentRepo.EXPECT().
			FindByBookingID(gomock.Any(), gomock.Any(), b.ID()).
			Return([]*payment.Record{rec}, nil).Times(1)
		m.paymentRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), rec).Return(nil).Times(1)

		require.NoError(t, rc.OnBookingCancelled(ctx, nil, b))
		assert.Equal(t, payment.StatusRefunded, rec.Status())
		assert.Equal(t, booking.PaymentRefunded, b.PaymentStatus())
	})

	t.Run("unsettled attempts are not touched", func(t *testing.T) {
		rc, m, clk := newReconciler(t)

		b := pendingBooking(t)
		require.NoError(t, b.Cancel())

		rec, err := payment.NewRecord(b.ID(), payment.MethodEVC, booking.MustMoney(75060), "+258841234567", clk.Now())
		require.NoError(t, err)
		m.paymentRepo.EXPECT().
			FindByBookingID(gomock.Any(), gomock.Any(), b.ID()).
			Return([]*payment.Record{rec}, nil).Times(1)

		require.NoError(t, rc.OnBookingCancelled(ctx, nil, b))
		assert.Equal(t, payment.StatusPending, rec.Status())
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
	})

	t.Run("error: lookup failure surfaces as database failure", func(t *testing.T) {
		rc, m, _ := newReconciler(t)

		b := pendingBooking(t)
		require.NoError(t, b.Cancel())

		m.paymentRepo.EXPECT().
			FindByBookingID(gomock.Any(), gomock.Any(), b.ID()).
			Return(nil, errs.New("connection reset")).Times(1)

		err := rc.OnBookingCancelled(ctx, nil, b)
		assert.ErrorIs(t, err, commands.ErrDatabaseFailure)
	})
}
