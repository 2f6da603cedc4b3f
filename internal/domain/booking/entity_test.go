//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(t *testing.T, mutate func(*builder.BookingBuilder)) *booking.Booking {
	t.Helper()
	b := builder.NewBookingBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	bk, err := b.BuildDomain()
	require.NoError(t, err)
	return bk
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		bk := newBooking(t, nil)

		assert.NotEqual(t, uuid.Nil, bk.ID())
		assert.Equal(t, booking.RentalPending, bk.RentalStatus())
		assert.Equal(t, booking.PaymentPending, bk.PaymentStatus())
		assert.Equal(t, bk.CreatedAt(), bk.UpdatedAt())
		assert.NoError(t, bk.Breakdown().Validate())
	})

	t.Run("invalid insurance tier", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.InsuranceTier = "platinum" }).
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrInvalidInsuranceTier)
	})

	t.Run("breakdown mismatch is rejected", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.Breakdown.TotalCents++ }).
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrBreakdownMismatch)
	})

	t.Run("service ids are deduplicated and sorted", func(t *testing.T) {
		bk := newBooking(t, func(b *builder.BookingBuilder) {
			b.ServiceIDs = []string{"gps", "child_seat", "gps", ""}
		})
		assert.Equal(t, []string{"child_seat", "gps"}, bk.ServiceIDs())
	})
}

func TestBookingRentalTransitions(t *testing.T) {
	t.Run("confirm requires settled payment", func(t *testing.T) {
		bk := newBooking(t, nil)
		assert.ErrorIs(t, bk.Confirm(), booking.ErrPaymentNotSettled)
		assert.Equal(t, booking.RentalPending, bk.RentalStatus())
	})

	t.Run("confirm after payment settles", func(t *testing.T) {
		bk := newBooking(t, nil)
		require.NoError(t, bk.MarkPaid())
		require.NoError(t, bk.Confirm())
		assert.Equal(t, booking.RentalConfirmed, bk.RentalStatus())
	})

	t.Run("cash path confirms without settlement", func(t *testing.T) {
		bk := newBooking(t, nil)
		require.NoError(t, bk.ConfirmWithoutSettlement())
		assert.Equal(t, booking.RentalConfirmed, bk.RentalStatus())
		assert.Equal(t, booking.PaymentPending, bk.PaymentStatus())
	})

	t.Run("complete only from confirmed", func(t *testing.T) {
		bk := newBooking(t, nil)
		assert.ErrorIs(t, bk.Complete(), booking.ErrInvalidTransition)

		require.NoError(t, bk.MarkPaid())
		require.NoError(t, bk.Confirm())
		require.NoError(t, bk.Complete())
		assert.Equal(t, booking.RentalCompleted, bk.RentalStatus())
	})

	t.Run("cancel from pending and confirmed", func(t *testing.T) {
		bk := newBooking(t, nil)
		require.NoError(t, bk.Cancel())
		assert.Equal(t, booking.RentalCancelled, bk.RentalStatus())

		bk = newBooking(t, nil)
		require.NoError(t, bk.MarkPaid())
		require.NoError(t, bk.Confirm())
		require.NoError(t, bk.Cancel())
		assert.Equal(t, booking.RentalCancelled, bk.RentalStatus())
	})

	t.Run("terminal states are closed", func(t *testing.T) {
		bk := newBooking(t, nil)
		require.NoError(t, bk.Cancel())
		assert.ErrorIs(t, bk.Confirm(), booking.ErrInvalidTransition)
		assert.ErrorIs(t, bk.Complete(), booking.ErrInvalidTransition)
		assert.ErrorIs(t, bk.Cancel(), booking.ErrInvalidTransition)
		assert.True(t, bk.RentalStatus().IsTerminal())
	})
}

func TestBookingPaymentTransitions(t *testing.T) {
	t.Run("failed payment reopens for retry", func(t *testing.T) {
		bk := newBooking(t, nil)
		require.NoError(t, bk.MarkPaymentFailed())
		require.NoError(t, bk.ResetPaymentPending())
		require.NoError(t, bk.MarkPaid())
		assert.Equal(t, booking.PaymentPaid, bk.PaymentStatus())
	})

	t.Run("refund only from paid", func(t *testing.T) {
		bk := newBooking(t, nil)
		assert.ErrorIs(t, bk.MarkRefunded(), booking.ErrInvalidTransition)

		require.NoError(t, bk.MarkPaid())
		require.NoError(t, bk.MarkRefunded())
		assert.Equal(t, booking.PaymentRefunded, bk.PaymentStatus())
	})

	t.Run("refunded is terminal on the payment axis", func(t *testing.T) {
		bk := newBooking(t, nil)
		require.NoError(t, bk.MarkPaid())
		require.NoError(t, bk.MarkRefunded())
		assert.ErrorIs(t, bk.MarkPaid(), booking.ErrInvalidTransition)
		assert.ErrorIs(t, bk.ResetPaymentPending(), booking.ErrInvalidTransition)
	})

	t.Run("cancel requires refund only when paid", func(t *testing.T) {
		bk := newBooking(t, nil)
		assert.False(t, bk.CancelRequiresRefund())
		require.NoError(t, bk.MarkPaid())
		assert.True(t, bk.CancelRequiresRefund())
	})
}

func TestBookingForcedOverrides(t *testing.T) {
	t.Run("force bypasses the transition table", func(t *testing.T) {
		bk := newBooking(t, nil)
		require.NoError(t, bk.Cancel())

		require.NoError(t, bk.ForceRentalStatus(booking.RentalConfirmed))
		assert.Equal(t, booking.RentalConfirmed, bk.RentalStatus())

		require.NoError(t, bk.ForcePaymentStatus(booking.PaymentPaid))
		assert.Equal(t, booking.PaymentPaid, bk.PaymentStatus())
	})

	t.Run("force still rejects unknown statuses", func(t *testing.T) {
		bk := newBooking(t, nil)
		assert.ErrorIs(t, bk.ForceRentalStatus("limbo"), booking.ErrInvalidTransition)
		assert.ErrorIs(t, bk.ForcePaymentStatus("limbo"), booking.ErrInvalidTransition)
	})
}

func TestBookingTouch(t *testing.T) {
	bk := newBooking(t, nil)
	later := bk.CreatedAt().Add(2 * time.Hour)
	bk.Touch(later)
	assert.Equal(t, later, bk.UpdatedAt())
	assert.NotEqual(t, bk.CreatedAt(), bk.UpdatedAt())
}

func TestBadges(t *testing.T) {
	assert.Equal(t, booking.Badge{Label: "Confirmed", Color: "blue"}, booking.BadgeForRentalStatus(booking.RentalConfirmed))
	assert.Equal(t, booking.Badge{Label: "Payment Failed", Color: "red"}, booking.BadgeForPaymentStatus(booking.PaymentFailed))
	assert.Equal(t, booking.Badge{Label: "Unknown", Color: "gray"}, booking.BadgeForRentalStatus("limbo"))
	assert.Equal(t, booking.Badge{Label: "Unknown", Color: "gray"}, booking.BadgeForPaymentStatus("limbo"))
}
