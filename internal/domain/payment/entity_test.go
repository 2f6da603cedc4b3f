//go:build unit

package payment_test

import (
	"strings"
	"testing"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, method payment.Method, senderRef string) *payment.Record {
	t.Helper()
	rec, err := payment.NewRecord(uuid.New(), method, booking.MustMoney(75060), senderRef,
		time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return rec
}

func TestNewRecord(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		rec := newRecord(t, payment.MethodCard, "")

		assert.NotEqual(t, uuid.Nil, rec.ID())
		assert.Equal(t, payment.StatusPending, rec.Status())
		assert.Equal(t, int64(75060), rec.Amount().Cents())
		assert.Nil(t, rec.SettledAt())
		assert.True(t, strings.HasPrefix(rec.TransactionID(), "TXN-"))
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := payment.NewRecord(uuid.New(), "barter", booking.MustMoney(100), "", time.Now())
		assert.ErrorIs(t, err, payment.ErrUnknownMethod)
	})

	t.Run("mobile money requires a sender reference", func(t *testing.T) {
		_, err := payment.NewRecord(uuid.New(), payment.MethodEVC, booking.MustMoney(100), "", time.Now())
		assert.ErrorIs(t, err, payment.ErrMissingSenderRef)

		rec := newRecord(t, payment.MethodEVC, "+258841234567")
		assert.Equal(t, "+258841234567", rec.SenderRef())
	})

	t.Run("transaction ids are unique per attempt", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 50 {
			rec := newRecord(t, payment.MethodCash, "")
			_, dup := seen[rec.TransactionID()]
			require.False(t, dup)
			seen[rec.TransactionID()] = struct{}{}
		}
	})
}

func TestRecordTransitions(t *testing.T) {
	settled := time.Date(2026, 8, 25, 12, 30, 0, 0, time.UTC)

	t.Run("pending settles paid", func(t *testing.T) {
		rec := newRecord(t, payment.MethodCard, "")
		require.NoError(t, rec.MarkPaid(settled))
		assert.Equal(t, payment.StatusPaid, rec.Status())
		require.NotNil(t, rec.SettledAt())
		assert.Equal(t, settled, *rec.SettledAt())
		assert.True(t, rec.IsSettled())
	})

	t.Run("pending settles failed", func(t *testing.T) {
		rec := newRecord(t, payment.MethodCard, "")
		require.NoError(t, rec.MarkFailed(settled))
		assert.Equal(t, payment.StatusFailed, rec.Status())
		assert.True(t, rec.IsSettled())
	})

	t.Run("settled records reject a second settlement", func(t *testing.T) {
		rec := newRecord(t, payment.MethodCard, "")
		require.NoError(t, rec.MarkPaid(settled))
		assert.ErrorIs(t, rec.MarkPaid(settled), payment.ErrInvalidTransition)
		assert.ErrorIs(t, rec.MarkFailed(settled), payment.ErrInvalidTransition)

		rec = newRecord(t, payment.MethodCard, "")
		require.NoError(t, rec.MarkFailed(settled))
		assert.ErrorIs(t, rec.MarkPaid(settled), payment.ErrInvalidTransition)
	})

	t.Run("refund only from paid", func(t *testing.T) {
		rec := newRecord(t, payment.MethodCard, "")
		assert.ErrorIs(t, rec.Refund(settled), payment.ErrInvalidTransition)

		require.NoError(t, rec.MarkPaid(settled))
		require.NoError(t, rec.Refund(settled))
		assert.Equal(t, payment.StatusRefunded, rec.Status())
	})
}

func TestMethodTraits(t *testing.T) {
	cases := []struct {
		method       payment.Method
		instrument   bool
		senderRef    bool
		outOfBand    bool
	}{
		{payment.MethodEVC, false, true, true},
		{payment.MethodCard, true, false, true},
		{payment.MethodCash, false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.method.String(), func(t *testing.T) {
			assert.True(t, tc.method.IsValid())
			assert.Equal(t, tc.instrument, tc.method.RequiresInstrument())
			assert.Equal(t, tc.senderRef, tc.method.RequiresSenderRef())
			assert.Equal(t, tc.outOfBand, tc.method.SettlesOutOfBand())
		})
	}

	assert.False(t, payment.Method("barter").IsValid())
}
