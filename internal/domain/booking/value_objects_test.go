//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rentwheels/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		assert.ErrorIs(t, err, booking.ErrNegativeAmount)
	})

	t.Run("zero is valid", func(t *testing.T) {
		m, err := booking.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Cents())
	})

	t.Run("add and equals", func(t *testing.T) {
		a := booking.MustMoney(100)
		b := booking.MustMoney(250)
		assert.Equal(t, int64(350), a.Add(b).Cents())
		assert.True(t, a.Equals(booking.MustMoney(100)))
		assert.False(t, a.Equals(b))
	})

	t.Run("MustMoney panics on negative", func(t *testing.T) {
		assert.Panics(t, func() { booking.MustMoney(-5) })
	})
}

func TestRentalPeriod(t *testing.T) {
	pickup := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("dropoff must be after pickup", func(t *testing.T) {
		_, err := booking.NewRentalPeriod(pickup, pickup)
		assert.ErrorIs(t, err, booking.ErrInvalidRange)

		_, err = booking.NewRentalPeriod(pickup, pickup.Add(-time.Hour))
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("day counting", func(t *testing.T) {
		cases := []struct {
			name string
			d    time.Duration
			want int
		}{
			{"one hour counts as one day", time.Hour, 1},
			{"exactly one day", 24 * time.Hour, 1},
			{"one day and a minute rounds up", 24*time.Hour + time.Minute, 2},
			{"two days and an hour rounds up", 2*24*time.Hour + time.Hour, 3},
			{"exactly five days", 5 * 24 * time.Hour, 5},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p, err := booking.NewRentalPeriod(pickup, pickup.Add(tc.d))
				require.NoError(t, err)
				assert.Equal(t, tc.want, p.Days())
			})
		}
	})
}

func TestPriceBreakdownValidate(t *testing.T) {
	valid := booking.PriceBreakdown{
		Days:           5,
		SubtotalCents:  64500,
		InsuranceCents: 5000,
		ServicesCents:  0,
		TaxCents:       5560,
		TotalCents:     75060,
	}

	t.Run("valid breakdown", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
		assert.Equal(t, int64(75060), valid.Total().Cents())
	})

	t.Run("total must equal component sum", func(t *testing.T) {
		bd := valid
		bd.TotalCents++
		assert.ErrorIs(t, bd.Validate(), booking.ErrBreakdownMismatch)
	})

	t.Run("zero days is invalid", func(t *testing.T) {
		bd := valid
		bd.Days = 0
		assert.ErrorIs(t, bd.Validate(), booking.ErrInvalidRange)
	})

	t.Run("negative component is invalid", func(t *testing.T) {
		bd := valid
		bd.TaxCents = -1
		bd.TotalCents = bd.SubtotalCents + bd.InsuranceCents + bd.ServicesCents + bd.TaxCents
		assert.ErrorIs(t, bd.Validate(), booking.ErrNegativeAmount)
	})
}
