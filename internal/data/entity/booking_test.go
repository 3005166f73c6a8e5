package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	booking := &Booking{
		StartTime: base,
		EndTime:   base.Add(2 * time.Hour), // 10:00 - 12:00
	}

	t.Run("identical interval overlaps", func(t *testing.T) {
		assert.True(t, booking.Overlaps(base, base.Add(2*time.Hour)))
	})

	t.Run("candidate starts during existing", func(t *testing.T) {
		assert.True(t, booking.Overlaps(base.Add(time.Hour), base.Add(3*time.Hour)))
	})

	t.Run("candidate ends during existing", func(t *testing.T) {
		assert.True(t, booking.Overlaps(base.Add(-time.Hour), base.Add(time.Hour)))
	})

	t.Run("candidate fully contains existing", func(t *testing.T) {
		assert.True(t, booking.Overlaps(base.Add(-time.Hour), base.Add(3*time.Hour)))
	})

	t.Run("candidate fully inside existing", func(t *testing.T) {
		assert.True(t, booking.Overlaps(base.Add(30*time.Minute), base.Add(90*time.Minute)))
	})

	t.Run("back to back after does not overlap", func(t *testing.T) {
		assert.False(t, booking.Overlaps(base.Add(2*time.Hour), base.Add(4*time.Hour)))
	})

	t.Run("back to back before does not overlap", func(t *testing.T) {
		assert.False(t, booking.Overlaps(base.Add(-2*time.Hour), base))
	})

	t.Run("disjoint does not overlap", func(t *testing.T) {
		assert.False(t, booking.Overlaps(base.Add(5*time.Hour), base.Add(6*time.Hour)))
	})
}

func TestBookingCanBeCancelled(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("exactly 24 hours before start", func(t *testing.T) {
		b := &Booking{Status: BookingStatusPending, StartTime: now.Add(24 * time.Hour)}
		assert.True(t, b.CanBeCancelled(now))
	})

	t.Run("23h59m before start", func(t *testing.T) {
		b := &Booking{Status: BookingStatusPending, StartTime: now.Add(24*time.Hour - time.Minute)}
		assert.False(t, b.CanBeCancelled(now))
	})

	t.Run("48 hours before start", func(t *testing.T) {
		b := &Booking{Status: BookingStatusConfirmed, StartTime: now.Add(48 * time.Hour)}
		assert.True(t, b.CanBeCancelled(now))
	})

	t.Run("already cancelled", func(t *testing.T) {
		b := &Booking{Status: BookingStatusCancelled, StartTime: now.Add(48 * time.Hour)}
		assert.False(t, b.CanBeCancelled(now))
	})
}

func TestBookingStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		allowed  bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestBookingApplyStatusStampsOnce(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	b := &Booking{Status: BookingStatusPending}
	b.ApplyStatus(BookingStatusConfirmed, now)
	assert.NotNil(t, b.ConfirmedAt)
	assert.Equal(t, now, *b.ConfirmedAt)

	later := now.Add(time.Hour)
	b.ApplyStatus(BookingStatusCancelled, later)
	assert.NotNil(t, b.CancelledAt)
	assert.Equal(t, later, *b.CancelledAt)

	// Timestamps stay fixed at the first entry into each state.
	b.ApplyStatus(BookingStatusConfirmed, later.Add(time.Hour))
	assert.Equal(t, now, *b.ConfirmedAt)
	assert.Equal(t, later, *b.CancelledAt)
}

func TestPriceBooking(t *testing.T) {
	lounge := &Lounge{PricePerHour: 150}
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("two and a half hours", func(t *testing.T) {
		assert.InDelta(t, 375.0, PriceBooking(lounge, start, start.Add(2*time.Hour+30*time.Minute)), 1e-9)
	})

	t.Run("one hour", func(t *testing.T) {
		assert.InDelta(t, 150.0, PriceBooking(lounge, start, start.Add(time.Hour)), 1e-9)
	})

	t.Run("fractional hours keep full precision", func(t *testing.T) {
		assert.InDelta(t, 150.0/3, PriceBooking(lounge, start, start.Add(20*time.Minute)), 1e-9)
	})

	t.Run("free lounge", func(t *testing.T) {
		free := &Lounge{PricePerHour: 0}
		assert.Zero(t, PriceBooking(free, start, start.Add(3*time.Hour)))
	})
}
