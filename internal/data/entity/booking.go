package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// bookingTransitions lists the allowed next states per current state.
// pending -> completed is allowed: admins may complete a booking directly
// without confirming it first.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusCompleted},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking reserves one lounge for one user over [StartTime, EndTime).
type Booking struct {
	Base
	UserID             uuid.UUID     `db:"user_id"`
	LoungeID           uuid.UUID     `db:"lounge_id"`
	StartTime          time.Time     `db:"start_time"`
	EndTime            time.Time     `db:"end_time"`
	NumberOfGuests     int           `db:"number_of_guests"`
	TotalPrice         float64       `db:"total_price"`
	Status             BookingStatus `db:"status"`
	SpecialRequests    *string       `db:"special_requests"`
	CancellationReason *string       `db:"cancellation_reason"`
	ConfirmedAt        *time.Time    `db:"confirmed_at"`
	CancelledAt        *time.Time    `db:"cancelled_at"`
}

// Overlaps reports whether [start, end) intersects the booking interval.
// Intervals are half-open: a booking ending exactly when another starts does
// not overlap it.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && start.Before(b.EndTime)
}

// CanBeCancelled holds when the booking is not already cancelled and starts
// at least 24 hours from now. The boundary is inclusive.
func (b *Booking) CanBeCancelled(now time.Time) bool {
	return b.Status != BookingStatusCancelled && b.StartTime.Sub(now) >= 24*time.Hour
}

func (b *Booking) DurationHours() float64 {
	return b.EndTime.Sub(b.StartTime).Hours()
}

// ApplyStatus moves the booking into the given state and stamps the
// transition timestamp the first time the state is entered.
func (b *Booking) ApplyStatus(status BookingStatus, now time.Time) {
	b.Status = status
	b.UpdatedAt = now

	if status == BookingStatusConfirmed && b.ConfirmedAt == nil {
		t := now
		b.ConfirmedAt = &t
	}
	if status == BookingStatusCancelled && b.CancelledAt == nil {
		t := now
		b.CancelledAt = &t
	}
}

// PriceBooking derives a booking price from real (fractional) hours times the
// lounge hourly rate. Full precision is kept; rounding happens at
// presentation time only.
func PriceBooking(lounge *Lounge, start, end time.Time) float64 {
	return end.Sub(start).Hours() * lounge.PricePerHour
}
