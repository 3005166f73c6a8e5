package response

import (
	"math"
	"time"

	"lounge-booking/internal/data/entity"
)

type BookingResponse struct {
	ID                 string               `json:"id"`
	UserID             string               `json:"user_id"`
	LoungeID           string               `json:"lounge_id"`
	LoungeName         string               `json:"lounge_name,omitempty"`
	StartTime          time.Time            `json:"start_time"`
	EndTime            time.Time            `json:"end_time"`
	DurationHours      float64              `json:"duration_hours"`
	NumberOfGuests     int                  `json:"number_of_guests"`
	TotalPrice         float64              `json:"total_price"`
	Status             entity.BookingStatus `json:"status"`
	SpecialRequests    *string              `json:"special_requests,omitempty"`
	CancellationReason *string              `json:"cancellation_reason,omitempty"`
	ConfirmedAt        *time.Time           `json:"confirmed_at,omitempty"`
	CancelledAt        *time.Time           `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

type BookingListResponse struct {
	Count    int               `json:"count"`
	Bookings []BookingResponse `json:"bookings"`
}

// Round2 rounds money for presentation. Stored values keep full precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round2(v float64) float64 { return Round2(v) }

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:                 booking.ID.String(),
		UserID:             booking.UserID.String(),
		LoungeID:           booking.LoungeID.String(),
		StartTime:          booking.StartTime,
		EndTime:            booking.EndTime,
		DurationHours:      round2(booking.DurationHours()),
		NumberOfGuests:     booking.NumberOfGuests,
		TotalPrice:         round2(booking.TotalPrice),
		Status:             booking.Status,
		SpecialRequests:    booking.SpecialRequests,
		CancellationReason: booking.CancellationReason,
		ConfirmedAt:        booking.ConfirmedAt,
		CancelledAt:        booking.CancelledAt,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) BookingListResponse {
	items := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		items[i] = BookingToResponse(booking)
	}
	return BookingListResponse{Count: len(items), Bookings: items}
}
