package request

import "time"

type CreateBookingRequest struct {
	LoungeID        string    `json:"lounge_id" validate:"required,uuid4"`
	StartTime       time.Time `json:"start_time" validate:"required"`
	EndTime         time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	NumberOfGuests  int       `json:"number_of_guests" validate:"required,min=1"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status             string  `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
}
