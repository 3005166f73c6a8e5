package request

type CreateFeedbackRequest struct {
	LoungeID          string  `json:"lounge_id" validate:"required,uuid4"`
	BookingID         *string `json:"booking_id,omitempty" validate:"omitempty,uuid4"`
	Rating            int     `json:"rating" validate:"required,min=1,max=5"`
	ServiceRating     *int    `json:"service_rating,omitempty" validate:"omitempty,min=1,max=5"`
	CleanlinessRating *int    `json:"cleanliness_rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment           *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

type RespondFeedbackRequest struct {
	Response string `json:"response" validate:"required,min=1,max=1000"`
}
