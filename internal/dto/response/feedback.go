package response

import (
	"time"

	"lounge-booking/internal/data/entity"
)

type FeedbackResponse struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	LoungeID          string     `json:"lounge_id"`
	BookingID         *string    `json:"booking_id,omitempty"`
	Rating            int        `json:"rating"`
	ServiceRating     *int       `json:"service_rating,omitempty"`
	CleanlinessRating *int       `json:"cleanliness_rating,omitempty"`
	Comment           *string    `json:"comment,omitempty"`
	Response          *string    `json:"response,omitempty"`
	RespondedAt       *time.Time `json:"responded_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type FeedbackListResponse struct {
	Count   int                `json:"count"`
	Entries []FeedbackResponse `json:"entries"`
}

// FeedbackStatistics summarizes ratings over one lounge's feedback.
type FeedbackStatistics struct {
	Count          int     `json:"count"`
	AverageRating  float64 `json:"average_rating"`
	AvgService     float64 `json:"avg_service,omitempty"`
	AvgCleanliness float64 `json:"avg_cleanliness,omitempty"`
}

type LoungeFeedbackResponse struct {
	Feedback   []FeedbackResponse `json:"feedback"`
	Statistics FeedbackStatistics `json:"statistics"`
}

func FeedbackToResponse(feedback *entity.Feedback) FeedbackResponse {
	var bookingID *string
	if feedback.BookingID != nil {
		id := feedback.BookingID.String()
		bookingID = &id
	}

	return FeedbackResponse{
		ID:                feedback.ID.String(),
		UserID:            feedback.UserID.String(),
		LoungeID:          feedback.LoungeID.String(),
		BookingID:         bookingID,
		Rating:            feedback.Rating,
		ServiceRating:     feedback.ServiceRating,
		CleanlinessRating: feedback.CleanlinessRating,
		Comment:           feedback.Comment,
		Response:          feedback.Response,
		RespondedAt:       feedback.RespondedAt,
		CreatedAt:         feedback.CreatedAt,
	}
}

func FeedbackEntriesToResponse(entries []*entity.Feedback) FeedbackListResponse {
	items := make([]FeedbackResponse, len(entries))
	for i, feedback := range entries {
		items[i] = FeedbackToResponse(feedback)
	}
	return FeedbackListResponse{Count: len(items), Entries: items}
}
