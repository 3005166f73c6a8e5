package entity

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	BaseSimple
	UserID            uuid.UUID  `db:"user_id"`
	LoungeID          uuid.UUID  `db:"lounge_id"`
	BookingID         *uuid.UUID `db:"booking_id"`
	Rating            int        `db:"rating"` // 1-5
	ServiceRating     *int       `db:"service_rating"`
	CleanlinessRating *int       `db:"cleanliness_rating"`
	Comment           *string    `db:"comment"`
	Response          *string    `db:"response"`
	RespondedAt       *time.Time `db:"responded_at"`
}
