package response

import (
	"time"

	"lounge-booking/internal/data/entity"
)

type LoungeResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Description  *string             `json:"description,omitempty"`
	Capacity     int                 `json:"capacity"`
	PricePerHour float64             `json:"price_per_hour"`
	Amenities    []string            `json:"amenities"`
	Images       []string            `json:"images,omitempty"`
	Status       entity.LoungeStatus `json:"status"`
	Location     *string             `json:"location,omitempty"`
	Floor        *int                `json:"floor,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type LoungeListResponse struct {
	Count   int              `json:"count"`
	Lounges []LoungeResponse `json:"lounges"`
}

// AvailabilityResponse answers a slot check against one lounge. Conflicts
// lists the bookings blocking the requested window.
type AvailabilityResponse struct {
	Available bool              `json:"available"`
	Lounge    LoungeResponse    `json:"lounge"`
	Conflicts []BookingResponse `json:"conflicts,omitempty"`
}

func LoungeToResponse(lounge *entity.Lounge) LoungeResponse {
	return LoungeResponse{
		ID:           lounge.ID.String(),
		Name:         lounge.Name,
		Description:  lounge.Description,
		Capacity:     lounge.Capacity,
		PricePerHour: lounge.PricePerHour,
		Amenities:    lounge.Amenities,
		Images:       lounge.Images,
		Status:       lounge.Status,
		Location:     lounge.Location,
		Floor:        lounge.Floor,
		CreatedAt:    lounge.CreatedAt,
		UpdatedAt:    lounge.UpdatedAt,
	}
}

func LoungesToResponse(lounges []*entity.Lounge) LoungeListResponse {
	items := make([]LoungeResponse, len(lounges))
	for i, lounge := range lounges {
		items[i] = LoungeToResponse(lounge)
	}
	return LoungeListResponse{Count: len(items), Lounges: items}
}
