package request

type CreateLoungeRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	Description  *string  `json:"description,omitempty"`
	Capacity     int      `json:"capacity" validate:"required,min=1"`
	PricePerHour float64  `json:"price_per_hour" validate:"required,gt=0"`
	Amenities    []string `json:"amenities,omitempty"`
	Images       []string `json:"images,omitempty"`
	Status       string   `json:"status,omitempty" validate:"omitempty,oneof=available maintenance unavailable"`
	Location     *string  `json:"location,omitempty"`
	Floor        *int     `json:"floor,omitempty"`
}

type UpdateLoungeRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description  *string  `json:"description,omitempty"`
	Capacity     *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	PricePerHour *float64 `json:"price_per_hour,omitempty" validate:"omitempty,gt=0"`
	Amenities    []string `json:"amenities,omitempty"`
	Images       []string `json:"images,omitempty"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=available maintenance unavailable"`
	Location     *string  `json:"location,omitempty"`
	Floor        *int     `json:"floor,omitempty"`
}

// LoungeListQuery collects the supported query string filters.
type LoungeListQuery struct {
	Status      string
	MinCapacity int
	MaxPrice    float64
	Sort        string
}

type CheckAvailabilityRequest struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}
