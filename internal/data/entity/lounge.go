package entity

type LoungeStatus string

const (
	LoungeStatusAvailable   LoungeStatus = "available"
	LoungeStatusMaintenance LoungeStatus = "maintenance"
	LoungeStatusUnavailable LoungeStatus = "unavailable"
)

func (s LoungeStatus) Valid() bool {
	switch s {
	case LoungeStatusAvailable, LoungeStatusMaintenance, LoungeStatusUnavailable:
		return true
	}
	return false
}

type Lounge struct {
	Base
	Name         string       `db:"name"`
	Description  *string      `db:"description"`
	Capacity     int          `db:"capacity"`
	PricePerHour float64      `db:"price_per_hour"`
	Amenities    []string     `db:"amenities"`
	Images       []string     `db:"images"`
	Status       LoungeStatus `db:"status"`
	Location     *string      `db:"location"`
	Floor        *int         `db:"floor"`
}

// IsBookable reports whether new bookings may be taken for the lounge.
func (l *Lounge) IsBookable() bool {
	return l.Status == LoungeStatusAvailable
}
