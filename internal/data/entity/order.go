package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	Name     string       `json:"name"`
	Category MenuCategory `json:"category"`
	Quantity int          `json:"quantity"`
	Price    float64      `json:"price"`
}

// Order is a purchase of menu items against a lounge, optionally tied to a
// booking. The item list and TotalAmount are fixed at creation.
type Order struct {
	Base
	UserID              uuid.UUID   `db:"user_id"`
	LoungeID            uuid.UUID   `db:"lounge_id"`
	BookingID           *uuid.UUID  `db:"booking_id"`
	Items               []OrderItem `db:"items"`
	TotalAmount         float64     `db:"total_amount"`
	Status              OrderStatus `db:"status"`
	SpecialInstructions *string     `db:"special_instructions"`
	PreparedAt          *time.Time  `db:"prepared_at"`
	DeliveredAt         *time.Time  `db:"delivered_at"`
}

func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// ApplyStatus sets the order status. Orders are not a strict state machine:
// staff may set any valid status directly. Entering preparing or delivered
// stamps the matching timestamp the first time only.
func (o *Order) ApplyStatus(status OrderStatus, now time.Time) {
	o.Status = status
	o.UpdatedAt = now

	if status == OrderStatusPreparing && o.PreparedAt == nil {
		t := now
		o.PreparedAt = &t
	}
	if status == OrderStatusDelivered && o.DeliveredAt == nil {
		t := now
		o.DeliveredAt = &t
	}
}

// PriceOrder sums line item price times quantity.
func PriceOrder(items []OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
