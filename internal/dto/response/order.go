package response

import (
	"time"

	"lounge-booking/internal/data/entity"
)

type OrderItemResponse struct {
	Name     string              `json:"name"`
	Category entity.MenuCategory `json:"category"`
	Quantity int                 `json:"quantity"`
	Price    float64             `json:"price"`
	Subtotal float64             `json:"subtotal"`
}

type OrderResponse struct {
	ID                  string              `json:"id"`
	UserID              string              `json:"user_id"`
	LoungeID            string              `json:"lounge_id"`
	BookingID           *string             `json:"booking_id,omitempty"`
	Items               []OrderItemResponse `json:"items"`
	TotalItems          int                 `json:"total_items"`
	TotalAmount         float64             `json:"total_amount"`
	Status              entity.OrderStatus  `json:"status"`
	SpecialInstructions *string             `json:"special_instructions,omitempty"`
	PreparedAt          *time.Time          `json:"prepared_at,omitempty"`
	DeliveredAt         *time.Time          `json:"delivered_at,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

type OrderListResponse struct {
	Count  int             `json:"count"`
	Orders []OrderResponse `json:"orders"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			Name:     item.Name,
			Category: item.Category,
			Quantity: item.Quantity,
			Price:    item.Price,
			Subtotal: round2(item.Price * float64(item.Quantity)),
		}
	}

	var bookingID *string
	if order.BookingID != nil {
		id := order.BookingID.String()
		bookingID = &id
	}

	return OrderResponse{
		ID:                  order.ID.String(),
		UserID:              order.UserID.String(),
		LoungeID:            order.LoungeID.String(),
		BookingID:           bookingID,
		Items:               items,
		TotalItems:          order.TotalItems(),
		TotalAmount:         round2(order.TotalAmount),
		Status:              order.Status,
		SpecialInstructions: order.SpecialInstructions,
		PreparedAt:          order.PreparedAt,
		DeliveredAt:         order.DeliveredAt,
		CreatedAt:           order.CreatedAt,
		UpdatedAt:           order.UpdatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) OrderListResponse {
	items := make([]OrderResponse, len(orders))
	for i, order := range orders {
		items[i] = OrderToResponse(order)
	}
	return OrderListResponse{Count: len(items), Orders: items}
}
