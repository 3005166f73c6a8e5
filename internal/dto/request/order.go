package request

type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid4"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	LoungeID            string             `json:"lounge_id" validate:"required,uuid4"`
	BookingID           *string            `json:"booking_id,omitempty" validate:"omitempty,uuid4"`
	Items               []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	SpecialInstructions *string            `json:"special_instructions,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending preparing ready delivered cancelled"`
}
