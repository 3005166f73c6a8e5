package request

type CreateMenuItemRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=100"`
	Description     *string  `json:"description,omitempty"`
	Category        string   `json:"category" validate:"required,oneof=food drink snack other"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	Available       *bool    `json:"available,omitempty"`
	Image           *string  `json:"image,omitempty"`
	Allergens       []string `json:"allergens,omitempty"`
	PreparationTime int      `json:"preparation_time,omitempty" validate:"omitempty,min=0"`
}

type UpdateMenuItemRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description     *string  `json:"description,omitempty"`
	Category        *string  `json:"category,omitempty" validate:"omitempty,oneof=food drink snack other"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Available       *bool    `json:"available,omitempty"`
	Image           *string  `json:"image,omitempty"`
	Allergens       []string `json:"allergens,omitempty"`
	PreparationTime *int     `json:"preparation_time,omitempty" validate:"omitempty,min=0"`
}
