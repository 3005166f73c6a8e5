package response

import (
	"time"

	"lounge-booking/internal/data/entity"
)

type MenuItemResponse struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Description     *string             `json:"description,omitempty"`
	Category        entity.MenuCategory `json:"category"`
	Price           float64             `json:"price"`
	Available       bool                `json:"available"`
	Image           *string             `json:"image,omitempty"`
	Allergens       []string            `json:"allergens,omitempty"`
	PreparationTime int                 `json:"preparation_time"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type MenuListResponse struct {
	Count int                `json:"count"`
	Items []MenuItemResponse `json:"items"`
}

func MenuItemToResponse(item *entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Description:     item.Description,
		Category:        item.Category,
		Price:           item.Price,
		Available:       item.Available,
		Image:           item.Image,
		Allergens:       item.Allergens,
		PreparationTime: item.PreparationTime,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func MenuItemsToResponse(items []*entity.MenuItem) MenuListResponse {
	resp := make([]MenuItemResponse, len(items))
	for i, item := range items {
		resp[i] = MenuItemToResponse(item)
	}
	return MenuListResponse{Count: len(resp), Items: resp}
}
