package usecase

import (
	"context"
	"fmt"
	"time"

	"lounge-booking/internal/data/entity"
	"lounge-booking/internal/data/repository"
	"lounge-booking/internal/dto/request"
	"lounge-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MenuService interface {
	ListItems(ctx context.Context, category string, available *bool) (*response.MenuListResponse, error)
	GetItem(ctx context.Context, itemID string) (*response.MenuItemResponse, error)

	// Admin endpoints
	CreateItem(ctx context.Context, req *request.CreateMenuItemRequest) (*response.MenuItemResponse, error)
	UpdateItem(ctx context.Context, itemID string, req *request.UpdateMenuItemRequest) (*response.MenuItemResponse, error)
	DeleteItem(ctx context.Context, itemID string) error
}

type menuService struct {
	menuRepo repository.MenuRepository
	log      *zap.Logger
}

func NewMenuService(menuRepo repository.MenuRepository, log *zap.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		log:      log.With(zap.String("service", "menu")),
	}
}

func (s *menuService) ListItems(ctx context.Context, category string, available *bool) (*response.MenuListResponse, error) {
	if category != "" && !entity.MenuCategory(category).Valid() {
		return nil, fmt.Errorf("%w: unknown category %s", ErrInvalidInput, category)
	}

	items, err := s.menuRepo.FindAll(ctx, repository.MenuFilter{
		Category:  entity.MenuCategory(category),
		Available: available,
	})
	if err != nil {
		s.log.Error("Failed to list menu items", zap.Error(err))
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	resp := response.MenuItemsToResponse(items)
	return &resp, nil
}

func (s *menuService) GetItem(ctx context.Context, itemID string) (*response.MenuItemResponse, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) CreateItem(ctx context.Context, req *request.CreateMenuItemRequest) (*response.MenuItemResponse, error) {
	existing, err := s.menuRepo.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check item name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("check item name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: menu item name already in use", ErrConflict)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	now := time.Now()
	item := &entity.MenuItem{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            req.Name,
		Description:     req.Description,
		Category:        entity.MenuCategory(req.Category),
		Price:           req.Price,
		Available:       available,
		Image:           req.Image,
		Allergens:       req.Allergens,
		PreparationTime: req.PreparationTime,
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		s.log.Error("Failed to create menu item", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	s.log.Info("Menu item created",
		zap.String("menu_item_id", item.ID.String()),
		zap.String("name", item.Name))

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) UpdateItem(ctx context.Context, itemID string, req *request.UpdateMenuItemRequest) (*response.MenuItemResponse, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != item.Name {
		existing, err := s.menuRepo.FindByName(ctx, *req.Name)
		if err != nil {
			return nil, fmt.Errorf("check item name: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: menu item name already in use", ErrConflict)
		}
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Category != nil {
		item.Category = entity.MenuCategory(*req.Category)
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if req.Image != nil {
		item.Image = req.Image
	}
	if req.Allergens != nil {
		item.Allergens = req.Allergens
	}
	if req.PreparationTime != nil {
		item.PreparationTime = *req.PreparationTime
	}
	item.UpdatedAt = time.Now()

	if err := s.menuRepo.Update(ctx, item); err != nil {
		s.log.Error("Failed to update menu item", zap.Error(err), zap.String("menu_item_id", itemID))
		return nil, fmt.Errorf("update menu item: %w", err)
	}

	s.log.Info("Menu item updated", zap.String("menu_item_id", itemID))

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) DeleteItem(ctx context.Context, itemID string) error {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return err
	}

	if err := s.menuRepo.Delete(ctx, item.ID); err != nil {
		s.log.Error("Failed to delete menu item", zap.Error(err), zap.String("menu_item_id", itemID))
		return fmt.Errorf("delete menu item: %w", err)
	}

	s.log.Info("Menu item deleted", zap.String("menu_item_id", itemID))
	return nil
}

func (s *menuService) findItem(ctx context.Context, itemID string) (*entity.MenuItem, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid menu item ID format", ErrInvalidInput)
	}

	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find menu item", zap.Error(err), zap.String("menu_item_id", itemID))
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %s", ErrNotFound, itemID)
	}

	return item, nil
}
