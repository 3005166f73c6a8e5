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

type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetMyOrders(ctx context.Context, userID uuid.UUID, status string) (*response.OrderListResponse, error)
	GetOrder(ctx context.Context, userID uuid.UUID, role entity.UserRole, orderID string) (*response.OrderResponse, error)

	// Staff endpoints
	ListOrders(ctx context.Context, status, loungeID string) (*response.OrderListResponse, error)
	UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

// CreateOrder snapshots the ordered menu items into the order so later menu
// edits do not change what was billed.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrInvalidInput)
	}

	loungeID, err := uuid.Parse(req.LoungeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid lounge ID format", ErrInvalidInput)
	}

	lounge, err := s.repo.Lounge.FindByID(ctx, loungeID)
	if err != nil {
		s.log.Error("Failed to find lounge", zap.Error(err), zap.String("lounge_id", req.LoungeID))
		return nil, fmt.Errorf("find lounge: %w", err)
	}
	if lounge == nil {
		return nil, fmt.Errorf("%w: lounge %s", ErrNotFound, req.LoungeID)
	}

	var bookingID *uuid.UUID
	if req.BookingID != nil {
		id, err := uuid.Parse(*req.BookingID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid booking ID format", ErrInvalidInput)
		}

		booking, err := s.repo.Booking.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find booking: %w", err)
		}
		if booking == nil {
			return nil, fmt.Errorf("%w: booking %s", ErrNotFound, *req.BookingID)
		}
		if booking.UserID != userID {
			return nil, fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
		}
		bookingID = &id
	}

	items := make([]entity.OrderItem, len(req.Items))
	for i, line := range req.Items {
		itemID, err := uuid.Parse(line.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid menu item ID format", ErrInvalidInput)
		}

		menuItem, err := s.repo.Menu.FindByID(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("find menu item: %w", err)
		}
		if menuItem == nil {
			return nil, fmt.Errorf("%w: menu item %s", ErrNotFound, line.MenuItemID)
		}
		if !menuItem.Available {
			return nil, fmt.Errorf("%w: %s is currently unavailable", ErrConflict, menuItem.Name)
		}

		items[i] = entity.OrderItem{
			Name:     menuItem.Name,
			Category: menuItem.Category,
			Quantity: line.Quantity,
			Price:    menuItem.Price,
		}
	}

	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:              userID,
		LoungeID:            loungeID,
		BookingID:           bookingID,
		Items:               items,
		TotalAmount:         entity.PriceOrder(items),
		Status:              entity.OrderStatusPending,
		SpecialInstructions: req.SpecialInstructions,
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("lounge_id", req.LoungeID),
		)
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("item_count", order.TotalItems()),
		zap.Float64("total_amount", order.TotalAmount),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetMyOrders(ctx context.Context, userID uuid.UUID, status string) (*response.OrderListResponse, error) {
	if status != "" && !entity.OrderStatus(status).Valid() {
		return nil, fmt.Errorf("%w: unknown order status %s", ErrInvalidInput, status)
	}

	orders, err := s.repo.Order.FindByUserID(ctx, userID, entity.OrderStatus(status))
	if err != nil {
		s.log.Error("Failed to get user orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get user orders: %w", err)
	}

	resp := response.OrdersToResponse(orders)
	return &resp, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID uuid.UUID, role entity.UserRole, orderID string) (*response.OrderResponse, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Staff see all orders so they can fulfill them.
	if order.UserID != userID && role == entity.RoleCustomer {
		return nil, fmt.Errorf("%w: order belongs to another user", ErrForbidden)
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) ListOrders(ctx context.Context, status, loungeID string) (*response.OrderListResponse, error) {
	if status != "" && !entity.OrderStatus(status).Valid() {
		return nil, fmt.Errorf("%w: unknown order status %s", ErrInvalidInput, status)
	}

	filter := repository.OrderFilter{Status: entity.OrderStatus(status)}
	if loungeID != "" {
		id, err := uuid.Parse(loungeID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid lounge ID format", ErrInvalidInput)
		}
		filter.LoungeID = id
	}

	orders, err := s.repo.Order.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err))
		return nil, fmt.Errorf("list orders: %w", err)
	}

	resp := response.OrdersToResponse(orders)
	return &resp, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	if !entity.OrderStatus(req.Status).Valid() {
		return nil, fmt.Errorf("%w: unknown order status %s", ErrInvalidInput, req.Status)
	}

	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.ApplyStatus(entity.OrderStatus(req.Status), time.Now())

	if err := s.repo.Order.Update(ctx, order); err != nil {
		s.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("status", req.Status),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) findOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid order ID format", ErrInvalidInput)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}

	return order, nil
}
