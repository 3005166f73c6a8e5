package usecase

import (
	"context"
	"testing"
	"time"

	"lounge-booking/internal/data/entity"
	"lounge-booking/internal/data/repository"
	"lounge-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMenuRepo struct {
	repository.MenuRepository
	items map[uuid.UUID]*entity.MenuItem
}

func (f *fakeMenuRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	return f.items[id], nil
}

type fakeOrderRepo struct {
	repository.OrderRepository
	order   *entity.Order
	created *entity.Order
	updated *entity.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	f.created = order
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.order != nil && f.order.ID == id {
		return f.order, nil
	}
	return nil, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	f.updated = order
	return nil
}

func menuItem(name string, price float64, available bool) *entity.MenuItem {
	return &entity.MenuItem{
		Base:      entity.Base{ID: uuid.New()},
		Name:      name,
		Category:  entity.CategoryFood,
		Price:     price,
		Available: available,
	}
}

func newOrderService(lounge *entity.Lounge, menu *fakeMenuRepo, orders *fakeOrderRepo) OrderService {
	repo := &repository.Repository{
		Lounge:  &fakeLoungeRepo{lounge: lounge},
		Menu:    menu,
		Order:   orders,
		Booking: &fakeBookingRepo{},
	}
	return NewOrderService(repo, zap.NewNop())
}

func TestOrderServiceCreateOrder(t *testing.T) {
	lounge := testLounge(8, 150)
	burger := menuItem("Burger", 10, true)
	cola := menuItem("Cola", 5, true)
	soup := menuItem("Soup", 7, false)

	menu := &fakeMenuRepo{items: map[uuid.UUID]*entity.MenuItem{
		burger.ID: burger,
		cola.ID:   cola,
		soup.ID:   soup,
	}}

	t.Run("snapshots items and sums total", func(t *testing.T) {
		orders := &fakeOrderRepo{}
		svc := newOrderService(lounge, menu, orders)

		resp, err := svc.CreateOrder(context.Background(), uuid.New(), &request.CreateOrderRequest{
			LoungeID: lounge.ID.String(),
			Items: []request.OrderItemRequest{
				{MenuItemID: burger.ID.String(), Quantity: 2},
				{MenuItemID: cola.ID.String(), Quantity: 3},
			},
		})

		require.NoError(t, err)
		require.NotNil(t, orders.created)
		assert.Equal(t, entity.OrderStatusPending, orders.created.Status)
		assert.InDelta(t, 35.0, orders.created.TotalAmount, 1e-9)
		assert.Len(t, orders.created.Items, 2)
		assert.Equal(t, "Burger", orders.created.Items[0].Name)
		assert.Equal(t, 5, resp.TotalItems)
	})

	t.Run("rejects unavailable item", func(t *testing.T) {
		svc := newOrderService(lounge, menu, &fakeOrderRepo{})

		_, err := svc.CreateOrder(context.Background(), uuid.New(), &request.CreateOrderRequest{
			LoungeID: lounge.ID.String(),
			Items: []request.OrderItemRequest{
				{MenuItemID: soup.ID.String(), Quantity: 1},
			},
		})

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("rejects unknown menu item", func(t *testing.T) {
		svc := newOrderService(lounge, menu, &fakeOrderRepo{})

		_, err := svc.CreateOrder(context.Background(), uuid.New(), &request.CreateOrderRequest{
			LoungeID: lounge.ID.String(),
			Items: []request.OrderItemRequest{
				{MenuItemID: uuid.New().String(), Quantity: 1},
			},
		})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		svc := newOrderService(lounge, menu, &fakeOrderRepo{})

		_, err := svc.CreateOrder(context.Background(), uuid.New(), &request.CreateOrderRequest{
			LoungeID: lounge.ID.String(),
			Items:    []request.OrderItemRequest{},
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	lounge := testLounge(8, 150)
	menu := &fakeMenuRepo{items: map[uuid.UUID]*entity.MenuItem{}}

	baseOrder := func() *entity.Order {
		return &entity.Order{
			Base:     entity.Base{ID: uuid.New()},
			UserID:   uuid.New(),
			LoungeID: lounge.ID,
			Items: []entity.OrderItem{
				{Name: "Burger", Category: entity.CategoryFood, Quantity: 1, Price: 10},
			},
			TotalAmount: 10,
			Status:      entity.OrderStatusPending,
		}
	}

	t.Run("stamps prepared_at on first preparing", func(t *testing.T) {
		order := baseOrder()
		orders := &fakeOrderRepo{order: order}
		svc := newOrderService(lounge, menu, orders)

		resp, err := svc.UpdateStatus(context.Background(), order.ID.String(), &request.UpdateOrderStatusRequest{
			Status: "preparing",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPreparing, resp.Status)
		require.NotNil(t, orders.updated)
		assert.NotNil(t, orders.updated.PreparedAt)
		assert.Nil(t, orders.updated.DeliveredAt)
	})

	t.Run("keeps original prepared_at on repeat", func(t *testing.T) {
		order := baseOrder()
		stamped := time.Now().Add(-time.Hour)
		order.PreparedAt = &stamped
		order.Status = entity.OrderStatusReady
		orders := &fakeOrderRepo{order: order}
		svc := newOrderService(lounge, menu, orders)

		_, err := svc.UpdateStatus(context.Background(), order.ID.String(), &request.UpdateOrderStatusRequest{
			Status: "preparing",
		})

		require.NoError(t, err)
		assert.Equal(t, stamped, *orders.updated.PreparedAt)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		order := baseOrder()
		svc := newOrderService(lounge, menu, &fakeOrderRepo{order: order})

		_, err := svc.UpdateStatus(context.Background(), order.ID.String(), &request.UpdateOrderStatusRequest{
			Status: "teleported",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects unknown order", func(t *testing.T) {
		svc := newOrderService(lounge, menu, &fakeOrderRepo{})

		_, err := svc.UpdateStatus(context.Background(), uuid.New().String(), &request.UpdateOrderStatusRequest{
			Status: "ready",
		})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
