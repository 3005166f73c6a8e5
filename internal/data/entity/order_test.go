package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriceOrder(t *testing.T) {
	t.Run("sums price times quantity", func(t *testing.T) {
		items := []OrderItem{
			{Name: "Burger", Category: CategoryFood, Price: 10, Quantity: 2},
			{Name: "Cola", Category: CategoryDrink, Price: 5, Quantity: 3},
		}
		assert.InDelta(t, 35.0, PriceOrder(items), 1e-9)
	})

	t.Run("single item", func(t *testing.T) {
		items := []OrderItem{{Name: "Nachos", Category: CategorySnack, Price: 7.5, Quantity: 1}}
		assert.InDelta(t, 7.5, PriceOrder(items), 1e-9)
	})

	t.Run("empty list totals zero", func(t *testing.T) {
		assert.Zero(t, PriceOrder(nil))
	})
}

func TestOrderApplyStatusStampsOnce(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	o := &Order{Status: OrderStatusPending}
	o.ApplyStatus(OrderStatusPreparing, now)
	assert.NotNil(t, o.PreparedAt)
	assert.Equal(t, now, *o.PreparedAt)

	later := now.Add(30 * time.Minute)
	o.ApplyStatus(OrderStatusDelivered, later)
	assert.NotNil(t, o.DeliveredAt)
	assert.Equal(t, later, *o.DeliveredAt)

	o.ApplyStatus(OrderStatusPreparing, later.Add(time.Hour))
	assert.Equal(t, now, *o.PreparedAt, "preparedAt is stamped only on first entry")
	assert.Equal(t, later, *o.DeliveredAt)
}

func TestOrderTotalItems(t *testing.T) {
	o := &Order{Items: []OrderItem{{Quantity: 2}, {Quantity: 3}}}
	assert.Equal(t, 5, o.TotalItems())
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, OrderStatus("shipped").Valid())
}
