package wire

import (
	"net/http"

	"lounge-booking/internal/adaptor"
	"lounge-booking/internal/data/entity"
	"lounge-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	authn func(http.Handler) http.Handler,
	limits limiters,
	log *zap.Logger,
) {
	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authn)

		r.With(limits.order).Post("/orders", orderHandler.CreateOrder)
		r.Get("/orders/my-orders", orderHandler.GetMyOrders)
		r.Get("/orders/{id}", orderHandler.GetOrder)
	})

	// Staff routes
	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Use(middleware.RequireRole(log, entity.RoleStaff, entity.RoleAdmin))

		r.Get("/orders", orderHandler.ListOrders)
		r.Patch("/orders/{id}/status", orderHandler.UpdateStatus)
	})
}
