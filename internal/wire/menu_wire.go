package wire

import (
	"net/http"

	"lounge-booking/internal/adaptor"
	"lounge-booking/internal/data/entity"
	"lounge-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMenu(
	r chi.Router,
	menuHandler *adaptor.MenuHandler,
	authn func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// Public routes
	r.Get("/menu", menuHandler.ListItems)
	r.Get("/menu/{id}", menuHandler.GetItem)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		r.Post("/menu", menuHandler.CreateItem)
		r.Put("/menu/{id}", menuHandler.UpdateItem)
		r.Delete("/menu/{id}", menuHandler.DeleteItem)
	})
}
