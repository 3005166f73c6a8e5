package wire

import (
	"net/http"

	"lounge-booking/internal/adaptor"
	"lounge-booking/internal/data/entity"
	"lounge-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireLounge(
	r chi.Router,
	loungeHandler *adaptor.LoungeHandler,
	authn func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// Public routes
	r.Get("/lounges", loungeHandler.ListLounges)
	r.Get("/lounges/{id}", loungeHandler.GetLounge)
	r.Post("/lounges/{id}/check-availability", loungeHandler.CheckAvailability)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		r.Post("/lounges", loungeHandler.CreateLounge)
		r.Put("/lounges/{id}", loungeHandler.UpdateLounge)
		r.Delete("/lounges/{id}", loungeHandler.DeleteLounge)
	})
}
