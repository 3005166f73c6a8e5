package wire

import (
	"net/http"

	"lounge-booking/internal/adaptor"
	"lounge-booking/internal/data/entity"
	"lounge-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAnalytics(
	r chi.Router,
	analyticsHandler *adaptor.AnalyticsHandler,
	authn func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// Admin routes
	r.Route("/analytics", func(r chi.Router) {
		r.Use(authn)
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		r.Get("/dashboard", analyticsHandler.Dashboard)
		r.Get("/bookings", analyticsHandler.Bookings)
		r.Get("/revenue", analyticsHandler.Revenue)
		r.Get("/customers", analyticsHandler.Customers)
		r.Get("/feedback", analyticsHandler.Feedback)
		r.Get("/export", analyticsHandler.ExportBookings)
	})
}
