package wire

import (
	"net/http"

	"lounge-booking/internal/adaptor"
	"lounge-booking/internal/data/entity"
	"lounge-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	authn func(http.Handler) http.Handler,
	limits limiters,
	log *zap.Logger,
) {
	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authn)

		r.With(limits.booking).Post("/bookings", bookingHandler.CreateBooking)
		r.Get("/bookings/my-bookings", bookingHandler.GetMyBookings)
		r.Get("/bookings/{id}", bookingHandler.GetBooking)
		r.Patch("/bookings/{id}/status", bookingHandler.UpdateStatus)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		r.Get("/bookings", bookingHandler.ListBookings)
		r.Delete("/bookings/{id}", bookingHandler.DeleteBooking)
	})
}
