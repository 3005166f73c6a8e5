package wire

import (
	"net/http"

	"lounge-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	authn func(http.Handler) http.Handler,
	limits limiters,
	log *zap.Logger,
) {
	// Public routes, throttled harder than the rest of the API.
	r.With(limits.auth).Post("/auth/register", authHandler.Register)
	r.With(limits.auth).Post("/auth/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authn)

		r.Get("/auth/me", authHandler.GetProfile)
		r.Put("/auth/profile", authHandler.UpdateProfile)
		r.Put("/auth/change-password", authHandler.ChangePassword)
	})
}
