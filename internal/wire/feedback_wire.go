package wire

import (
	"net/http"

	"lounge-booking/internal/adaptor"
	"lounge-booking/internal/data/entity"
	"lounge-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFeedback(
	r chi.Router,
	feedbackHandler *adaptor.FeedbackHandler,
	authn func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// Public routes
	r.Get("/feedback/lounge/{id}", feedbackHandler.GetLoungeFeedback)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authn)

		r.Post("/feedback", feedbackHandler.CreateFeedback)
		r.Get("/feedback/my-feedback", feedbackHandler.GetMyFeedback)
	})

	// Staff routes
	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Use(middleware.RequireRole(log, entity.RoleStaff, entity.RoleAdmin))

		r.Get("/feedback", feedbackHandler.ListFeedback)
		r.Patch("/feedback/{id}/respond", feedbackHandler.RespondFeedback)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		r.Delete("/feedback/{id}", feedbackHandler.DeleteFeedback)
	})
}
