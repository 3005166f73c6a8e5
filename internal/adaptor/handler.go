package adaptor

import (
	"lounge-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Lounge    *LoungeHandler
	Menu      *MenuHandler
	Booking   *BookingHandler
	Order     *OrderHandler
	Feedback  *FeedbackHandler
	Analytics *AnalyticsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Lounge:    NewLoungeHandler(service.Lounge, log),
		Menu:      NewMenuHandler(service.Menu, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Order:     NewOrderHandler(service.Order, log),
		Feedback:  NewFeedbackHandler(service.Feedback, log),
		Analytics: NewAnalyticsHandler(service.Analytics, log),
	}
}
