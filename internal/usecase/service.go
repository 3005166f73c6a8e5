package usecase

import (
	"lounge-booking/internal/data/repository"
	"lounge-booking/pkg/token"
	"lounge-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Lounge    LoungeService
	Menu      MenuService
	Booking   BookingService
	Order     OrderService
	Feedback  FeedbackService
	Analytics AnalyticsService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	tokens := token.NewManager(config.JWT.Secret, config.JWT.ExpiryHours)

	return &Service{
		Auth:      NewAuthService(repo, tokens, log),
		Lounge:    NewLoungeService(repo, log),
		Menu:      NewMenuService(repo.Menu, log),
		Booking:   NewBookingService(repo, log),
		Order:     NewOrderService(repo, log),
		Feedback:  NewFeedbackService(repo, log),
		Analytics: NewAnalyticsService(repo.Analytics, log),
	}
}
