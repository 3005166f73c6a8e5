package wire

import (
	"net/http"
	"time"

	"lounge-booking/internal/adaptor"
	"lounge-booking/internal/data/repository"
	"lounge-booking/internal/usecase"
	"lounge-booking/pkg/middleware"
	"lounge-booking/pkg/token"
	"lounge-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger, rdb *redis.Client) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger, rdb)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
	rdb *redis.Client,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	tokens := token.NewManager(config.JWT.Secret, config.JWT.ExpiryHours)
	authn := middleware.AuthJWT(tokens, repo.User, logger)

	limits := limiters{
		auth:    middleware.RateLimit(rdb, logger, "auth", config.RateLimit.AuthMax, 15*time.Minute),
		booking: middleware.RateLimit(rdb, logger, "booking", config.RateLimit.BookingMax, time.Hour),
		order:   middleware.RateLimit(rdb, logger, "order", config.RateLimit.OrderMax, time.Hour),
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"OK"}`))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(rdb, logger, "api", config.RateLimit.APIMax, 15*time.Minute))

		wireAuth(r, handler.Auth, authn, limits, logger)
		wireLounge(r, handler.Lounge, authn, logger)
		wireMenu(r, handler.Menu, authn, logger)
		wireBooking(r, handler.Booking, authn, limits, logger)
		wireOrder(r, handler.Order, authn, limits, logger)
		wireFeedback(r, handler.Feedback, authn, logger)
		wireAnalytics(r, handler.Analytics, authn, logger)
	})

	return r
}

// limiters bundles the per-surface rate limits.
type limiters struct {
	auth    func(http.Handler) http.Handler
	booking func(http.Handler) http.Handler
	order   func(http.Handler) http.Handler
}
