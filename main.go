package main

import (
	"log"

	"lounge-booking/cmd"
	"lounge-booking/internal/data/repository"
	"lounge-booking/internal/wire"
	"lounge-booking/pkg/cache"
	"lounge-booking/pkg/database"
	"lounge-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Redis is optional. Without it the rate limiters switch off.
	rdb, err := cache.InitRedis(config.Redis)
	if err != nil {
		logger.Warn("Failed to connect to Redis, rate limiting disabled", zap.Error(err))
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
		logger.Info("Redis connected successfully")
	}

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, config, logger, rdb)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}
