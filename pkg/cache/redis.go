package cache

import (
	"context"
	"fmt"
	"time"

	"lounge-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to redis for rate limiting. Returns nil when no address
// is configured, in which case limiters are disabled.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	if config.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}
