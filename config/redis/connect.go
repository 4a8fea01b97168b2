package redis

import (
	"context"
	"fmt"
	"time"

	"mediawatch-srv/config"

	redis_client "github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

// Connect creates a new Redis client with the given configuration and
// verifies the connection.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis_client.Client, error) {
	client := redis_client.NewClient(&redis_client.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		MinIdleConns: cfg.MinIdleConns,
		PoolSize:     cfg.PoolSize,
		PoolTimeout:  cfg.PoolTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
