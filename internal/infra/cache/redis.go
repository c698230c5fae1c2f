package cache

import (
	"context"
	"time"

	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Connect opens a client and pings it so a wrong REDIS_ADDR fails at startup.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "redis ping")
	}

	return client, nil
}
