package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m3rciful/barbot/core/logger"
)

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	// URL uses the redis:// or rediss:// scheme; empty disables Redis.
	URL string `yaml:"url" envconfig:"REDIS_URL"`
	// Prefix namespaces every key the bot writes.
	Prefix string `yaml:"prefix" envconfig:"REDIS_PREFIX"`
}

// Enabled reports whether a Redis URL is configured.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// ConnectRedis opens a client for cfg.URL and pings it.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	start := time.Now()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Error(ctx, logger.CompRedis, "connect", slog.String("addr", opts.Addr), logger.Err(err))
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	logger.Info(ctx, logger.CompRedis, "connect",
		slog.String("addr", opts.Addr),
		slog.Int("db", opts.DB),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return client, nil
}
