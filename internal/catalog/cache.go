package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m3rciful/barbot/core/logger"
)

// CacheOptions configures Cached.
type CacheOptions struct {
	// Prefix namespaces cache keys, e.g. "barbot:".
	Prefix string
	// TTL of cached answers; zero selects one hour.
	TTL time.Duration
}

// Cached is a read-through Redis cache in front of another Catalog. Only the
// slow-changing queries are cached: the full ingredient and category lists
// and the first-letter listing used to seed the guessing game. A Redis
// failure degrades to a direct call.
type Cached struct {
	Catalog
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewCached wraps inner with a Redis cache.
func NewCached(inner Catalog, rdb redis.Cmdable, opts CacheOptions) *Cached {
	if opts.TTL <= 0 {
		opts.TTL = time.Hour
	}
	return &Cached{Catalog: inner, rdb: rdb, prefix: opts.Prefix, ttl: opts.TTL}
}

// ListIngredientNames serves the ingredient list from cache.
func (c *Cached) ListIngredientNames(ctx context.Context) ([]string, error) {
	return readThrough(ctx, c, "catalog:ingredients", func() ([]string, error) {
		return c.Catalog.ListIngredientNames(ctx)
	})
}

// ListCategoryNames serves the category list from cache.
func (c *Cached) ListCategoryNames(ctx context.Context) ([]string, error) {
	return readThrough(ctx, c, "catalog:categories", func() ([]string, error) {
		return c.Catalog.ListCategoryNames(ctx)
	})
}

// FindDrinksByFirstLetter serves first-letter listings from cache.
func (c *Cached) FindDrinksByFirstLetter(ctx context.Context, letter rune) ([]Drink, error) {
	key := "catalog:letter:" + strings.ToLower(string(letter))
	return readThrough(ctx, c, key, func() ([]Drink, error) {
		return c.Catalog.FindDrinksByFirstLetter(ctx, letter)
	})
}

func readThrough[T any](ctx context.Context, c *Cached, key string, load func() ([]T, error)) ([]T, error) {
	key = c.prefix + key

	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var out []T
		if jsonErr := json.Unmarshal(data, &out); jsonErr == nil {
			logger.Debug(ctx, logger.CompCatalog, "cache", slog.String("cache", "hit"), slog.String("key", key))
			return out, nil
		}
		logger.Warn(ctx, logger.CompCatalog, "cache.corrupt", slog.String("key", key))
	case errors.Is(err, redis.Nil):
		logger.Debug(ctx, logger.CompCatalog, "cache", slog.String("cache", "miss"), slog.String("key", key))
	default:
		logger.Warn(ctx, logger.CompCatalog, "cache.read", slog.String("cache", "bypass"), slog.String("key", key), logger.Err(err))
	}

	out, err := load()
	if err != nil {
		return nil, err
	}
	// Empty answers are never cached.
	if len(out) == 0 {
		return out, nil
	}
	payload, err := json.Marshal(out)
	if err != nil {
		return out, nil
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn(ctx, logger.CompCatalog, "cache.write", slog.String("key", key), logger.Err(err))
	}
	return out, nil
}
