package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m3rciful/barbot/core/logger"
	"github.com/m3rciful/barbot/internal/errs"
)

// RedisStore keeps each encoded state under "<prefix>session:<id>".
// A positive TTL expires idle conversations, which then read back as Idle.
type RedisStore struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore builds a Store over rdb.
func NewRedisStore(rdb redis.Cmdable, prefix string, ttl time.Duration) *RedisStore {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *RedisStore) key(id int64) string {
	return r.prefix + "session:" + strconv.FormatInt(id, 10)
}

// Get loads the state of id. A missing key is Idle.
func (r *RedisStore) Get(ctx context.Context, id int64) (State, error) {
	data, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Idle{}, nil
	}
	if err != nil {
		logger.Error(ctx, logger.CompSession, "get",
			slog.String("status", "fail"),
			slog.String("backend", "redis"),
			logger.Err(err),
		)
		return nil, errs.E(errs.Storage, "session.get", err)
	}
	return Decode(data)
}

// Set writes the state of id, refreshing its TTL.
func (r *RedisStore) Set(ctx context.Context, id int64, st State) error {
	env, err := Wrap(st)
	if err != nil {
		return err
	}
	data, err := json.Marshal(env)
	if err != nil {
		return errs.E(errs.Internal, "session.encode", err)
	}
	if err := r.rdb.Set(ctx, r.key(id), data, r.ttl).Err(); err != nil {
		logger.Error(ctx, logger.CompSession, "set",
			slog.String("status", "fail"),
			slog.String("backend", "redis"),
			slog.String("state", string(env.Tag)),
			logger.Err(err),
		)
		return errs.E(errs.Storage, "session.set", err)
	}
	return nil
}
