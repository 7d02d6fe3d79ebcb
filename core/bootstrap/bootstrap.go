// Package bootstrap brings up the infrastructure a bot needs before it
// starts taking updates.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	coreconfig "github.com/m3rciful/barbot/core/config"
	coredatabase "github.com/m3rciful/barbot/core/database"
	"github.com/m3rciful/barbot/core/logger"
)

// Options control the bootstrap pipeline. A disabled database or Redis
// section is skipped; the bot then runs on in-memory stores.
type Options struct {
	Config   *coreconfig.Config
	Database coredatabase.Config
	Redis    coredatabase.RedisConfig

	LoggerInit   func(*coreconfig.Config) error
	Connect      func(context.Context, coredatabase.Config) (*sqlx.DB, error)
	Migrate      func(context.Context, coredatabase.Config) error
	ConnectRedis func(context.Context, coredatabase.RedisConfig) (*redis.Client, error)
}

// Result exposes the infrastructure that was brought up. Nil fields mean
// the component is not configured.
type Result struct {
	DB    *sqlx.DB
	Redis *redis.Client
}

// Close releases every opened connection.
func (r *Result) Close() error {
	var errs []error
	if r.DB != nil {
		errs = append(errs, r.DB.Close())
	}
	if r.Redis != nil {
		errs = append(errs, r.Redis.Close())
	}
	return errors.Join(errs...)
}

// Run initializes the logger, then PostgreSQL with migrations, then Redis.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.Init
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	res := &Result{}
	if opts.Database.Enabled() {
		connect := opts.Connect
		if connect == nil {
			connect = coredatabase.Connect
		}
		migrate := opts.Migrate
		if migrate == nil {
			migrate = coredatabase.RunMigrations
		}

		db, err := connect(ctx, opts.Database)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: database initialization failed: %w", err)
		}
		if err := migrate(ctx, opts.Database); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap: migrations failed: %w", err)
		}
		res.DB = db
	}

	if opts.Redis.Enabled() {
		connect := opts.ConnectRedis
		if connect == nil {
			connect = coredatabase.ConnectRedis
		}
		client, err := connect(ctx, opts.Redis)
		if err != nil {
			_ = res.Close()
			return nil, fmt.Errorf("bootstrap: redis initialization failed: %w", err)
		}
		res.Redis = client
	}
	return res, nil
}
