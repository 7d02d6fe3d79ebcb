package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "github.com/m3rciful/barbot/core/config"
	coredatabase "github.com/m3rciful/barbot/core/database"
)

func noLogger(*coreconfig.Config) error { return nil }

func lazyDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("postgres", "postgres://user@127.0.0.1:1/none?sslmode=disable")
	require.NoError(t, err)
	return db
}

func TestRunRequiresConfig(t *testing.T) {
	_, err := Run(context.Background(), Options{})
	assert.Error(t, err)
}

func TestRunLoggerFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run(context.Background(), Options{
		Config:     &coreconfig.Config{},
		LoggerInit: func(*coreconfig.Config) error { return boom },
	})
	assert.ErrorIs(t, err, boom)
}

func TestRunWithoutInfrastructure(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Config:     &coreconfig.Config{},
		LoggerInit: noLogger,
		Connect: func(context.Context, coredatabase.Config) (*sqlx.DB, error) {
			t.Fatal("database must not be touched")
			return nil, nil
		},
	})
	require.NoError(t, err)
	assert.Nil(t, res.DB)
	assert.Nil(t, res.Redis)
	assert.NoError(t, res.Close())
}

func TestRunDatabaseAndRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	migrated := false
	res, err := Run(context.Background(), Options{
		Config:     &coreconfig.Config{},
		Database:   coredatabase.Config{Host: "db", Name: "barbot"},
		Redis:      coredatabase.RedisConfig{URL: "redis://" + mr.Addr()},
		LoggerInit: noLogger,
		Connect: func(context.Context, coredatabase.Config) (*sqlx.DB, error) {
			return lazyDB(t), nil
		},
		Migrate: func(context.Context, coredatabase.Config) error {
			migrated = true
			return nil
		},
	})
	require.NoError(t, err)
	assert.True(t, migrated)
	require.NotNil(t, res.DB)
	require.NotNil(t, res.Redis)
	require.NoError(t, res.Redis.Ping(context.Background()).Err())
	assert.NoError(t, res.Close())
}

func TestRunMigrationFailure(t *testing.T) {
	boom := errors.New("dirty database")
	_, err := Run(context.Background(), Options{
		Config:     &coreconfig.Config{},
		Database:   coredatabase.Config{Host: "db", Name: "barbot"},
		LoggerInit: noLogger,
		Connect: func(context.Context, coredatabase.Config) (*sqlx.DB, error) {
			return lazyDB(t), nil
		},
		Migrate: func(context.Context, coredatabase.Config) error { return boom },
	})
	assert.ErrorIs(t, err, boom)
}

func TestRunRedisFailure(t *testing.T) {
	boom := errors.New("refused")
	_, err := Run(context.Background(), Options{
		Config:     &coreconfig.Config{},
		Redis:      coredatabase.RedisConfig{URL: "redis://localhost:1"},
		LoggerInit: noLogger,
		ConnectRedis: func(context.Context, coredatabase.RedisConfig) (*redis.Client, error) {
			return nil, boom
		},
	})
	assert.ErrorIs(t, err, boom)
}
