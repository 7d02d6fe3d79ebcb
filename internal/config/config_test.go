package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3rciful/barbot/internal/catalog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
telegram:
  token: "123:abc"
`))
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.CoreConfig().Telegram.Token)
	assert.Equal(t, "longpoll", cfg.Telegram.RunMode)
	assert.Equal(t, BackendMemory, cfg.Storage.Sessions)
	assert.Equal(t, BackendMemory, cfg.Storage.Suggestions)
	assert.Equal(t, 30*24*time.Hour, cfg.Storage.SessionTTL)
	assert.Equal(t, catalog.DefaultBaseURL, cfg.Catalog.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, time.Hour, cfg.Catalog.CacheTTL)
	assert.Equal(t, 5, cfg.Game.SeedAttempts)
	assert.True(t, cfg.Game.ThinPool())
	assert.False(t, cfg.Database.Enabled())
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
telegram:
  token: "123:abc"
  admin_id: 99
rate_limit:
  interval_ms: 500
  burst: 3
database:
  host: db
  name: barbot
  user: bar
redis:
  url: redis://cache:6379/0
storage:
  sessions: Redis
  suggestions: postgres
  session_ttl: 48h
catalog:
  timeout: 2s
  retries: 1
  cache_ttl: -1s
game:
  seed_attempts: 3
  thin: false
locales:
  dir: ./locales
`))
	require.NoError(t, err)
	assert.EqualValues(t, 99, cfg.Telegram.AdminID)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.Equal(t, BackendRedis, cfg.Storage.Sessions)
	assert.Equal(t, BackendPostgres, cfg.Storage.Suggestions)
	assert.Equal(t, 48*time.Hour, cfg.Storage.SessionTTL)
	assert.Equal(t, "barbot:", cfg.Redis.Prefix)
	assert.Equal(t, 2*time.Second, cfg.Catalog.Timeout)
	assert.Negative(t, cfg.Catalog.CacheTTL)
	assert.Equal(t, 3, cfg.Game.SeedAttempts)
	assert.False(t, cfg.Game.ThinPool())
	assert.Equal(t, "./locales", cfg.Locales.Dir)
	assert.Equal(t, "5432", cfg.Database.Port)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "from-env")
	t.Setenv("STORAGE_SESSIONS", "memory")
	t.Setenv("GAME_SEED_ATTEMPTS", "7")
	cfg, err := Load(writeConfig(t, `
telegram:
  token: "from-file"
`))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Telegram.Token)
	assert.Equal(t, 7, cfg.Game.SeedAttempts)
}

func TestInvalidConfigs(t *testing.T) {
	cases := map[string]string{
		"missing token":          `telegram: {}`,
		"unknown backend":        "telegram: {token: x}\nstorage: {sessions: mongo}",
		"postgres without db":    "telegram: {token: x}\nstorage: {sessions: postgres}",
		"redis without url":      "telegram: {token: x}\nstorage: {sessions: redis}",
		"redis suggestions":      "telegram: {token: x}\nredis: {url: 'redis://r'}\nstorage: {suggestions: redis}",
		"negative retries":       "telegram: {token: x}\ncatalog: {retries: -1}",
		"negative seed attempts": "telegram: {token: x}\ngame: {seed_attempts: -2}",
		"negative session ttl":   "telegram: {token: x}\nstorage: {session_ttl: -1h}",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
