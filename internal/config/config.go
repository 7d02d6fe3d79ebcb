// Package config loads the bot configuration: the shared core sections plus
// storage, catalog, game and locale settings.
package config

import (
	"fmt"
	"strings"
	"time"

	coreconfig "github.com/m3rciful/barbot/core/config"
	coredatabase "github.com/m3rciful/barbot/core/database"
	"github.com/m3rciful/barbot/internal/catalog"
	"github.com/m3rciful/barbot/internal/game"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// StorageConfig selects where conversations and suggestions live.
type StorageConfig struct {
	Sessions    string `yaml:"sessions" envconfig:"STORAGE_SESSIONS"`
	Suggestions string `yaml:"suggestions" envconfig:"STORAGE_SUGGESTIONS"`
	// SessionTTL expires idle conversations in Redis.
	SessionTTL time.Duration `yaml:"session_ttl" envconfig:"STORAGE_SESSION_TTL"`
}

// CatalogConfig configures the recipe catalog client and its cache.
type CatalogConfig struct {
	BaseURL string        `yaml:"base_url" envconfig:"CATALOG_BASE_URL"`
	Timeout time.Duration `yaml:"timeout" envconfig:"CATALOG_TIMEOUT"`
	Retries int           `yaml:"retries" envconfig:"CATALOG_RETRIES"`
	// CacheTTL applies when Redis is configured; negative disables the cache.
	CacheTTL time.Duration `yaml:"cache_ttl" envconfig:"CATALOG_CACHE_TTL"`
}

// GameConfig tunes the narrowing game.
type GameConfig struct {
	SeedAttempts int   `yaml:"seed_attempts" envconfig:"GAME_SEED_ATTEMPTS"`
	Thin         *bool `yaml:"thin" envconfig:"GAME_THIN"`
	// Seed fixes the random source; zero seeds from the clock.
	Seed int64 `yaml:"seed" envconfig:"GAME_SEED"`
}

// ThinPool reports whether seeded pools are thinned.
func (g GameConfig) ThinPool() bool {
	return g.Thin == nil || *g.Thin
}

// LocalesConfig points at translation tables that replace the built-in ones.
type LocalesConfig struct {
	Dir string `yaml:"dir" envconfig:"LOCALES_DIR"`
}

// Config is the full bot configuration.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Database coredatabase.Config      `yaml:"database"`
	Redis    coredatabase.RedisConfig `yaml:"redis"`
	Storage  StorageConfig            `yaml:"storage"`
	Catalog  CatalogConfig            `yaml:"catalog"`
	Game     GameConfig               `yaml:"game"`
	Locales  LocalesConfig            `yaml:"locales"`
}

// CoreConfig exposes the shared sections to the core runtime.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Config
}

// Load reads path, overlays the environment and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := coreconfig.Decode(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates every section and fills defaults.
func (c *Config) Normalize() error {
	if err := coreconfig.Normalize(&c.Config); err != nil {
		return err
	}
	if err := c.Database.Normalize(); err != nil {
		return err
	}
	if c.Redis.Enabled() && c.Redis.Prefix == "" {
		c.Redis.Prefix = "barbot:"
	}

	var err error
	if c.Storage.Sessions, err = c.backend("storage.sessions", c.Storage.Sessions, BackendPostgres, BackendRedis); err != nil {
		return err
	}
	if c.Storage.Suggestions, err = c.backend("storage.suggestions", c.Storage.Suggestions, BackendPostgres); err != nil {
		return err
	}
	if c.Storage.SessionTTL < 0 {
		return fmt.Errorf("storage.session_ttl must be >= 0")
	}
	if c.Storage.SessionTTL == 0 {
		c.Storage.SessionTTL = 30 * 24 * time.Hour
	}

	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = catalog.DefaultBaseURL
	}
	if c.Catalog.Timeout <= 0 {
		c.Catalog.Timeout = 5 * time.Second
	}
	if c.Catalog.Retries < 0 {
		return fmt.Errorf("catalog.retries must be >= 0")
	}
	if c.Catalog.CacheTTL == 0 {
		c.Catalog.CacheTTL = time.Hour
	}

	if c.Game.SeedAttempts < 0 {
		return fmt.Errorf("game.seed_attempts must be >= 0")
	}
	if c.Game.SeedAttempts == 0 {
		c.Game.SeedAttempts = game.DefaultSeedAttempts
	}
	return nil
}

// backend validates a storage choice. Empty means memory; the other
// backends need their connection configured.
func (c *Config) backend(field, value string, allowed ...string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" || v == BackendMemory {
		return BackendMemory, nil
	}
	ok := false
	for _, a := range allowed {
		ok = ok || v == a
	}
	if !ok {
		return "", fmt.Errorf("invalid %s %q; allowed: memory, %s", field, value, strings.Join(allowed, ", "))
	}
	switch {
	case v == BackendPostgres && !c.Database.Enabled():
		return "", fmt.Errorf("%s is postgres but database.host is empty", field)
	case v == BackendRedis && !c.Redis.Enabled():
		return "", fmt.Errorf("%s is redis but redis.url is empty", field)
	}
	return v, nil
}
