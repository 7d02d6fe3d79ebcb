// Package app wires the configured stores, the catalog and the dialogue
// controller into a runnable Telegram bot.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/m3rciful/barbot/core/bootstrap"
	"github.com/m3rciful/barbot/core/logger"
	coretelegram "github.com/m3rciful/barbot/core/telegram"
	"github.com/m3rciful/barbot/core/telegram/router"
	"github.com/m3rciful/barbot/internal/catalog"
	"github.com/m3rciful/barbot/internal/chat"
	"github.com/m3rciful/barbot/internal/config"
	"github.com/m3rciful/barbot/internal/dialogue"
	"github.com/m3rciful/barbot/internal/game"
	"github.com/m3rciful/barbot/internal/i18n"
	"github.com/m3rciful/barbot/internal/session"
	"github.com/m3rciful/barbot/internal/suggestion"
)

// App is the assembled bot.
type App struct {
	cfg   *config.Config
	infra *bootstrap.Result

	sessions    session.Store
	suggestions suggestion.Store
	catalog     catalog.Catalog
	channel     *chat.Channel
	controller  *dialogue.Controller
	handlers    *chat.Handlers
}

// New brings up the infrastructure described by cfg and assembles the bot.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config")
	}
	infra, err := bootstrap.Run(ctx, bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
		Redis:    cfg.Redis,
	})
	if err != nil {
		return nil, err
	}
	a, err := Build(cfg, infra)
	if err != nil {
		_ = infra.Close()
		return nil, err
	}
	logger.Info(ctx, logger.CompApp, "wired",
		slog.String("sessions", cfg.Storage.Sessions),
		slog.String("suggestions", cfg.Storage.Suggestions),
		slog.Bool("catalog_cache", infra.Redis != nil && cfg.Catalog.CacheTTL > 0),
	)
	return a, nil
}

// Build assembles the bot on top of already opened infrastructure.
func Build(cfg *config.Config, infra *bootstrap.Result) (*App, error) {
	if infra == nil {
		infra = &bootstrap.Result{}
	}
	a := &App{cfg: cfg, infra: infra}

	var err error
	if a.sessions, err = a.sessionStore(); err != nil {
		return nil, err
	}
	if a.suggestions, err = a.suggestionStore(); err != nil {
		return nil, err
	}
	if a.catalog, err = a.recipeCatalog(); err != nil {
		return nil, err
	}
	tr, err := a.translator()
	if err != nil {
		return nil, err
	}

	rnd := game.NewRand(cfg.Game.Seed)
	a.channel = chat.NewChannel()
	a.controller, err = dialogue.New(dialogue.Deps{
		Store:      a.sessions,
		Locker:     session.NewLocker(),
		Catalog:    a.catalog,
		Translator: tr,
		Engine: game.New(rnd, game.Options{
			SeedAttempts: cfg.Game.SeedAttempts,
			Thin:         cfg.Game.ThinPool(),
		}),
		Rand:        rnd,
		Suggestions: a.suggestions,
		Channel:     a.channel,
	})
	if err != nil {
		return nil, err
	}
	a.handlers = chat.NewHandlers(a.controller, tr, a.sessions)
	return a, nil
}

func (a *App) sessionStore() (session.Store, error) {
	switch a.cfg.Storage.Sessions {
	case config.BackendPostgres:
		if a.infra.DB == nil {
			return nil, fmt.Errorf("app: postgres session store without a database")
		}
		return session.NewPostgresStore(a.infra.DB), nil
	case config.BackendRedis:
		if a.infra.Redis == nil {
			return nil, fmt.Errorf("app: redis session store without redis")
		}
		return session.NewRedisStore(a.infra.Redis, a.cfg.Redis.Prefix, a.cfg.Storage.SessionTTL), nil
	default:
		return session.NewMemoryStore(), nil
	}
}

func (a *App) suggestionStore() (suggestion.Store, error) {
	if a.cfg.Storage.Suggestions != config.BackendPostgres {
		return suggestion.NewMemoryStore(), nil
	}
	if a.infra.DB == nil {
		return nil, fmt.Errorf("app: postgres suggestion store without a database")
	}
	return suggestion.NewPostgresStore(a.infra.DB), nil
}

func (a *App) recipeCatalog() (catalog.Catalog, error) {
	client, err := catalog.NewClient(catalog.Config{
		BaseURL: a.cfg.Catalog.BaseURL,
		Timeout: a.cfg.Catalog.Timeout,
		Retries: a.cfg.Catalog.Retries,
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	if a.infra.Redis == nil || a.cfg.Catalog.CacheTTL < 0 {
		return client, nil
	}
	return catalog.NewCached(client, a.infra.Redis, catalog.CacheOptions{
		Prefix: a.cfg.Redis.Prefix,
		TTL:    a.cfg.Catalog.CacheTTL,
	}), nil
}

func (a *App) translator() (*i18n.Translator, error) {
	if a.cfg.Locales.Dir == "" {
		return i18n.Default()
	}
	tr, err := i18n.New(os.DirFS(a.cfg.Locales.Dir))
	if err != nil {
		return nil, fmt.Errorf("app: locales from %s: %w", a.cfg.Locales.Dir, err)
	}
	return tr, nil
}

// TelegramRunOptions registers the handlers and returns the bot runtime
// configuration.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	core := a.cfg.CoreConfig()

	reg := coretelegram.NewRegistry()
	if err := a.handlers.Register(reg); err != nil {
		return coretelegram.RunOptions{}, err
	}
	reg.SetCallbackNotFound(a.handlers.UnknownCallback())

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID:       core.Telegram.AdminID,
		OnAdminReject: a.handlers.OnAdminReject,
	})
	routes = append(routes, router.TextRoutes(reg, router.TextOptions{
		UnknownText:     a.handlers.UnknownText(),
		UnknownDocument: a.handlers.UnknownDocument(),
	})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{
		NotFound: a.handlers.UnknownCallback(),
	}))

	return coretelegram.RunOptions{
		Config:      core,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(core, a.handlers.OnLimited),
		Routes:      routes,
		OnStart: func(_ context.Context, rt coretelegram.Runtime) error {
			a.channel.Bind(rt.Bot, rt.Sender)
			return nil
		},
	}, nil
}

// Close releases database and Redis connections.
func (a *App) Close() error {
	return a.infra.Close()
}
