package router

import (
	"context"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/barbot/core/logger"
	tg "github.com/m3rciful/barbot/core/telegram"
	"github.com/m3rciful/barbot/core/telegram/middleware"
)

// CommandRouteOptions configures how commands are wrapped and exposed.
type CommandRouteOptions struct {
	AdminID       int64
	OnAdminReject tele.HandlerFunc
}

// CommandRoutes wraps every registered command, and each of its aliases,
// with the shared middleware.
func CommandRoutes(reg *tg.Registry, opts CommandRouteOptions) []tg.Route {
	if reg == nil {
		return nil
	}

	adminOpts := middleware.AdminOptions{
		AdminID:  opts.AdminID,
		OnReject: opts.OnAdminReject,
	}

	routes := make([]tg.Route, 0, len(reg.Commands()))
	for name, def := range reg.Commands() {
		h := def.Handler
		cmdName := normalizeHandlerName(name)
		wrapped := func(c tele.Context) error {
			return handleWithSummary(c, cmdName, startOf(c), func() error {
				return h(c)
			})
		}
		var handler tele.HandlerFunc = wrapped
		if def.AdminOnly {
			handler = middleware.AdminOnlyMiddleware(adminOpts)(handler)
		}
		handler = middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler))

		for _, endpoint := range def.Endpoints(name) {
			routes = append(routes, tg.Route{Endpoint: endpoint, Handler: handler})
		}
	}

	logger.Info(context.Background(), logger.CompWire, "complete",
		slog.Int("commands", len(reg.Commands())),
		slog.Int("callbacks", len(reg.ListCallbacks())),
	)
	return routes
}
