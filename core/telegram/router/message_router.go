package router

import (
	tele "gopkg.in/telebot.v4"

	tg "github.com/m3rciful/barbot/core/telegram"
	"github.com/m3rciful/barbot/core/telegram/middleware"
)

// TextOptions controls fallback behaviour for text and media updates.
type TextOptions struct {
	UnknownText     tele.HandlerFunc
	UnknownDocument tele.HandlerFunc
}

// TextRoutes routes plain messages to the registry text fallback. Commands
// the registry knows never get here: telebot dispatches them to their own
// endpoints first.
func TextRoutes(reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := startOf(c)

		if reg != nil {
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "text", start, func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", nil)
		return nil
	}

	docHandler := func(c tele.Context) error {
		start := startOf(c)
		if opts.UnknownDocument != nil {
			return handleWithSummary(c, "unexpected_media", start, func() error {
				return opts.UnknownDocument(c)
			})
		}
		logHandlerSummary(c, "unexpected_media", start, "skip", nil)
		return nil
	}

	routes := []tg.Route{{
		Endpoint: tele.OnText,
		Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
	}}
	for _, endpoint := range mediaEndpoints {
		routes = append(routes, tg.Route{
			Endpoint: endpoint,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(docHandler)),
		})
	}
	return routes
}

// mediaEndpoints are the non-text messages answered by UnknownDocument.
var mediaEndpoints = []string{
	tele.OnDocument,
	tele.OnPhoto,
	tele.OnSticker,
	tele.OnVoice,
	tele.OnVideo,
	tele.OnAudio,
	tele.OnAnimation,
	tele.OnLocation,
	tele.OnContact,
}
