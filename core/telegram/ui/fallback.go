// Package ui declares the handlers a bot supplies for updates nothing else
// claims.
package ui

import tele "gopkg.in/telebot.v4"

// FallbackProvider exposes handlers for updates that match no command,
// registered callback or text flow.
type FallbackProvider interface {
	UnknownText() tele.HandlerFunc
	UnknownDocument() tele.HandlerFunc
	UnknownCallback() tele.HandlerFunc
}
