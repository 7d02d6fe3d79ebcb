// Package commands describes slash commands kept in the registry.
package commands

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Command is a registered slash command.
type Command struct {
	Handler     tele.HandlerFunc
	Description string
	// AdminOnly commands are wrapped with the admin check and left out of
	// the public command list.
	AdminOnly bool
	Hidden    bool
	// Aliases are extra names, without the leading slash, served by the
	// same handler. They are never published to Telegram.
	Aliases []string
}

// Endpoints returns name followed by every alias in "/alias" form.
func (c Command) Endpoints(name string) []string {
	out := make([]string, 0, 1+len(c.Aliases))
	out = append(out, name)
	for _, alias := range c.Aliases {
		alias = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(alias), "/"))
		if alias == "" {
			continue
		}
		out = append(out, "/"+alias)
	}
	return out
}
