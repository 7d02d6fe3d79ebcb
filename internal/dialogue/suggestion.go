package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/m3rciful/barbot/internal/session"
	"github.com/m3rciful/barbot/internal/settings"
	"github.com/m3rciful/barbot/internal/suggestion"
)

const recentSuggestions = 10

func (c *Controller) saveSuggestion(ctx context.Context, chatID int64, prefs settings.Settings, text string) (session.State, error) {
	s, err := suggestion.New(chatID, prefs.Name(), text)
	if err != nil {
		return nil, err
	}
	if err := c.suggestions.Save(ctx, s); err != nil {
		return nil, err
	}
	if err := c.ch.SendText(ctx, chatID, c.tr.T(prefs.Language, "suggestion.thanks", prefs.Name(), pick(c.rnd, smileEmoji))); err != nil {
		return nil, err
	}
	return c.toMainMenu(ctx, chatID, prefs)
}

func (c *Controller) listSuggestions(ctx context.Context, chatID int64, prefs settings.Settings) error {
	items, err := c.suggestions.Recent(ctx, recentSuggestions)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return c.ch.SendText(ctx, chatID, c.tr.T(prefs.Language, "suggestion.admin_empty"))
	}
	var b strings.Builder
	b.WriteString(c.tr.T(prefs.Language, "suggestion.admin_header"))
	for _, s := range items {
		fmt.Fprintf(&b, "\n\n%s | %s (%d)\n%s",
			s.CreatedAt.Format("2006-01-02 15:04"), s.DisplayName, s.ConversationID, s.Text)
	}
	return c.ch.SendText(ctx, chatID, b.String())
}
