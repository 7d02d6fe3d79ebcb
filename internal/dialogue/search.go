package dialogue

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m3rciful/barbot/core/logger"
	"github.com/m3rciful/barbot/internal/errs"
	"github.com/m3rciful/barbot/internal/session"
	"github.com/m3rciful/barbot/internal/settings"
)

// search runs the query of st.Intent. An empty answer keeps the state so the
// user may type another query right away.
func (c *Controller) search(ctx context.Context, chatID int64, st session.AwaitingFreeText, text string) (session.State, error) {
	query := strings.TrimSpace(text)
	prefs := st.Settings
	lang := prefs.Language

	var cards []card
	switch st.Intent {
	case session.FindByName:
		drinks, err := c.cat.FindDrinksByName(ctx, query)
		if err != nil {
			return nil, err
		}
		for _, d := range drinks {
			cards = append(cards, c.drinkCard(lang, d))
		}
	case session.FindIngredientByName:
		ings, err := c.cat.FindIngredientByName(ctx, query)
		if err != nil {
			return nil, err
		}
		for _, ing := range ings {
			cards = append(cards, c.ingredientCard(lang, ing))
		}
	case session.SearchByIngredient:
		drinks, err := c.cat.FindDrinksByIngredient(ctx, query)
		if err != nil {
			return nil, err
		}
		for _, d := range drinks {
			cards = append(cards, c.lazyDrinkCard(d))
		}
	case session.SearchByCategory:
		drinks, err := c.cat.FindDrinksByCategory(ctx, query)
		if err != nil {
			return nil, err
		}
		for _, d := range drinks {
			cards = append(cards, c.lazyDrinkCard(d))
		}
	default:
		return nil, errs.Ef(errs.Internal, "dialogue.search", "unknown intent %q", st.Intent)
	}

	if len(cards) == 0 {
		logger.Info(ctx, logger.CompDialogue, "search",
			slog.String("status", "not_found"),
			slog.String("intent", string(st.Intent)),
			slog.String("query", logger.SanitizeLimit(query, 64)),
		)
		return nil, c.notFound(ctx, chatID, prefs)
	}

	shown, err := c.deliver(ctx, chatID, prefs, cards)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, logger.CompDialogue, "search",
		slog.String("status", "ok"),
		slog.String("intent", string(st.Intent)),
		slog.String("query", logger.SanitizeLimit(query, 64)),
		slog.Int("count", len(cards)),
		slog.Int("shown", shown),
	)
	return c.toMainMenu(ctx, chatID, prefs)
}

func (c *Controller) listNames(ctx context.Context, chatID int64, prefs settings.Settings, headerID string, load func(context.Context) ([]string, error)) (session.State, error) {
	names, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, c.notFound(ctx, chatID, prefs)
	}
	text := c.tr.T(prefs.Language, headerID) + "\n" + strings.Join(names, "\n")
	if err := c.ch.SendText(ctx, chatID, text); err != nil {
		return nil, err
	}
	return c.toMainMenu(ctx, chatID, prefs)
}
