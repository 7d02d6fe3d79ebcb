package dialogue

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/m3rciful/barbot/core/logger"
	"github.com/m3rciful/barbot/internal/game"
	"github.com/m3rciful/barbot/internal/session"
	"github.com/m3rciful/barbot/internal/settings"
)

func (c *Controller) startGame(ctx context.Context, chatID int64, prefs settings.Settings) (session.State, error) {
	pool, err := c.engine.Seed(ctx, c.cat)
	if err != nil {
		return nil, err
	}
	round, err := c.engine.Next(pool)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, logger.CompGame, "start", slog.Int("candidates", len(pool)))
	return c.playRound(ctx, chatID, prefs, round, 1)
}

// gameKey names option idx of round n, so a keyboard left over from an
// earlier round can be told apart from the current one.
func gameKey(n, idx int) string {
	return strconv.Itoa(n) + ":" + strconv.Itoa(idx)
}

func parseGameKey(key string) (n, idx int, ok bool) {
	rs, is, found := strings.Cut(key, ":")
	if !found {
		return 0, 0, false
	}
	n, err := strconv.Atoi(rs)
	if err != nil {
		return 0, 0, false
	}
	idx, err = strconv.Atoi(is)
	if err != nil {
		return 0, 0, false
	}
	return n, idx, true
}

func (c *Controller) onGameChoice(ctx context.Context, chatID int64, g session.InGuessingGame, key string) (session.State, error) {
	n, idx, ok := parseGameKey(key)
	if !ok || n != g.Round || idx < 0 || idx >= len(g.Choices) {
		logger.Debug(ctx, logger.CompGame, "stale_choice",
			slog.String("key", key),
			slog.Int("round", g.Round),
		)
		return nil, c.unexpected(ctx, chatID, g.Settings)
	}
	chosen := g.Choices[idx]
	round, err := c.engine.Choose(g.Candidates, chosen)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, logger.CompGame, "choose",
		slog.Int("round", g.Round),
		slog.String("ingredient", chosen),
		slog.Int("candidates", len(round.Candidates)),
	)
	return c.playRound(ctx, chatID, g.Settings, round, g.Round+1)
}

// playRound either offers the next pair of ingredients or announces the
// winner and returns to the main menu.
func (c *Controller) playRound(ctx context.Context, chatID int64, prefs settings.Settings, round game.Round, n int) (session.State, error) {
	if !round.Done() {
		opts := []Option{
			{Label: round.Options[0], Key: gameKey(n, 0)},
			{Label: round.Options[1], Key: gameKey(n, 1)},
		}
		if err := c.ch.SendChoice(ctx, chatID, c.tr.T(prefs.Language, "game.choose"), GroupGame, opts); err != nil {
			return nil, err
		}
		return session.InGuessingGame{
			Settings:   prefs,
			Candidates: round.Candidates,
			Choices:    round.Options,
			Round:      n,
		}, nil
	}

	winner := *round.Winner
	text := c.tr.T(prefs.Language, "game.winner", prefs.Name(), pick(c.rnd, smileEmoji))
	if err := c.ch.SendText(ctx, chatID, text); err != nil {
		return nil, err
	}
	if _, err := c.deliver(ctx, chatID, prefs, []card{c.drinkCard(prefs.Language, winner)}); err != nil {
		return nil, err
	}
	logger.Info(ctx, logger.CompGame, "winner",
		slog.Int("round", n),
		slog.String("drink", winner.Name),
	)
	return c.toMainMenu(ctx, chatID, prefs)
}
