// Package game implements the narrowing game: a pool of drinks is cut down
// round by round as the user votes against one of two ingredients.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/m3rciful/barbot/core/logger"
	"github.com/m3rciful/barbot/internal/catalog"
	"github.com/m3rciful/barbot/internal/errs"
)

// DefaultSeedAttempts bounds the letters tried before seeding gives up.
const DefaultSeedAttempts = 5

// Options configure an Engine.
type Options struct {
	// SeedAttempts is the number of letters tried; zero selects the default.
	SeedAttempts int
	// Thin drops every second seeded candidate to keep games short.
	Thin bool
}

// Engine runs the pure parts of the game. It holds no per-game state.
type Engine struct {
	rnd      Rand
	attempts int
	thin     bool
}

// New builds an Engine drawing from rnd.
func New(rnd Rand, opts Options) *Engine {
	if opts.SeedAttempts <= 0 {
		opts.SeedAttempts = DefaultSeedAttempts
	}
	return &Engine{rnd: rnd, attempts: opts.SeedAttempts, thin: opts.Thin}
}

// Round is the outcome of one step: either two options to choose between or
// a winner.
type Round struct {
	Candidates []catalog.Drink
	Options    [2]string
	Winner     *catalog.Drink
}

// Done reports whether the game has a winner.
func (r Round) Done() bool { return r.Winner != nil }

// Seed fetches the starting pool by a random first letter. Letters that give
// no drinks are not drawn again; after the attempt budget the catalog is
// treated as unavailable.
func (e *Engine) Seed(ctx context.Context, cat catalog.Catalog) ([]catalog.Drink, error) {
	tried := make(map[rune]bool, e.attempts)
	for attempt := 1; attempt <= e.attempts && len(tried) < 26; attempt++ {
		letter := e.letter(tried)
		tried[letter] = true

		drinks, err := cat.FindDrinksByFirstLetter(ctx, letter)
		if err != nil {
			return nil, err
		}
		logger.Debug(ctx, logger.CompGame, "seed",
			slog.String("letter", string(letter)),
			slog.Int("attempt", attempt),
			slog.Int("count", len(drinks)),
		)
		if len(drinks) == 0 {
			continue
		}
		if e.thin {
			drinks = Thin(drinks)
		}
		return drinks, nil
	}
	return nil, errs.E(errs.Transport, "game.seed",
		fmt.Errorf("no drinks for %d random letters", len(tried)))
}

// letter draws uniformly from the letters not tried yet.
func (e *Engine) letter(tried map[rune]bool) rune {
	free := make([]rune, 0, 26-len(tried))
	for l := 'a'; l <= 'z'; l++ {
		if !tried[l] {
			free = append(free, l)
		}
	}
	return free[e.rnd.Intn(len(free))]
}

// Thin keeps the candidates at even positions. A pool of one is unchanged.
func Thin(drinks []catalog.Drink) []catalog.Drink {
	out := make([]catalog.Drink, 0, (len(drinks)+1)/2)
	for i := 0; i < len(drinks); i += 2 {
		out = append(out, drinks[i])
	}
	return out
}

// Distinguishing samples one ingredient from every candidate that has any
// and returns the distinct names in candidate order. Names differing only in
// case count once, under the first spelling seen, matching Eliminate.
func (e *Engine) Distinguishing(candidates []catalog.Drink) []string {
	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, d := range candidates {
		if len(d.Ingredients) == 0 {
			continue
		}
		name := d.Ingredients[e.rnd.Intn(len(d.Ingredients))].Name
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}

// Next prepares the round for candidates. With fewer than two distinct
// options the first candidate wins.
func (e *Engine) Next(candidates []catalog.Drink) (Round, error) {
	if len(candidates) == 0 {
		return Round{}, errs.Ef(errs.Internal, "game.next", "empty candidate pool")
	}
	r := Round{Candidates: candidates}
	if len(candidates) == 1 {
		r.Winner = &candidates[0]
		return r, nil
	}
	opts := e.Distinguishing(candidates)
	if len(opts) < 2 {
		r.Winner = &candidates[0]
		return r, nil
	}
	r.Options = [2]string{opts[0], opts[1]}
	return r, nil
}

// Eliminate drops every candidate that lists ingredient. Candidates without
// ingredients are always kept.
func Eliminate(candidates []catalog.Drink, ingredient string) []catalog.Drink {
	out := make([]catalog.Drink, 0, len(candidates))
	for _, d := range candidates {
		if !d.HasIngredient(ingredient) {
			out = append(out, d)
		}
	}
	return out
}

// Choose applies a vote against ingredient and prepares the next round.
// A vote that would remove every candidate ends the game with the first
// candidate of the current pool.
func (e *Engine) Choose(candidates []catalog.Drink, ingredient string) (Round, error) {
	if len(candidates) == 0 {
		return Round{}, errs.Ef(errs.Internal, "game.choose", "empty candidate pool")
	}
	rest := Eliminate(candidates, ingredient)
	if len(rest) == 0 {
		return Round{Candidates: candidates[:1], Winner: &candidates[0]}, nil
	}
	return e.Next(rest)
}
