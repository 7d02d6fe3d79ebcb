package dialogue

import (
	"context"
	"strings"

	"github.com/m3rciful/barbot/internal/catalog"
	"github.com/m3rciful/barbot/internal/game"
	"github.com/m3rciful/barbot/internal/settings"
)

// Select applies the result selection policy: everything when items fit in
// limit, otherwise a contiguous window of limit items starting at a uniformly
// random offset. A non-positive limit shows everything.
func Select[T any](rnd game.Rand, items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	start := rnd.Intn(len(items) - limit + 1)
	return items[start : start+limit]
}

// card is one rendered record and its optional image.
type card struct {
	Text  string
	Image string
}

const cardSeparator = "\n___________________________\n"

// deliver sends the selected cards. With images on every card is its own
// message followed by its photo; with images off the cards are joined into
// one text.
func (c *Controller) deliver(ctx context.Context, chatID int64, prefs settings.Settings, cards []card) (int, error) {
	shown := Select(c.rnd, cards, prefs.MessageLimit)
	if !prefs.SendImages {
		texts := make([]string, len(shown))
		for i, cd := range shown {
			texts[i] = cd.Text
		}
		return len(shown), c.ch.SendText(ctx, chatID, strings.Join(texts, cardSeparator))
	}
	for _, cd := range shown {
		if err := c.ch.SendText(ctx, chatID, cd.Text); err != nil {
			return 0, err
		}
		if cd.Image == "" {
			continue
		}
		if err := c.ch.SendPhoto(ctx, chatID, cd.Image); err != nil {
			return 0, err
		}
	}
	return len(shown), nil
}

type lines struct {
	b strings.Builder
}

func (l *lines) head(s string) {
	l.b.WriteString(s)
}

func (l *lines) field(label, value string) {
	if value == "" {
		return
	}
	l.b.WriteString("\n - ")
	l.b.WriteString(label)
	l.b.WriteString(": ")
	l.b.WriteString(value)
}

func (l *lines) String() string { return l.b.String() }

func (c *Controller) drinkCard(lang settings.Language, d catalog.Drink) card {
	var l lines
	l.head(pick(c.rnd, drinkEmoji) + " " + d.Name)
	l.field(c.tr.T(lang, "record.type"), d.Type)
	l.field(c.tr.T(lang, "record.category"), d.Category)
	l.field(c.tr.T(lang, "record.alcoholic"), c.tr.Bool(lang, d.Alcoholic))
	l.field(c.tr.T(lang, "record.glass"), d.Glass)
	l.field(c.tr.T(lang, "record.instructions"), d.Instructions)
	if len(d.Ingredients) > 0 {
		parts := make([]string, len(d.Ingredients))
		for i, p := range d.Ingredients {
			parts[i] = p.Name
			if p.Measure != "" {
				parts[i] += " - " + p.Measure
			}
		}
		l.field(c.tr.T(lang, "record.ingredients"), "\n   "+strings.Join(parts, "\n   "))
	}
	return card{Text: l.String(), Image: d.Image}
}

func (c *Controller) lazyDrinkCard(d catalog.LazyDrink) card {
	return card{Text: pick(c.rnd, drinkEmoji) + " " + d.Name, Image: d.Image}
}

func (c *Controller) ingredientCard(lang settings.Language, ing catalog.Ingredient) card {
	var l lines
	l.head(ing.Name)
	l.field(c.tr.T(lang, "record.type"), ing.Type)
	l.field(c.tr.T(lang, "record.alcohol"), c.tr.Bool(lang, ing.Alcohol))
	l.field(c.tr.T(lang, "record.description"), ing.Description)
	return card{Text: l.String()}
}

var (
	drinkEmoji = []string{"🍸", "🍹", "🍷", "🍺", "🍻", "🥂", "🥃", "🍶", "🍾", "🧉", "🧋", "🥤"}
	smileEmoji = []string{"😀", "😃", "😄", "😁", "😆", "😉", "😊", "🙂", "🙃"}
	sadEmoji   = []string{"😐", "🤐", "🤨", "😑", "😶", "😒", "🙄", "🥴", "😿"}
)

func pick(rnd game.Rand, list []string) string {
	return list[rnd.Intn(len(list))]
}
