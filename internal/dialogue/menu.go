package dialogue

import (
	"context"
	"fmt"

	"github.com/m3rciful/barbot/internal/settings"
)

// Button groups.
const (
	GroupMenu     = "menu"
	GroupSettings = "settings"
	GroupGame     = "game"
)

// Main menu keys.
const (
	KeyFindDrink      = "find_drink"
	KeyFindIngredient = "find_ingredient"
	KeyIngredients    = "ingredients"
	KeyCategories     = "categories"
	KeyWithIngredient = "with_ingredient"
	KeyWithCategory   = "with_category"
	KeyGame           = "game"
	KeySettings       = "settings"
	KeySuggestion     = "suggestion"
)

// Settings view keys.
const (
	KeyName     = "name"
	KeyImages   = "images"
	KeyLimit    = "limit"
	KeyLanguage = "language"
	KeyBack     = "back"
)

// Commands.
const (
	CmdStart       = "start"
	CmdHelp        = "help"
	CmdFinish      = "finish"
	CmdBack        = "back"
	CmdSuggestions = "suggestions"
)

var mainMenuKeys = []string{
	KeyFindDrink, KeyFindIngredient,
	KeyIngredients, KeyCategories,
	KeyWithIngredient, KeyWithCategory,
	KeyGame, KeySettings,
	KeySuggestion,
}

var settingsKeys = []string{KeyName, KeyImages, KeyLimit, KeyLanguage, KeyBack}

func (c *Controller) options(lang settings.Language, keys []string) []Option {
	out := make([]Option, len(keys))
	for i, k := range keys {
		out[i] = Option{Label: c.tr.T(lang, "button."+k), Key: k}
	}
	return out
}

func (c *Controller) sendMainMenu(ctx context.Context, chatID int64, prefs settings.Settings) error {
	return c.ch.SendChoice(ctx, chatID, c.tr.T(prefs.Language, "menu.prompt"), GroupMenu, c.options(prefs.Language, mainMenuKeys))
}

func (c *Controller) sendSettingsView(ctx context.Context, chatID int64, prefs settings.Settings) error {
	return c.ch.SendChoice(ctx, chatID, c.renderSettings(prefs), GroupSettings, c.options(prefs.Language, settingsKeys))
}

func (c *Controller) renderSettings(prefs settings.Settings) string {
	lang := prefs.Language
	return fmt.Sprintf("%s\n - %s: %s\n - %s: %s\n - %s: %s\n - %s: %d",
		c.tr.T(lang, "settings.title"),
		c.tr.T(lang, "settings.name"), prefs.Name(),
		c.tr.T(lang, "settings.images"), c.tr.Bool(lang, prefs.SendImages),
		c.tr.T(lang, "settings.language"), c.tr.T(lang, "lang."+string(lang)),
		c.tr.T(lang, "settings.limit"), prefs.MessageLimit,
	)
}
