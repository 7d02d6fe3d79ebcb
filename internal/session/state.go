// Package session models the dialogue mode of one conversation and keeps it
// in a durable store.
//
// State is a closed set of variants. Every variant except Idle embeds the
// Settings current when it was entered, so settings survive every transition.
package session

import (
	"github.com/m3rciful/barbot/internal/catalog"
	"github.com/m3rciful/barbot/internal/settings"
)

// Tag names a State variant in logs and in the persisted envelope.
type Tag string

const (
	TagIdle                   Tag = "idle"
	TagAwaitingMainChoice     Tag = "awaiting_main_choice"
	TagAwaitingFreeText       Tag = "awaiting_free_text"
	TagViewingSettings        Tag = "viewing_settings"
	TagAwaitingSettingsField  Tag = "awaiting_settings_field"
	TagInGuessingGame         Tag = "in_guessing_game"
	TagAwaitingSuggestionText Tag = "awaiting_suggestion_text"
)

// Intent is the query kind a free-text prompt is waiting for.
type Intent string

const (
	FindByName           Intent = "find_by_name"
	FindIngredientByName Intent = "find_ingredient_by_name"
	SearchByIngredient   Intent = "search_by_ingredient"
	SearchByCategory     Intent = "search_by_category"
)

// Valid reports whether i is a known intent.
func (i Intent) Valid() bool {
	switch i {
	case FindByName, FindIngredientByName, SearchByIngredient, SearchByCategory:
		return true
	}
	return false
}

// State is the current dialogue mode of a conversation.
type State interface {
	Tag() Tag
	// Prefs returns the embedded settings, or the defaults for Idle.
	Prefs() settings.Settings
	sealed()
}

// Idle is the bootstrap state. It carries no settings.
type Idle struct{}

// AwaitingMainChoice waits for a main-menu button.
type AwaitingMainChoice struct {
	Settings settings.Settings `json:"settings"`
}

// AwaitingFreeText waits for the query text of Intent.
type AwaitingFreeText struct {
	Settings settings.Settings `json:"settings"`
	Intent   Intent            `json:"intent"`
}

// ViewingSettings shows the settings keyboard.
type ViewingSettings struct {
	Settings settings.Settings `json:"settings"`
}

// AwaitingSettingsField waits for a new value of Field.
type AwaitingSettingsField struct {
	Settings settings.Settings `json:"settings"`
	Field    settings.Field    `json:"field"`
}

// InGuessingGame holds the remaining candidates and the two ingredient
// options currently offered.
type InGuessingGame struct {
	Settings   settings.Settings `json:"settings"`
	Candidates []catalog.Drink   `json:"candidates"`
	Choices    [2]string         `json:"choices"`
	Round      int               `json:"round"`
}

// AwaitingSuggestionText collects free-form feedback.
type AwaitingSuggestionText struct {
	Settings settings.Settings `json:"settings"`
}

func (Idle) Tag() Tag                   { return TagIdle }
func (AwaitingMainChoice) Tag() Tag     { return TagAwaitingMainChoice }
func (AwaitingFreeText) Tag() Tag       { return TagAwaitingFreeText }
func (ViewingSettings) Tag() Tag        { return TagViewingSettings }
func (AwaitingSettingsField) Tag() Tag  { return TagAwaitingSettingsField }
func (InGuessingGame) Tag() Tag         { return TagInGuessingGame }
func (AwaitingSuggestionText) Tag() Tag { return TagAwaitingSuggestionText }

func (Idle) Prefs() settings.Settings                     { return settings.Default() }
func (s AwaitingMainChoice) Prefs() settings.Settings     { return s.Settings }
func (s AwaitingFreeText) Prefs() settings.Settings       { return s.Settings }
func (s ViewingSettings) Prefs() settings.Settings        { return s.Settings }
func (s AwaitingSettingsField) Prefs() settings.Settings  { return s.Settings }
func (s InGuessingGame) Prefs() settings.Settings         { return s.Settings }
func (s AwaitingSuggestionText) Prefs() settings.Settings { return s.Settings }

func (Idle) sealed()                   {}
func (AwaitingMainChoice) sealed()     {}
func (AwaitingFreeText) sealed()       {}
func (ViewingSettings) sealed()        {}
func (AwaitingSettingsField) sealed()  {}
func (InGuessingGame) sealed()         {}
func (AwaitingSuggestionText) sealed() {}
