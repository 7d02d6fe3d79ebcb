// Package settings holds the per-conversation user preferences.
// Settings is a plain value: every update returns a new value and leaves the
// receiver untouched, so a rejected update keeps the previous settings.
package settings

import (
	"strconv"
	"strings"

	"github.com/m3rciful/barbot/internal/errs"
)

// Language selects one of the two supported locales.
type Language string

const (
	English   Language = "en"
	Ukrainian Language = "uk"
)

// Limits of the number of records rendered per query.
const (
	MinLimit     = 3
	MaxLimit     = 80
	DefaultLimit = 10
)

// DefaultName is the display name of a fresh conversation.
const DefaultName = "Dear"

// Translator message ids for rejected updates.
const (
	MsgNeedNumber = "settings.need_number"
	MsgLimitRange = "settings.limit_range"
	MsgNameEmpty  = "settings.name_empty"
)

// Field names a settings entry editable through free text or a toggle.
type Field string

const (
	FieldDisplayName  Field = "display_name"
	FieldMessageLimit Field = "message_limit"
	FieldLanguage     Field = "language"
)

// Valid reports whether f is a known field.
func (f Field) Valid() bool {
	switch f {
	case FieldDisplayName, FieldMessageLimit, FieldLanguage:
		return true
	}
	return false
}

// Settings are the user preferences carried through every dialogue state.
type Settings struct {
	DisplayName  string   `json:"display_name,omitempty"`
	SendImages   bool     `json:"send_images"`
	MessageLimit int      `json:"message_limit"`
	Language     Language `json:"language"`
}

// Default returns the settings of a conversation seen for the first time.
func Default() Settings {
	return Settings{
		DisplayName:  DefaultName,
		SendImages:   true,
		MessageLimit: DefaultLimit,
		Language:     English,
	}
}

// ValidateLimit reports whether n is an accepted message limit.
func ValidateLimit(n int) bool {
	return n >= MinLimit && n <= MaxLimit
}

// Name returns the display name, falling back to DefaultName when unset.
func (s Settings) Name() string {
	if s.DisplayName == "" {
		return DefaultName
	}
	return s.DisplayName
}

// WithDisplayName accepts any non-blank text verbatim.
func (s Settings) WithDisplayName(text string) (Settings, error) {
	if strings.TrimSpace(text) == "" {
		return s, errs.Invalid("settings.display_name", MsgNameEmpty)
	}
	s.DisplayName = text
	return s, nil
}

// WithLimit sets the message limit if n is within [MinLimit, MaxLimit].
func (s Settings) WithLimit(n int) (Settings, error) {
	if !ValidateLimit(n) {
		return s, errs.Invalid("settings.message_limit", MsgLimitRange)
	}
	s.MessageLimit = n
	return s, nil
}

// WithLimitText parses user input as the new message limit.
func (s Settings) WithLimitText(text string) (Settings, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return s, errs.Invalid("settings.message_limit", MsgNeedNumber)
	}
	return s.WithLimit(n)
}

// ToggleImages flips image delivery.
func (s Settings) ToggleImages() Settings {
	s.SendImages = !s.SendImages
	return s
}

// ToggleLanguage switches to the other supported locale.
func (s Settings) ToggleLanguage() Settings {
	s.Language = s.Language.Other()
	return s
}

// Normalize repairs values decoded from older or hand-edited records.
func (s Settings) Normalize() Settings {
	if !ValidateLimit(s.MessageLimit) {
		s.MessageLimit = DefaultLimit
	}
	if !s.Language.Valid() {
		s.Language = English
	}
	return s
}

// Valid reports whether l is a supported locale.
func (l Language) Valid() bool {
	return l == English || l == Ukrainian
}

// Other returns the locale a toggle switches to.
func (l Language) Other() Language {
	if l == Ukrainian {
		return English
	}
	return Ukrainian
}
