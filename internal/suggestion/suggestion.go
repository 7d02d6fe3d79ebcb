// Package suggestion stores free-form feedback left by users.
package suggestion

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m3rciful/barbot/internal/errs"
)

// MaxTextRunes caps stored feedback.
const MaxTextRunes = 2000

// MsgEmpty is the translator id for blank feedback.
const MsgEmpty = "suggestion.empty"

// Suggestion is one piece of feedback.
type Suggestion struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ConversationID int64     `db:"conversation_id" json:"conversation_id"`
	DisplayName    string    `db:"display_name" json:"display_name"`
	Text           string    `db:"text" json:"text"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Store persists suggestions.
type Store interface {
	Save(ctx context.Context, s Suggestion) error
	// Recent returns up to limit suggestions, newest first.
	Recent(ctx context.Context, limit int) ([]Suggestion, error)
}

// New validates text and builds a Suggestion with a fresh id.
func New(conversationID int64, displayName, text string) (Suggestion, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Suggestion{}, errs.Invalid("suggestion.new", MsgEmpty)
	}
	if r := []rune(text); len(r) > MaxTextRunes {
		text = string(r[:MaxTextRunes])
	}
	return Suggestion{
		ID:             uuid.New(),
		ConversationID: conversationID,
		DisplayName:    displayName,
		Text:           text,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
