package dialogue

import "context"

// EventKind separates the three inputs a conversation reacts to.
type EventKind int

const (
	EventCommand EventKind = iota + 1
	EventText
	EventButton
	// EventUnsupported is any message the bot cannot read: stickers,
	// photos, documents.
	EventUnsupported
)

func (k EventKind) String() string {
	switch k {
	case EventCommand:
		return "command"
	case EventText:
		return "text"
	case EventButton:
		return "button"
	case EventUnsupported:
		return "unsupported"
	}
	return "unknown"
}

// Event is one user input.
type Event struct {
	Kind EventKind
	// Command is the command name without the slash.
	Command string
	Text    string
	// Group and Key identify a pressed button.
	Group string
	Key   string
}

// Command builds a command event.
func Command(name string) Event { return Event{Kind: EventCommand, Command: name} }

// Text builds a free-text event.
func Text(text string) Event { return Event{Kind: EventText, Text: text} }

// Button builds a button event.
func Button(group, key string) Event { return Event{Kind: EventButton, Group: group, Key: key} }

// Unsupported builds an event for a message without usable text.
func Unsupported() Event { return Event{Kind: EventUnsupported} }

// Option is one button of a choice.
type Option struct {
	Label string
	Key   string
}

// Channel delivers messages to a conversation. Long texts are split by the
// implementation.
type Channel interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, url string) error
	// SendChoice shows text with one button per option. A press comes back
	// as Button(group, option.Key).
	SendChoice(ctx context.Context, chatID int64, text, group string, options []Option) error
}
