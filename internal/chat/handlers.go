package chat

import (
	"context"
	"fmt"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/barbot/core/logger"
	tg "github.com/m3rciful/barbot/core/telegram"
	"github.com/m3rciful/barbot/core/telegram/callbacks"
	"github.com/m3rciful/barbot/core/telegram/commands"
	tghelpers "github.com/m3rciful/barbot/core/telegram/helpers"
	"github.com/m3rciful/barbot/core/telegram/ui"
	"github.com/m3rciful/barbot/internal/dialogue"
	"github.com/m3rciful/barbot/internal/i18n"
	"github.com/m3rciful/barbot/internal/session"
	"github.com/m3rciful/barbot/internal/settings"
)

// Conversation handles one event of a chat.
type Conversation interface {
	Handle(ctx context.Context, chatID int64, ev dialogue.Event) error
}

// Handlers turns Telegram updates into dialogue events.
type Handlers struct {
	conv     Conversation
	tr       *i18n.Translator
	sessions session.Store
}

var _ ui.FallbackProvider = (*Handlers)(nil)

// NewHandlers returns handlers feeding conv. tr and sessions localize the
// replies sent outside the dialogue; sessions may be nil.
func NewHandlers(conv Conversation, tr *i18n.Translator, sessions session.Store) *Handlers {
	return &Handlers{conv: conv, tr: tr, sessions: sessions}
}

type commandSpec struct {
	name        string
	description string
	adminOnly   bool
	aliases     []string
}

var commandSpecs = []commandSpec{
	{name: dialogue.CmdStart, description: "Main menu"},
	{name: dialogue.CmdHelp, description: "What the bot can do"},
	{name: dialogue.CmdFinish, description: "End the conversation", aliases: []string{dialogue.CmdBack}},
	{name: dialogue.CmdSuggestions, description: "Latest suggestions", adminOnly: true},
}

// Register adds the bot commands, button callbacks and the text fallback
// to reg.
func (h *Handlers) Register(reg *tg.Registry) error {
	for _, spec := range commandSpecs {
		reg.RegisterCommand("/"+spec.name, commands.Command{
			Handler:     h.command(spec.name),
			Description: spec.description,
			AdminOnly:   spec.adminOnly,
			Aliases:     spec.aliases,
		})
	}
	for _, group := range []string{dialogue.GroupMenu, dialogue.GroupSettings, dialogue.GroupGame} {
		if err := reg.RegisterCallback(group, h.button); err != nil {
			return fmt.Errorf("register %s buttons: %w", group, err)
		}
	}
	reg.SetTextFallback(h.text)
	return nil
}

func (h *Handlers) dispatch(c tele.Context, ev dialogue.Event) error {
	chat := c.Chat()
	if chat == nil {
		return nil
	}
	return h.conv.Handle(tghelpers.BuildContext(c), chat.ID, ev)
}

func (h *Handlers) command(name string) tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.dispatch(c, dialogue.Command(name))
	}
}

func (h *Handlers) button(c tele.Context) error {
	unique, payload := callbacks.ParseCallbackData(c.Callback())
	return h.dispatch(c, dialogue.Button(unique, payload))
}

func (h *Handlers) text(c tele.Context) error {
	return h.dispatch(c, dialogue.Text(c.Text()))
}

// UnknownText handles text when no fallback is registered.
func (h *Handlers) UnknownText() tele.HandlerFunc { return h.text }

// UnknownDocument answers documents the bot cannot read.
func (h *Handlers) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.dispatch(c, dialogue.Unsupported())
	}
}

// UnknownCallback answers presses of buttons from an older bot version.
func (h *Handlers) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.dispatch(c, dialogue.Unsupported())
	}
}

// OnLimited tells a user who is sending too fast to slow down.
func (h *Handlers) OnLimited(c tele.Context) error {
	text := h.notice(c, "fail.rate_limited")
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text})
	}
	return tghelpers.SendText(c, text)
}

// OnAdminReject answers non-admins who try an admin command.
func (h *Handlers) OnAdminReject(c tele.Context) error {
	return tghelpers.SendText(c, h.notice(c, "fail.admin_only"))
}

// notice renders id in the language of the chat. The session is read
// without the conversation lock.
func (h *Handlers) notice(c tele.Context, id string) string {
	lang := settings.Default().Language
	if chat := c.Chat(); chat != nil && h.sessions != nil {
		ctx := tghelpers.BuildContext(c)
		st, err := h.sessions.Get(ctx, chat.ID)
		if err != nil {
			logger.Debug(ctx, logger.CompSession, "notice.lang", slog.String("status", "fail"), logger.Err(err))
		} else {
			lang = st.Prefs().Language
		}
	}
	return h.tr.T(lang, id)
}
