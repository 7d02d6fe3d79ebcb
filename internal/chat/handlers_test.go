package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	tg "github.com/m3rciful/barbot/core/telegram"
	"github.com/m3rciful/barbot/internal/dialogue"
	"github.com/m3rciful/barbot/internal/i18n"
	"github.com/m3rciful/barbot/internal/session"
	"github.com/m3rciful/barbot/internal/settings"
)

type recordedEvent struct {
	chatID int64
	ev     dialogue.Event
}

type fakeConversation struct {
	events []recordedEvent
}

func (f *fakeConversation) Handle(_ context.Context, chatID int64, ev dialogue.Event) error {
	f.events = append(f.events, recordedEvent{chatID: chatID, ev: ev})
	return nil
}

type fakeContext struct {
	tele.Context
	upd       tele.Update
	store     map[string]interface{}
	sent      []interface{}
	responses []*tele.CallbackResponse
}

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	f.sent = append(f.sent, what)
	return nil
}

func (f *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	f.responses = append(f.responses, resp...)
	return nil
}

func newHandlers(t *testing.T, conv Conversation, sessions session.Store) *Handlers {
	t.Helper()
	tr, err := i18n.Default()
	require.NoError(t, err)
	return NewHandlers(conv, tr, sessions)
}

func newMessage(text string) *fakeContext {
	return &fakeContext{
		upd: tele.Update{ID: 1, Message: &tele.Message{
			Text:   text,
			Sender: &tele.User{ID: 7},
			Chat:   &tele.Chat{ID: 42},
		}},
		store: map[string]interface{}{},
	}
}

func newCallback(data string) *fakeContext {
	return &fakeContext{
		upd: tele.Update{ID: 2, Callback: &tele.Callback{
			Data:    data,
			Sender:  &tele.User{ID: 7},
			Message: &tele.Message{Chat: &tele.Chat{ID: 42}},
		}},
		store: map[string]interface{}{},
	}
}

func (f *fakeContext) Update() tele.Update           { return f.upd }
func (f *fakeContext) Callback() *tele.Callback      { return f.upd.Callback }
func (f *fakeContext) Get(key string) interface{}    { return f.store[key] }
func (f *fakeContext) Set(key string, v interface{}) { f.store[key] = v }

func (f *fakeContext) Sender() *tele.User {
	if f.upd.Message != nil {
		return f.upd.Message.Sender
	}
	return f.upd.Callback.Sender
}

func (f *fakeContext) Chat() *tele.Chat {
	if f.upd.Message != nil {
		return f.upd.Message.Chat
	}
	return f.upd.Callback.Message.Chat
}

func (f *fakeContext) Text() string {
	if f.upd.Message != nil {
		return f.upd.Message.Text
	}
	return ""
}

func TestRegister(t *testing.T) {
	reg := tg.NewRegistry()
	require.NoError(t, newHandlers(t, &fakeConversation{}, nil).Register(reg))

	assert.Len(t, reg.Commands(), 4)
	assert.Equal(t, []string{"/finish", "/back"}, reg.Commands()["/finish"].Endpoints("/finish"))
	assert.True(t, reg.Commands()["/suggestions"].AdminOnly)
	visible := reg.ListCommands(true)
	require.Len(t, visible, 3)
	assert.Equal(t, "/finish", visible[0].Text)

	assert.Equal(t, []string{"game", "menu", "settings"}, reg.ListCallbacks())
	assert.NotNil(t, reg.TextFallback())

	assert.Error(t, newHandlers(t, &fakeConversation{}, nil).Register(reg), "second registration collides")
}

func TestEventsReachConversation(t *testing.T) {
	conv := &fakeConversation{}
	h := newHandlers(t, conv, nil)
	reg := tg.NewRegistry()
	require.NoError(t, h.Register(reg))

	require.NoError(t, reg.Commands()["/start"].Handler(newMessage("/start")))
	require.NoError(t, reg.TextFallback()(newMessage("margarita")))
	game, ok := reg.GetCallback("game")
	require.True(t, ok)
	require.NoError(t, game(newCallback("\fgame|1")))
	require.NoError(t, h.UnknownDocument()(newMessage("")))

	require.Len(t, conv.events, 4)
	for _, e := range conv.events {
		assert.EqualValues(t, 42, e.chatID)
	}
	assert.Equal(t, dialogue.Command(dialogue.CmdStart), conv.events[0].ev)
	assert.Equal(t, dialogue.Text("margarita"), conv.events[1].ev)
	assert.Equal(t, dialogue.Button(dialogue.GroupGame, "1"), conv.events[2].ev)
	assert.Equal(t, dialogue.Unsupported(), conv.events[3].ev)
}

func TestNoticesFollowChatLanguage(t *testing.T) {
	tr, err := i18n.Default()
	require.NoError(t, err)
	sessions := session.NewMemoryStore()
	h := NewHandlers(&fakeConversation{}, tr, sessions)

	c := newMessage("/suggestions")
	require.NoError(t, h.OnAdminReject(c))
	assert.Equal(t, []interface{}{tr.T(settings.English, "fail.admin_only")}, c.sent)

	prefs := settings.Default()
	prefs.Language = settings.Ukrainian
	require.NoError(t, sessions.Set(context.Background(), 42, session.AwaitingMainChoice{Settings: prefs}))

	c = newMessage("hi")
	require.NoError(t, h.OnLimited(c))
	assert.Equal(t, []interface{}{tr.T(settings.Ukrainian, "fail.rate_limited")}, c.sent)

	cb := newCallback("\fmenu|game")
	require.NoError(t, h.OnLimited(cb))
	require.Len(t, cb.responses, 1)
	assert.Equal(t, tr.T(settings.Ukrainian, "fail.rate_limited"), cb.responses[0].Text)
	assert.Empty(t, cb.sent)
}
