package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/barbot/core/telegram/middleware"
	"github.com/m3rciful/barbot/core/telegram/sender"
	"github.com/m3rciful/barbot/internal/dialogue"
	"github.com/m3rciful/barbot/internal/errs"
)

type call struct {
	to     tele.Recipient
	what   interface{}
	markup *tele.ReplyMarkup
}

type fakeBot struct {
	mu    sync.Mutex
	calls []call
	errs  []error
}

func (f *fakeBot) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	c := call{to: to, what: what}
	for _, o := range opts {
		if rm, ok := o.(*tele.ReplyMarkup); ok {
			c.markup = rm
		}
	}
	f.calls = append(f.calls, c)
	return &tele.Message{}, nil
}

func bound(bot BotAPI) *Channel {
	ch := NewChannel()
	ch.Bind(bot, nil)
	return ch
}

func TestSendText(t *testing.T) {
	bot := &fakeBot{}
	require.NoError(t, bound(bot).SendText(context.Background(), 42, "Margarita"))
	require.Len(t, bot.calls, 1)
	assert.Equal(t, tele.ChatID(42), bot.calls[0].to)
	assert.Equal(t, "Margarita", bot.calls[0].what)
	assert.Nil(t, bot.calls[0].markup)
}

func TestSendTextSplitsLongText(t *testing.T) {
	bot := &fakeBot{}
	text := strings.Repeat("Lime juice\n", 1000)
	require.NoError(t, bound(bot).SendText(context.Background(), 42, text))
	require.Len(t, bot.calls, 4)
	var rebuilt strings.Builder
	for _, c := range bot.calls {
		rebuilt.WriteString(c.what.(string))
	}
	assert.Equal(t, text, rebuilt.String())
}

func TestSendPhoto(t *testing.T) {
	bot := &fakeBot{}
	url := "https://www.thecocktaildb.com/images/media/drink/5noda61589575158.jpg"
	require.NoError(t, bound(bot).SendPhoto(context.Background(), 42, url))
	require.Len(t, bot.calls, 1)
	photo, ok := bot.calls[0].what.(*tele.Photo)
	require.True(t, ok)
	assert.Equal(t, url, photo.FileURL)
}

func TestSendChoice(t *testing.T) {
	bot := &fakeBot{}
	opts := []dialogue.Option{{Label: "Vodka", Key: "0"}, {Label: "Gin", Key: "1"}, {Label: "Rum", Key: "2"}}
	require.NoError(t, bound(bot).SendChoice(context.Background(), 42, "Which one do you dislike?", dialogue.GroupGame, opts))

	require.Len(t, bot.calls, 1)
	rm := bot.calls[0].markup
	require.NotNil(t, rm)
	require.Len(t, rm.InlineKeyboard, 2)
	assert.Len(t, rm.InlineKeyboard[0], 2)
	btn := rm.InlineKeyboard[0][1]
	assert.Equal(t, "Gin", btn.Text)
	assert.Equal(t, dialogue.GroupGame, btn.Unique)
	assert.Equal(t, "1", btn.Data)
}

func TestSendChoiceKeyboardOnLastChunk(t *testing.T) {
	bot := &fakeBot{}
	text := strings.Repeat("a b ", 1500)
	require.NoError(t, bound(bot).SendChoice(context.Background(), 42, text, dialogue.GroupMenu,
		[]dialogue.Option{{Label: "Back", Key: "back"}}))
	require.Len(t, bot.calls, 2)
	assert.Nil(t, bot.calls[0].markup)
	assert.NotNil(t, bot.calls[1].markup)
}

func TestSendFailureIsTransport(t *testing.T) {
	bot := &fakeBot{errs: []error{errors.New("telegram: Forbidden: bot was blocked by the user (403)")}}
	err := bound(bot).SendText(context.Background(), 42, "hi")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.Transport))
}

func TestSendRetriesThroughSender(t *testing.T) {
	bot := &fakeBot{errs: []error{errors.New("telegram: Bad Gateway (502)")}}
	ch := NewChannel()
	ch.Bind(bot, sender.New(sender.Options{MaxRetries: 2, RetryBackoff: time.Millisecond}))
	// A 502 answer is not a network failure, so it is not retried.
	assert.Error(t, ch.SendText(context.Background(), 42, "hi"))
	require.NoError(t, ch.SendText(context.Background(), 42, "hi"))
	assert.Len(t, bot.calls, 1)
}

func TestUnboundChannel(t *testing.T) {
	err := NewChannel().SendText(context.Background(), 42, "hi")
	assert.True(t, errs.Is(err, errs.Internal))
}

func TestSendRecordsCounters(t *testing.T) {
	counters := &middleware.Counters{}
	ctx := middleware.WithCounters(context.Background(), counters)
	ch := bound(&fakeBot{})
	require.NoError(t, ch.SendText(ctx, 42, "hi"))
	require.NoError(t, ch.SendChoice(ctx, 42, "pick", dialogue.GroupMenu, []dialogue.Option{{Label: "A", Key: "a"}}))
	n, kb := counters.Snapshot()
	assert.Equal(t, 2, n)
	assert.True(t, kb)
}
