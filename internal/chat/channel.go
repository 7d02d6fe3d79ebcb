// Package chat connects the dialogue controller to Telegram: it delivers
// controller output through the bot API and turns updates into events.
package chat

import (
	"context"
	"log/slog"
	"sync/atomic"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/barbot/core/logger"
	"github.com/m3rciful/barbot/core/telegram/keyboard"
	"github.com/m3rciful/barbot/core/telegram/middleware"
	"github.com/m3rciful/barbot/core/telegram/sender"
	"github.com/m3rciful/barbot/internal/dialogue"
	"github.com/m3rciful/barbot/internal/errs"
)

// BotAPI is the slice of *tele.Bot the channel needs.
type BotAPI interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// buttonsPerRow lays choices out two per row.
const buttonsPerRow = 2

type binding struct {
	bot    BotAPI
	sender *sender.Sender
}

// Channel implements dialogue.Channel on top of the Telegram bot API.
// It is created unbound and bound once the bot exists.
type Channel struct {
	b     atomic.Pointer[binding]
	limit int
}

var _ dialogue.Channel = (*Channel)(nil)

// NewChannel returns an unbound channel.
func NewChannel() *Channel {
	return &Channel{limit: MaxMessageLength}
}

// Bind sets the bot used for delivery. A nil sender sends without retries.
func (c *Channel) Bind(bot BotAPI, snd *sender.Sender) {
	c.b.Store(&binding{bot: bot, sender: snd})
}

// SendText delivers text, split into several messages when it is too long.
func (c *Channel) SendText(ctx context.Context, chatID int64, text string) error {
	for _, chunk := range Split(text, c.limit) {
		if err := c.send(ctx, "send.text", "sendMessage", chatID, chunk, nil); err != nil {
			return err
		}
	}
	return nil
}

// SendPhoto delivers the image at url.
func (c *Channel) SendPhoto(ctx context.Context, chatID int64, url string) error {
	return c.send(ctx, "send.photo", "sendPhoto", chatID, &tele.Photo{File: tele.FromURL(url)}, nil)
}

// SendChoice delivers text with an inline keyboard. Pressing an option
// produces a callback with unique group and payload option.Key.
func (c *Channel) SendChoice(ctx context.Context, chatID int64, text, group string, options []dialogue.Option) error {
	btns := make([]keyboard.InlineBtn, len(options))
	for i, o := range options {
		btns[i] = keyboard.InlineBtn{Text: o.Label, Unique: group, Data: o.Key}
	}
	markup := keyboard.InlineButtonsNPerRow(btns, buttonsPerRow)

	chunks := Split(text, c.limit)
	last := len(chunks) - 1
	for i, chunk := range chunks {
		var rm *tele.ReplyMarkup
		if i == last {
			rm = markup
		}
		if err := c.send(ctx, "send.choice", "sendMessage", chatID, chunk, rm); err != nil {
			return err
		}
	}
	return nil
}

func (c *Channel) send(ctx context.Context, action, endpoint string, chatID int64, what interface{}, markup *tele.ReplyMarkup) error {
	op := "chat." + action
	b := c.b.Load()
	if b == nil {
		return errs.Ef(errs.Internal, op, "channel is not bound to a bot")
	}

	run := func() error {
		var err error
		if markup != nil {
			_, err = b.bot.Send(tele.ChatID(chatID), what, markup)
		} else {
			_, err = b.bot.Send(tele.ChatID(chatID), what)
		}
		return err
	}

	var err error
	if b.sender != nil {
		err = b.sender.Do(ctx, action, endpoint, run)
	} else {
		err = run()
	}
	if err != nil {
		return errs.E(errs.Transport, op, err)
	}

	middleware.CountersFrom(ctx).Record(markup != nil)
	logger.Debug(ctx, logger.CompTG, "sent",
		slog.String("action", action),
		slog.Bool("kb", markup != nil),
	)
	return nil
}
