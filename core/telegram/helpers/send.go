package helpers

import (
	"sync/atomic"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/barbot/core/telegram/sender"
)

var globalSender atomic.Pointer[sender.Sender]

// SetSender wires the retrying sender used by helper functions.
func SetSender(s *sender.Sender) {
	globalSender.Store(s)
}

// Sender returns the sender installed by SetSender, or nil.
func Sender() *sender.Sender {
	return globalSender.Load()
}

// SendText replies with plain text to the chat of the current update.
func SendText(c tele.Context, text string, opts ...*tele.SendOptions) error {
	run := func() error {
		if len(opts) > 0 && opts[0] != nil {
			return c.Send(text, opts[0])
		}
		return c.Send(text)
	}
	s := Sender()
	if s == nil {
		return run()
	}
	return s.Do(BuildContext(c), "send.text", "sendMessage", run)
}
