package middleware

import (
	"context"
	"sync/atomic"

	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/m3rciful/barbot/core/telegram/helpers"
)

const countersKey = "metrics"

// Counters tracks the replies produced while handling one update.
type Counters struct {
	messages atomic.Int32
	kb       atomic.Bool
}

// Record counts one outgoing message.
func (m *Counters) Record(hasKB bool) {
	if m == nil {
		return
	}
	m.messages.Add(1)
	if hasKB {
		m.kb.Store(true)
	}
}

// Snapshot returns the message count and whether any reply had a keyboard.
func (m *Counters) Snapshot() (int, bool) {
	if m == nil {
		return 0, false
	}
	return int(m.messages.Load()), m.kb.Load()
}

type ctxKey struct{}

// WithCounters attaches counters to ctx.
func WithCounters(ctx context.Context, m *Counters) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

// CountersFrom returns the counters of the update being handled, or nil.
func CountersFrom(ctx context.Context) *Counters {
	m, _ := ctx.Value(ctxKey{}).(*Counters)
	return m
}

// metricsContext counts replies sent through tele.Context.
type metricsContext struct {
	tele.Context
	counters *Counters
}

func hasKeyboard(opts []interface{}) bool {
	for _, o := range opts {
		switch v := o.(type) {
		case *tele.SendOptions:
			if v != nil && v.ReplyMarkup != nil {
				return true
			}
		case *tele.ReplyMarkup:
			if v != nil {
				return true
			}
		}
	}
	return false
}

// Send proxies tele.Context.Send while updating counters.
func (m metricsContext) Send(what interface{}, opts ...interface{}) error {
	err := m.Context.Send(what, opts...)
	if err == nil {
		m.counters.Record(hasKeyboard(opts))
	}
	return err
}

// Reply proxies tele.Context.Reply while updating counters.
func (m metricsContext) Reply(what interface{}, opts ...interface{}) error {
	err := m.Context.Reply(what, opts...)
	if err == nil {
		m.counters.Record(hasKeyboard(opts))
	}
	return err
}

// MessageMetricsMiddleware installs per-update counters. Replies sent
// through the context are counted automatically; senders working with a
// bare chat id record through CountersFrom.
func MessageMetricsMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		counters := &Counters{}
		c.Set(countersKey, counters)
		tghelpers.StoreContext(c, WithCounters(tghelpers.BuildContext(c), counters))
		return next(metricsContext{Context: c, counters: counters})
	}
}

// GetCounters reads the counters installed for the update in c.
func GetCounters(c tele.Context) (int, bool) {
	m, _ := c.Get(countersKey).(*Counters)
	return m.Snapshot()
}
