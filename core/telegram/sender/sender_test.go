package sender

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

func newTestSender(opts Options) (*Sender, *[]time.Duration) {
	s := New(opts)
	var waits []time.Duration
	s.wait = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return s, &waits
}

func TestDoSucceedsFirstTry(t *testing.T) {
	s, waits := newTestSender(Options{MaxRetries: 3})
	calls := 0
	err := s.Do(context.Background(), "send.text", "sendMessage", func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, *waits)
	assert.Zero(t, s.ErrorCount())
}

func TestDoRetriesNetworkErrors(t *testing.T) {
	s, waits := newTestSender(Options{MaxRetries: 3, RetryBackoff: time.Second})
	dial := &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	calls := 0
	err := s.Do(context.Background(), "send.text", "sendMessage", func() error {
		calls++
		if calls < 3 {
			return dial
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *waits)
}

func TestDoStopsOnPermanentError(t *testing.T) {
	s, waits := newTestSender(Options{MaxRetries: 3})
	forbidden := errors.New("telegram: Forbidden: bot was blocked by the user (403)")
	calls := 0
	err := s.Do(context.Background(), "send.text", "sendMessage", func() error {
		calls++
		return forbidden
	})
	assert.ErrorIs(t, err, forbidden)
	assert.Equal(t, 1, calls)
	assert.Empty(t, *waits)
	assert.EqualValues(t, 1, s.ErrorCount())
}

func TestDoGivesUpAfterRetries(t *testing.T) {
	s, _ := newTestSender(Options{MaxRetries: 2, RetryBackoff: time.Millisecond})
	calls := 0
	err := s.Do(context.Background(), "send.photo", "sendPhoto", func() error {
		calls++
		return &net.OpError{Op: "dial", Err: errors.New("refused")}
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.EqualValues(t, 1, s.ErrorCount())
}

func TestDoHonoursCancellation(t *testing.T) {
	s, _ := newTestSender(Options{MaxRetries: 5})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := s.Do(ctx, "send.text", "sendMessage", func() error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestDoRejectsNilRun(t *testing.T) {
	assert.Error(t, New(Options{}).Do(context.Background(), "x", "", nil))
}

func TestFloodWait(t *testing.T) {
	d, ok := floodWait(tele.FloodError{RetryAfter: 3})
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, d)

	d, ok = floodWait(tele.FloodError{})
	require.True(t, ok)
	assert.Equal(t, time.Second, d)

	_, ok = floodWait(errors.New("boom"))
	assert.False(t, ok)

	s := New(Options{RetryBackoff: time.Second})
	d, ok = s.retryDelay(tele.FloodError{RetryAfter: 7}, 1)
	require.True(t, ok)
	assert.Equal(t, 7*time.Second, d)
}

func TestSanitizeErrorMessage(t *testing.T) {
	err := errors.New(`Post "https://api.telegram.org/bot123456:AA-bb_CC/sendMessage": dial tcp: refused`)
	got := sanitizeErrorMessage(err)
	assert.NotContains(t, got, "123456:AA-bb_CC")
	assert.Contains(t, got, "bot<redacted>")
}

func TestClassifyError(t *testing.T) {
	assert.Equal(t, "", classifyError(nil))
	assert.Equal(t, "timeout", classifyError(context.DeadlineExceeded))
	assert.Equal(t, "dial", classifyError(&net.OpError{Op: "dial", Err: errors.New("refused")}))
	assert.Equal(t, "dns", classifyError(&net.DNSError{IsNotFound: true}))
	assert.Equal(t, "http_4xx", classifyError(errors.New("telegram: Bad Request: chat not found (400)")))
	assert.Equal(t, "http_5xx", classifyError(errors.New("telegram: Bad Gateway (502)")))
	assert.Equal(t, "unknown", classifyError(errors.New("boom")))
}
