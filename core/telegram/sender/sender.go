// Package sender executes outbound Telegram calls with bounded retries.
package sender

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/barbot/core/logger"
	"github.com/m3rciful/barbot/core/telegram/netutil"
)

var tokenRe = regexp.MustCompile(`bot[0-9]+:[A-Za-z0-9_-]+`)

// Options controls retries of a single call.
type Options struct {
	MaxRetries   int
	RetryBackoff time.Duration
	// MaxDuration bounds the time spent retrying a single call.
	MaxDuration time.Duration
}

// Sender runs calls synchronously so the caller observes them in order.
// Network failures back off linearly; flood-wait answers sleep for the
// interval Telegram asked for.
type Sender struct {
	opts Options
	errs atomic.Uint64
	wait func(ctx context.Context, d time.Duration) error
}

// New builds a Sender with defaults for zeroed options.
func New(opts Options) *Sender {
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = 2 * time.Second
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = 12 * time.Second
	}
	return &Sender{opts: opts, wait: sleep}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ErrorCount returns the number of calls that failed for good.
func (s *Sender) ErrorCount() uint64 {
	return s.errs.Load()
}

// Do executes run, retrying while the failure looks transient. The run
// closure must be safe to repeat.
func (s *Sender) Do(ctx context.Context, action, endpoint string, run func() error) error {
	if run == nil {
		return errors.New("telegram sender: nil run function")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	deadlineCtx, cancel := context.WithTimeout(ctx, s.opts.MaxDuration)
	defer cancel()

	start := time.Now()
	attrs := sendLogAttrs(ctx, action, endpoint)
	attempts := s.opts.MaxRetries + 1

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := deadlineCtx.Err(); err != nil {
			lastErr = err
			break
		}
		err := run()
		if err == nil {
			if attempt > 1 {
				logger.Info(ctx, logger.CompSender, "send.retry.success",
					append(attrs, slog.Int("attempt", attempt), slog.Int("elapsed_ms", durationToMS(time.Since(start))))...)
			}
			logger.Debug(ctx, logger.CompSender, "send.success",
				append(attrs, slog.Int("elapsed_ms", durationToMS(time.Since(start))))...)
			return nil
		}
		lastErr = err
		if attempt == attempts {
			break
		}
		delay, ok := s.retryDelay(err, attempt)
		if !ok {
			break
		}
		logger.Debug(ctx, logger.CompSender, "send.retry.backoff",
			append(attrs, slog.Int("attempt", attempt), slog.Duration("delay", delay))...)
		if werr := s.wait(deadlineCtx, delay); werr != nil {
			lastErr = errors.Join(err, werr)
			break
		}
	}

	s.errs.Add(1)
	logger.Error(ctx, logger.CompSender, "send.fail",
		append(attrs,
			slog.String("error", sanitizeErrorMessage(lastErr)),
			slog.String("error_kind", classifyError(lastErr)),
			slog.Int("attempts", attempts),
			slog.Int("elapsed_ms", durationToMS(time.Since(start))),
		)...)
	return lastErr
}

func (s *Sender) retryDelay(err error, attempt int) (time.Duration, bool) {
	if after, ok := floodWait(err); ok {
		return after, true
	}
	if netutil.ShouldRetry(err) {
		return s.opts.RetryBackoff * time.Duration(attempt), true
	}
	return 0, false
}

// floodWait extracts the server requested pause from a 429 answer.
func floodWait(err error) (time.Duration, bool) {
	var fe tele.FloodError
	if errors.As(err, &fe) {
		return retryAfter(fe.RetryAfter), true
	}
	var pfe *tele.FloodError
	if errors.As(err, &pfe) && pfe != nil {
		return retryAfter(pfe.RetryAfter), true
	}
	return 0, false
}

func retryAfter(seconds int) time.Duration {
	if seconds <= 0 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}

func sendLogAttrs(ctx context.Context, action, endpoint string) []slog.Attr {
	attrs := []slog.Attr{slog.String("action", action)}
	if endpoint != "" {
		attrs = append(attrs, slog.String("endpoint", endpoint))
	}
	if rid := logger.RIDFrom(ctx); rid != "" {
		attrs = append(attrs, slog.String("rid", rid))
	}
	if updateID := logger.UpdateIDFrom(ctx); updateID != 0 {
		attrs = append(attrs, slog.Int("update_id", updateID))
	}
	if chatID := logger.ChatIDFrom(ctx); chatID != 0 {
		attrs = append(attrs, slog.Int64("chat_id", chatID))
	}
	return attrs
}

func durationToMS(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(logger.RoundMS(d) / time.Millisecond)
}

func classifyError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	if _, ok := floodWait(err); ok {
		return "flood"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return "timeout"
		}
		return "dns"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() {
			return "timeout"
		}
		if opErr.Op == "dial" {
			return "dial"
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return "timeout"
	}

	var alertErr tls.AlertError
	if errors.As(err, &alertErr) {
		return "tls"
	}

	status := httpStatusFromError(err)
	switch {
	case status >= 500:
		return "http_5xx"
	case status >= 400:
		return "http_4xx"
	}
	return "unknown"
}

// sanitizeErrorMessage keeps bot tokens out of the logs.
func sanitizeErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return tokenRe.ReplaceAllString(err.Error(), "bot<redacted>")
}

func httpStatusFromError(err error) int {
	if err == nil {
		return 0
	}
	var apiErr *tele.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	if _, ok := floodWait(err); ok {
		return http.StatusTooManyRequests
	}

	// telebot formats unknown API errors as "telegram: <text> (<code>)".
	msg := err.Error()
	open := strings.LastIndex(msg, "(")
	closing := strings.LastIndex(msg, ")")
	if open >= 0 && closing > open+1 {
		if code, convErr := strconv.Atoi(strings.TrimSpace(msg[open+1 : closing])); convErr == nil {
			return code
		}
	}
	return 0
}
