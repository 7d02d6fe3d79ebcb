package logger

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type metaKey struct{}

// meta is the request scoped logging metadata carried in a context.
// It is copied on every With* call so parents never observe child values.
type meta struct {
	rid      string
	updateID int
	userID   int64
	chatID   int64
	handler  string
	state    string
}

func metaFrom(ctx context.Context) meta {
	if ctx == nil {
		return meta{}
	}
	m, _ := ctx.Value(metaKey{}).(meta)
	return m
}

func withMeta(ctx context.Context, fn func(*meta)) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	m := metaFrom(ctx)
	fn(&m)
	return context.WithValue(ctx, metaKey{}, m)
}

// WithRID attaches request correlation id into context.
func WithRID(ctx context.Context, rid string) context.Context {
	return withMeta(ctx, func(m *meta) { m.rid = rid })
}

// RIDFrom extracts rid from context if present.
func RIDFrom(ctx context.Context) string { return metaFrom(ctx).rid }

// WithUpdateMeta attaches update, user and chat identifiers to context.
func WithUpdateMeta(ctx context.Context, updateID int, userID, chatID int64) context.Context {
	return withMeta(ctx, func(m *meta) {
		m.updateID = updateID
		m.userID = userID
		m.chatID = chatID
	})
}

// UserIDFrom extracts Telegram user ID from context.
func UserIDFrom(ctx context.Context) int64 { return metaFrom(ctx).userID }

// ChatIDFrom extracts chat id from context.
func ChatIDFrom(ctx context.Context) int64 { return metaFrom(ctx).chatID }

// UpdateIDFrom extracts update identifier from context.
func UpdateIDFrom(ctx context.Context) int { return metaFrom(ctx).updateID }

// WithHandler stores handler identifier in context for downstream logs.
func WithHandler(ctx context.Context, handler string) context.Context {
	if handler == "" {
		return ctxOrBackground(ctx)
	}
	return withMeta(ctx, func(m *meta) { m.handler = handler })
}

// HandlerFrom returns handler identifier from context if present.
func HandlerFrom(ctx context.Context) string { return metaFrom(ctx).handler }

// WithState records the conversation state tag an event is processed in.
func WithState(ctx context.Context, state string) context.Context {
	return withMeta(ctx, func(m *meta) { m.state = state })
}

// StateFrom returns the conversation state tag stored in ctx.
func StateFrom(ctx context.Context) string { return metaFrom(ctx).state }

func ctxOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func mergeContext(ctx context.Context, fields map[string]any) {
	m := metaFrom(ctx)
	setIfAbsent(fields, "rid", m.rid, m.rid != "")
	setIfAbsent(fields, "update_id", m.updateID, m.updateID != 0)
	setIfAbsent(fields, "user_id", m.userID, m.userID != 0)
	setIfAbsent(fields, "chat_id", m.chatID, m.chatID != 0)
	setIfAbsent(fields, "handler", m.handler, m.handler != "")
	setIfAbsent(fields, "state", m.state, m.state != "")
}

func setIfAbsent(fields map[string]any, key string, val any, present bool) {
	if !present {
		return
	}
	if _, ok := fields[key]; !ok {
		fields[key] = val
	}
}

// Sanitize drops control and format runes from s, keeping tabs and newlines.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, s)
}

// SanitizeLimit applies Sanitize and limits the output length in runes.
func SanitizeLimit(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(Sanitize(s))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max])
}

// BuildRID returns a correlation identifier in the format updateID:chatID:userID.
func BuildRID(updateID int, chatID, userID int64) string {
	return fmt.Sprintf("%d:%d:%d", updateID, chatID, userID)
}

// CompactRID shortens a colon separated RID into base36 segments.
// Input that does not match the expected format is returned unchanged.
func CompactRID(rid string) string {
	rid = strings.TrimSpace(rid)
	parts := strings.Split(rid, ":")
	if len(parts) != 3 {
		return rid
	}
	for i, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return rid
		}
		parts[i] = strconv.FormatInt(n, 36)
	}
	return strings.Join(parts, ".")
}
