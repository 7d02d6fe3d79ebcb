package logger

import "strings"

var levelNames = map[string]string{
	"debug":   "DEBUG",
	"info":    "INFO",
	"warn":    "WARN",
	"warning": "WARN",
	"error":   "ERROR",
}

// Closed vocabularies; unknown values of cache/outcome are dropped.
var (
	statusValues  = set("ok", "fail", "skip", "retry", "rate_limited", "cancelled", "not_found", "invalid")
	cacheValues   = set("hit", "miss", "refresh", "bypass")
	outcomeValues = set("ok", "fail", "cancelled", "rate_limited")
)

func set(values ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

func normalizeLevel(level string) string {
	if level == "" {
		return "INFO"
	}
	if mapped, ok := levelNames[strings.ToLower(level)]; ok {
		return mapped
	}
	return strings.ToUpper(level)
}

func inVocabulary(vocab map[string]struct{}, value string) (string, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	_, ok := vocab[value]
	return value, ok
}

var defaultKeyOrder = []string{
	"ts",
	"level",
	"component",
	"event",
	"status",
	"rid",
	"rid_full",
	"ts_unix_nano",
	"update_id",
	"user_id",
	"chat_id",
	"chat_type",
	"handler",
	"state",
	"next_state",
	"intent",
	"cb_key",
	"outcome",
	"duration_ms",
	"messages",
	"kb",
	"query",
	"count",
	"shown",
	"letter",
	"candidates",
	"round",
	"cache",
	"payload",
	"lang",
	"username",
	"mode",
	"listen",
	"public_url",
	"http_code",
	"driver",
	"db",
	"host",
	"port",
	"err",
	"err_code",
	"err_kind",
	"cause",
	"retryable",
	"attempts",
	"backoff_ms",
}
