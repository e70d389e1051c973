package logger

import (
	"log/slog"
	"strings"
)

// Token-shaped values are masked wherever they appear, whatever the key.
var sensitiveValuePrefixes = []string{
	"mhtk_", // bearer token
	"mhth_", // token hash
}

// Non-empty string values under keys containing one of these are replaced
// outright.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"token",
	"credential",
	"authorization",
	"bearer",
}

const redactedValue = "***REDACTED***"

// redactSensitive is installed as slog.HandlerOptions.ReplaceAttr.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindString {
		return a
	}
	s := a.Value.String()
	if masked, ok := mask(s); ok {
		return slog.String(a.Key, masked)
	}
	if s != "" && IsSensitiveKey(a.Key) {
		return slog.String(a.Key, redactedValue)
	}
	return a
}

// mask keeps the prefix and three characters at each end of the body.
func mask(s string) (string, bool) {
	for _, prefix := range sensitiveValuePrefixes {
		body, ok := strings.CutPrefix(s, prefix)
		if !ok {
			continue
		}
		if len(body) <= 6 {
			return prefix + "***", true
		}
		return prefix + body[:3] + "..." + body[len(body)-3:], true
	}
	return s, false
}

// IsSensitiveKey reports whether key names a secret.
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(k, pattern) {
			return true
		}
	}
	return false
}
