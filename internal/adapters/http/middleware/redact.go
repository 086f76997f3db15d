package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
)

const redacted = "[REDACTED]"

// sensitiveParams are query parameters that carry credentials. The
// websocket handshake passes its JWT as ?token=.
var sensitiveParams = map[string]bool{
	"token":        true,
	"access_token": true,
}

// RedactHeaders renders headers as log attributes sorted by name, masking
// those listed in logging.SensitiveHeaders. Multi-value headers are comma-joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := slices.Sorted(maps.Keys(headers))
	attrs := make([]slog.Attr, 0, len(names))
	for _, k := range names {
		v := strings.Join(headers[k], ",")
		if logging.SensitiveHeaders[strings.ToLower(k)] {
			v = redacted
		}
		attrs = append(attrs, slog.String(k, v))
	}
	return attrs
}

// RedactQuery re-encodes a query string with credential parameters masked.
// An unparsable query is dropped entirely.
func RedactQuery(raw string) string {
	if raw == "" {
		return ""
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return redacted
	}
	for k := range values {
		if sensitiveParams[strings.ToLower(k)] {
			values[k] = []string{redacted}
		}
	}
	return values.Encode()
}
