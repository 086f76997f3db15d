package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, lowercased, the request headers that carry
// credentials. The access log's header dump consults it too.
var SensitiveHeaders = map[string]bool{
	"authorization":          true,
	"cookie":                 true,
	"set-cookie":             true,
	"x-api-key":              true,
	"x-webhook-signature":    true,
	"sec-websocket-protocol": true,
}

// Attribute keys whose values are always secret, whatever they hold.
var sensitiveKeys = []string{
	"password",
	"password_hash",
	"secret",
	"jwt_secret",
	"token",
	"access_token",
}

// Key prefixes covering variants such as "secret_key" or "password_new".
var sensitivePrefixes = []string{"secret_", "password", "api_key"}

// Value shapes that are masked wherever they show up, for secrets that
// reach a log line under an innocent key.
var sensitiveValues = []*regexp.Regexp{
	// Authorization header values.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// Compact JWTs; ten characters per segment keeps version strings out.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// Inline "api_key=..." fragments.
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// bcrypt password hashes.
	regexp.MustCompile(`\$2[aby]?\$\d{2}\$[./A-Za-z0-9]{53}`),
}

// newRedactAttr builds the slog ReplaceAttr hook that masks secrets by key,
// key prefix and value shape.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveKeys {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, p := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(p))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
