package middleware_test

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{
		"Authorization":          {"Bearer eyJhbGciOi"},
		"Cookie":                 {"session=abc"},
		"X-Api-Key":              {"k-123"},
		"Sec-Websocket-Protocol": {"bearer, eyJhbGciOi"},
		"Accept":                 {"application/json", "text/plain"},
		"X-Request-Id":           {"req-1"},
	}

	got := middleware.RedactHeaders(headers)

	want := []slog.Attr{
		slog.String("Accept", "application/json,text/plain"),
		slog.String("Authorization", "[REDACTED]"),
		slog.String("Cookie", "[REDACTED]"),
		slog.String("Sec-Websocket-Protocol", "[REDACTED]"),
		slog.String("X-Api-Key", "[REDACTED]"),
		slog.String("X-Request-Id", "req-1"),
	}
	assert.Equal(t, want, got)
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if got := middleware.RedactHeaders(http.Header{}); len(got) != 0 {
		t.Errorf("RedactHeaders(empty) = %v, want no attrs", got)
	}
}

func TestRedactQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "plain filters kept", raw: "status=todo&page=2", want: "page=2&status=todo"},
		{name: "websocket token masked", raw: "token=eyJhbGciOi", want: "token=%5BREDACTED%5D"},
		{name: "case insensitive", raw: "Access_Token=x&limit=5", want: "Access_Token=%5BREDACTED%5D&limit=5"},
		{name: "unparsable dropped", raw: "a=%zz", want: "[REDACTED]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := middleware.RedactQuery(tt.raw); got != tt.want {
				t.Errorf("RedactQuery(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
