package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

const minJWTSecretLen = 32

// Validate reports every invalid setting at once, each prefixed with its
// dotted key.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port", "must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout", "must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout", "must be positive")
	p.check(s.RequestTimeout > 0, "server.request_timeout", "must be positive")

	p.oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", c.Log.Format, "json", "text")

	d := c.Database
	p.check(d.Path != "", "database.path", "must not be empty")
	p.oneOf("database.log_level", d.LogLevel, "silent", "error", "warn", "info")
	p.check(d.MaxOpenConns >= 1, "database.max_open_conns", "must be >= 1, got %d", d.MaxOpenConns)

	a := c.Auth
	p.check(len(a.JWTSecret) >= minJWTSecretLen, "auth.jwt_secret", "must be at least %d bytes", minJWTSecretLen)
	p.check(a.TokenTTL > 0, "auth.token_ttl", "must be positive")
	p.check(a.BcryptCost >= 4 && a.BcryptCost <= 31, "auth.bcrypt_cost", "must be between 4 and 31, got %d", a.BcryptCost)

	p.rateLimit("rate_limit", c.RateLimit)

	if w := c.Webhook; w.Enabled {
		p.check(validBaseURL(w.BaseURL), "webhook.base_url", "must be an absolute http(s) URL when webhooks are enabled, got %q", w.BaseURL)
		p.check(w.Timeout > 0, "webhook.timeout", "must be positive")
		p.check(w.Retry.MaxAttempts >= 1, "webhook.retry.max_attempts", "must be >= 1, got %d", w.Retry.MaxAttempts)
		p.check(w.Retry.Multiplier > 0, "webhook.retry.multiplier", "must be positive, got %g", w.Retry.Multiplier)
		p.check(w.CircuitBreaker.MaxFailures >= 1, "webhook.circuit_breaker.max_failures",
			"must be >= 1, got %d", w.CircuitBreaker.MaxFailures)
		p.rateLimit("webhook.rate_limit", w.RateLimit)
	}

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
		p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint", "must not be empty when exporter is otlp")
	}

	return p.err()
}

// problems collects validation failures.
type problems []error

func (p *problems) check(ok bool, key, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf("%s %s", key, fmt.Sprintf(format, args...)))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.check(slices.Contains(allowed, got), key, "must be one of: %s; got %q", strings.Join(allowed, ", "), got)
}

func (p *problems) rateLimit(key string, r RateLimitConfig) {
	p.check(r.RequestsPerSecond >= 0, key+".requests_per_second", "must not be negative")
	p.check(r.RequestsPerSecond <= 0 || r.BurstSize >= 1, key+".burst_size",
		"must be >= 1 when limiting is enabled, got %d", r.BurstSize)
}

func (p problems) err() error { return errors.Join(p...) }

func validBaseURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
