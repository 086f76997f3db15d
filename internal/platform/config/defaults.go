package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 1
	defaultBcryptCost   = 10

	defaultRateLimitRPS   = 20
	defaultRateLimitBurst = 40

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"database.path":           "tracker.db",
		"database.log_level":      "warn",
		"database.max_open_conns": defaultMaxOpenConns,
		"database.auto_migrate":   true,

		"auth.jwt_secret":  "",
		"auth.issuer":      "project-tracker",
		"auth.audience":    "project-tracker-api",
		"auth.token_ttl":   "24h",
		"auth.bcrypt_cost": defaultBcryptCost,

		"rate_limit.requests_per_second": defaultRateLimitRPS,
		"rate_limit.burst_size":          defaultRateLimitBurst,

		"webhook.enabled":                         false,
		"webhook.base_url":                        "",
		"webhook.path":                            "/events",
		"webhook.secret":                          "",
		"webhook.timeout":                         "10s",
		"webhook.retry.max_attempts":              defaultRetryMaxAttempts,
		"webhook.retry.initial_interval":          "100ms",
		"webhook.retry.max_interval":              "10s",
		"webhook.retry.multiplier":                defaultRetryMultiplier,
		"webhook.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"webhook.circuit_breaker.timeout":         "30s",
		"webhook.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"webhook.rate_limit.requests_per_second":  0,
		"webhook.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "project-tracker",
	}
}
