// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/task, domain/project, ...).
// This root package holds sentinel errors, the error code taxonomy, the
// authenticated Principal, shared enums and the Event payload emitted by
// every mutating operation.
package domain
