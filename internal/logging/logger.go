// Package logging defines the structured-logging interface used by the
// client. The concrete adapter wraps log/slog; tests substitute a no-op.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are
// key-value pairs:
//
//	log.Info(ctx, "story created", "storyId", id)
//
// Credentials (passwords, auth tokens) must never be passed as values.
type Logger interface {
	// Debug logs request-level detail, normally suppressed.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given
	// key-value pairs.
	With(args ...any) Logger
}
