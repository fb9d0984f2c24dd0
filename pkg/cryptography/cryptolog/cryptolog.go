// Package cryptolog provides the slog-backed logging surface used at
// operation boundaries throughout pkg/cryptography: key generation, PEM
// import/export, and envelope seal/open. Call sites log algorithm names,
// key sizes, and byte counts — never key material, salts, or plaintext.
package cryptolog

import (
	"context"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// Logger defines the subset of slog functionality this module uses. The
// interface is intentionally small so callers can supply their own
// implementation for testing or for a stricter redaction policy.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the given slog.Logger. Passing nil binds
// to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Redacted marks an attribute carrying sensitive material; it logs a fixed
// placeholder instead of the value so key material and plaintext never
// reach a log sink.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder returns the canonical string standing in for a redacted
// value.
func Placeholder() string {
	return redactedPlaceholder
}

// noop discards everything; used as the zero-value Logger so callers that
// never configure one get silence rather than a nil-pointer panic.
type noop struct{}

func (noop) Debug(context.Context, string, ...any) {}
func (noop) Info(context.Context, string, ...any)  {}
func (noop) Warn(context.Context, string, ...any)  {}
func (noop) Error(context.Context, string, ...any) {}
func (noop) With(...any) Logger                    { return noop{} }

// Noop returns a Logger that discards everything.
func Noop() Logger { return noop{} }
