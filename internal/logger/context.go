package logger

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

// ContextWithLogger attaches l to ctx for the service layer to pick up.
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger attached to ctx, falling back to zap.L().
// zap.L() is a no-op until main installs a logger with zap.ReplaceGlobals.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.L()
}

// ForContact returns the context logger tagged with the contact name.
func ForContact(ctx context.Context, name string) *zap.Logger {
	return FromContext(ctx).With(zap.String("contact", name))
}
