package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is private so keys cannot collide with other packages.
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userKey      contextKey = "user_in_session"
	loggerKey    contextKey = "logger"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithUserInSession stores the acting user's identity, used to fill the
// modified_by_user audit column.
func WithUserInSession(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserInSession returns the acting user, or "SYSTEM" when the request
// carried no identity.
func GetUserInSession(ctx context.Context) string {
	if u, ok := ctx.Value(userKey).(string); ok && u != "" {
		return u
	}
	return "SYSTEM"
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, falling back to the given
// default so callers never receive nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}
