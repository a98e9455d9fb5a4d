package logging

import "context"

type contextKey string

const loggerKey contextKey = "logger"

// WithLogger returns a derived context with an associated logger factory.
func WithLogger(ctx context.Context, f LoggerFactory) context.Context {
	return context.WithValue(ctx, loggerKey, f)
}
