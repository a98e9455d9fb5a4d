// Package logging provides scoped loggers for the library, injected through
// the context.
package logging

import (
	"context"

	"go.uber.org/zap"
)

// Logger is an instance of a logger used throughout the library.
type Logger = *zap.SugaredLogger

// LoggerFactory retrieves a logger for a given module.
type LoggerFactory func(module string) Logger

// NullLogger discards all log messages.
var NullLogger = zap.NewNop().Sugar() //nolint:gochecknoglobals

// Module returns an accessor for the logger of the given module. The logger
// is resolved from the context at call time; a context without an associated
// logger resolves to NullLogger.
func Module(module string) func(ctx context.Context) Logger {
	return func(ctx context.Context) Logger {
		if f, ok := ctx.Value(loggerKey).(LoggerFactory); ok && f != nil {
			return f(module)
		}

		return NullLogger
	}
}
