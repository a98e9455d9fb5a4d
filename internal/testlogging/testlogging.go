// Package testlogging routes library log output to the go test log.
package testlogging

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/dparrini/go-tempfile/logging"
)

// Context returns a context with an attached logger that emits all log
// entries to t's log output.
func Context(t testing.TB) context.Context {
	t.Helper()

	return ContextWithLevel(t, zapcore.DebugLevel)
}

// ContextWithLevel returns a context with an attached logger that emits log
// entries with the given level or above.
func ContextWithLevel(t testing.TB, level zapcore.Level) context.Context {
	t.Helper()

	return logging.WithLogger(context.Background(), func(module string) logging.Logger {
		return Printf(t.Logf, "["+module+"] ", level)
	})
}
