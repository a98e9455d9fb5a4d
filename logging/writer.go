package logging

import (
	"bytes"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ToWriter returns a LoggerFactory that emits one plain log message per line
// to the provided writer.
func ToWriter(w io.Writer) LoggerFactory {
	return func(module string) Logger {
		return zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
				MessageKey:     "M",
				LineEnding:     zapcore.DefaultLineEnding,
				EncodeTime:     zapcore.ISO8601TimeEncoder,
				EncodeDuration: zapcore.StringDurationEncoder,
			}),
			zapcore.AddSync(w),
			zapcore.DebugLevel,
		)).Sugar()
	}
}

// Printf returns a LoggerFactory that uses the given printf-style function to
// print log output, with each message prefixed by the module name.
func Printf(printf func(msg string, args ...interface{})) LoggerFactory {
	return func(module string) Logger {
		return ToWriter(printfWriter{printf, "[" + module + "] "})(module)
	}
}

type printfWriter struct {
	printf func(msg string, args ...interface{})
	prefix string
}

func (w printfWriter) Write(p []byte) (int, error) {
	n := len(p)

	w.printf("%s%s", w.prefix, bytes.TrimRight(p, "\n"))

	return n, nil
}
