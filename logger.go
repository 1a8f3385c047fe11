package g3d

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with format-specific helpers so encode/decode
// paths log consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil, a
// default text handler to stderr at info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output. It is the default
// for the container codec.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithAttribute adds the attribute's canonical key to the logger.
func (l *Logger) WithAttribute(key string) *Logger {
	return &Logger{Logger: l.Logger.With("attribute", key)}
}

// LogEncode logs the outcome of a container encode.
func (l *Logger) LogEncode(attributes int, bytes int64, err error) {
	if err != nil {
		l.Error("container encode failed",
			"attributes", attributes,
			"error", err,
		)
		return
	}
	l.Debug("container encoded",
		"attributes", attributes,
		"bytes", bytes,
	)
}

// LogDecode logs the outcome of a container decode.
func (l *Logger) LogDecode(attributes int, bytes int, err error) {
	if err != nil {
		l.Error("container decode failed",
			"bytes", bytes,
			"error", err,
		)
		return
	}
	l.Debug("container decoded",
		"attributes", attributes,
		"bytes", bytes,
	)
}
