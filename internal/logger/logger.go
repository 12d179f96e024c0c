package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

type contextKey string

const loggerKey contextKey = "logger"

// New returns a console logger on w filtered at logLevel. An empty level
// means warn; an unrecognized one also falls back to warn and says so.
func New(w io.Writer, logLevel string) zerolog.Logger {
	level, err := zerolog.ParseLevel(logLevel)
	invalid := err != nil
	if invalid || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	l := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
	if invalid {
		l.Warn().Str("log_level", logLevel).Msg("unknown log level, using warn")
	}
	return l
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, &l)
}

// FromContext extracts the logger from ctx, falling back to a warn-level stderr logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	l, ok := ctx.Value(loggerKey).(*zerolog.Logger)
	if !ok {
		fallback := New(os.Stderr, "warn")
		return &fallback
	}
	return l
}
