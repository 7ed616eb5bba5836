package log

import (
	"io"
	"log/slog"

	"github.com/rs/zerolog"
)

// NewWarnLogger returns the human-readable zerolog logger used as the sink for
// errors.Warn. Records below warn, or below level when it is stricter, are
// dropped.
func NewWarnLogger(w io.Writer, level string) zerolog.Logger {
	zl := zerolog.WarnLevel
	if lvl, err := ToLogLevel(level); err == nil && lvl > slog.LevelWarn {
		zl = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(zl)
}
