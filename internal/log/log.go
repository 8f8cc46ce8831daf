// Package log builds the game's logrus logger. Verbosity comes from the
// repeatable -v flag.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LevelFromVerbosity maps a -v count to a level: 0 warn, 1 info, 2+ debug.
func LevelFromVerbosity(v int) logrus.Level {
	switch {
	case v <= 0:
		return logrus.WarnLevel
	case v == 1:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

func New(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return l
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *logrus.Logger {
	return New(io.Discard, logrus.PanicLevel)
}
