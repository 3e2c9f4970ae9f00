package logger

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// AppLogger is a logrus-backed logger used where a plain io.Writer or
// stdlib-style logger is needed (e.g. routing NSQ client output).
type AppLogger struct {
	*logrus.Logger
}

// NewAppLogger creates a logrus logger writing JSON to the given output
func NewAppLogger(level string, out io.Writer) *AppLogger {
	l := logrus.New()
	l.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	return &AppLogger{Logger: l}
}
