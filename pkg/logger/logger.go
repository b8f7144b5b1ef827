package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	return l
}

// Configure sets the global level and formatter. Format is "text" or "json".
func Configure(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	std.SetLevel(lvl)

	switch format {
	case "json":
		std.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	case "text", "":
		std.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	return nil
}

// WithComponent returns an entry tagged with a component field.
func WithComponent(component string) *logrus.Entry {
	return std.WithField("component", component)
}

// WithFields returns an entry carrying the given fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return std.WithFields(fields)
}

// Debug logs a debug message.
func Debug(format string, v ...interface{}) {
	std.Debugf(format, v...)
}

// Info logs an info message.
func Info(format string, v ...interface{}) {
	std.Infof(format, v...)
}

// Warn logs a warning message.
func Warn(format string, v ...interface{}) {
	std.Warnf(format, v...)
}

// Error logs an error message.
func Error(format string, v ...interface{}) {
	std.Errorf(format, v...)
}
