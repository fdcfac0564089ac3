package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// Setup configures the standard logrus logger: JSON lines to stdout at the
// given level. Unknown levels fall back to info.
func Setup(level string) {
	SetupWithOutput(level, os.Stdout)
}

// SetupWithOutput is Setup with a custom writer.
func SetupWithOutput(level string, out io.Writer) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)

	switch strings.ToLower(level) {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger tagged with the calling user and request id
func WithContext(ctx context.Context) *Logger {
	logger := New()

	// Extract user information from context
	if email, ok := ctx.Value("email").(string); ok && email != "" {
		logger.Entry = logger.Entry.WithField("user", email)
	} else if username, ok := ctx.Value("username").(string); ok && username != "" {
		logger.Entry = logger.Entry.WithField("user", username)
	} else {
		logger.Entry = logger.Entry.WithField("user", "unknown")
	}

	if requestID, ok := ctx.Value("request_id").(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
