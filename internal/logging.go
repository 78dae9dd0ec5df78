package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Package-private logger instance to keep logging isolated from applications
// that also use logrus. Do NOT use logrus.StandardLogger() here.
var logger = logrus.New()

// EnableDebugLogging sets the logger level to Debug.
func EnableDebugLogging() {
	logger.SetLevel(logrus.DebugLevel)
}

// DisableDebugLogging sets the logger level to Panic so no debug/info logs are emitted.
func DisableDebugLogging() {
	logger.SetLevel(logrus.PanicLevel)
}

// SetLevel allows callers to control the library logger level independently
// from any application loggers.
func SetLevel(level logrus.Level) {
	logger.SetLevel(level)
}

// SetOutput allows redirecting log output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetFormatter allows customizing the log formatter.
func SetFormatter(f logrus.Formatter) {
	logger.SetFormatter(f)
}

// Logger exposes the underlying logger for advanced configuration or hooks.
// Do not replace the returned pointer's value; prefer Set* helpers.
func Logger() *logrus.Logger {
	return logger
}

// Log logs a debug-level message.
func Log(v ...any) {
	logger.Debug(v...)
}

// Logf logs a formatted debug-level message.
func Logf(format string, v ...any) {
	logger.Debugf(format, v...)
}

// Warnf logs a formatted warn-level message.
func Warnf(format string, v ...any) {
	logger.Warnf(format, v...)
}

// Errorf logs a formatted error-level message.
func Errorf(format string, v ...any) {
	logger.Errorf(format, v...)
}

// WithError attaches an error to the entry for structured logging.
func WithError(err error) *logrus.Entry {
	return logger.WithError(err)
}

// WithField attaches a key/value field to the entry for structured logging.
func WithField(key string, value any) *logrus.Entry {
	return logger.WithField(key, value)
}

// WithFields attaches multiple fields to the entry for structured logging.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// Fields is an alias exported to allow callers to construct structured fields
// without importing logrus directly when using the internal logger helpers.
type Fields = logrus.Fields
