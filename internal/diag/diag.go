// Package diag holds the shared logger used across pipeline stages.
// Every stage logs at Debug level only, so the transpiler is silent
// by default and never leaks diagnostic text into emitted shader code.
package diag

import "github.com/sirupsen/logrus"

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// Logger returns the package-wide logger instance.
func Logger() *logrus.Logger {
	return logger
}

// SetLevel adjusts the shared logger's verbosity, e.g. to logrus.DebugLevel
// for tracing each pipeline stage boundary.
func SetLevel(level logrus.Level) {
	logger.SetLevel(level)
}
