package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a decomposition run.
type Option func(*options)

type options struct {
	log      logrus.FieldLogger
	maxDepth int
}

// A logger that throws everything away. Decomposition is silent unless the
// caller asks for output.
func newNopLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = io.Discard
	logger.Level = logrus.PanicLevel
	return logger
}

func defaultOptions() options {
	return options{log: newNopLogger()}
}

// WithLogger routes per-split debug output to the given logger. Passing nil
// restores the silent default.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		if log == nil {
			log = newNopLogger()
		}
		o.log = log
	}
}

// WithMaxDepth caps the recursion depth. Zero or negative means the default,
// which is one more than the vertex count of the input. Every split resolves a
// reflex vertex without creating a new one, so a valid input never gets close.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}
