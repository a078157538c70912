package polyzero

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/vulcanize/registry-client/pkg/polylog"
)

// WithOutput sets the writer which log lines are written to.
func WithOutput(output io.Writer) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zerologLogger).Logger = logger.(*zerologLogger).Logger.Output(output)
	}
}

// WithLevel sets the minimum level which will be written.
func WithLevel(level polylog.Level) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zerologLogger).level = zerolog.Level(level.Int())
	}
}

// WithTimestamp adds a "time" field to every event.
func WithTimestamp() polylog.LoggerOption {
	return func(logger polylog.Logger) {
		zl := logger.(*zerologLogger)
		zl.Logger = zl.Logger.With().Timestamp().Logger()
	}
}

// WithSetupFn gives direct access to the underlying zerolog.Logger.
func WithSetupFn(fn func(logger *zerolog.Logger)) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		fn(&logger.(*zerologLogger).Logger)
	}
}
