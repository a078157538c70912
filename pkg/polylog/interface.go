package polylog

import (
	"context"
	"fmt"
	"time"
)

// Level is an interface which abstracts over the level types of the supported
// logging libraries.
type Level interface {
	// String returns the string representation of the level.
	String() string

	// Int returns the integer representation of the level.
	Int() int
}

// LoggerOption is a function which receives a Logger for configuration. It is
// the responsibility of each implementation to type-assert the argument to
// its own concrete logger type.
type LoggerOption func(Logger)

// Logger is an interface which mirrors (a subset of) the zerolog.Logger API.
// It allows the logging backend to be swapped without changing call sites.
type Logger interface {
	// Debug starts a new message with debug level.
	Debug() Event

	// Info starts a new message with info level.
	Info() Event

	// Warn starts a new message with warn level.
	Warn() Event

	// Error starts a new message with error level.
	Error() Event

	// With creates a child logger with the fields constructed from keyVals
	// added to its context. keyVals MUST be an even number of key, value pairs.
	With(keyVals ...any) Logger

	// WithLevel starts a new message with the given level.
	WithLevel(level Level) Event

	// WithContext returns a copy of ctx with the receiver logger attached.
	WithContext(ctx context.Context) context.Context

	// Write implements io.Writer.
	Write(p []byte) (n int, err error)
}

// Event represents a log event. It is instantiated by one of the level methods
// of Logger and finalized by the Msg, Msgf or Send methods.
type Event interface {
	Str(key, value string) Event
	Strs(key string, values []string) Event
	Bool(key string, value bool) Event
	Int(key string, value int) Event
	Int64(key string, value int64) Event
	Uint64(key string, value uint64) Event

	// Err adds the field "error" with the given error value to the event.
	// If err is nil, no field is added.
	Err(err error) Event

	Time(key string, value time.Time) Event
	Dur(key string, value time.Duration) Event

	// Stringer adds the field key with value.String() to the event.
	Stringer(key string, value fmt.Stringer) Event

	// Fields is a helper function to use a map or slice to set fields.
	Fields(fields any) Event

	// Enabled returns false if the event is going to be filtered out by the
	// log level or sampling.
	Enabled() bool

	// Discard disables the event so Msg(f)/Send won't print it.
	Discard() Event

	// Msg sends the event with msg added as the message field if not empty.
	//
	// NOTICE: once this method is called, the Event should be disposed.
	Msg(message string)

	// Msgf sends the event with formatted msg added as the message field if
	// not empty.
	Msgf(format string, args ...any)

	// Send is equivalent to calling Msg("").
	Send()
}
