package polylog

import (
	"context"
	"fmt"
	"time"
)

var (
	_ Logger = disabledLogger{}
	_ Event  = disabledEvent{}
)

// disabledLogger is returned by Ctx when neither the context nor
// DefaultContextLogger provide a logger. Every event it starts is discarded.
type disabledLogger struct{}

func (disabledLogger) Debug() Event { return disabledEvent{} }
func (disabledLogger) Info() Event { return disabledEvent{} }
func (disabledLogger) Warn() Event { return disabledEvent{} }
func (disabledLogger) Error() Event { return disabledEvent{} }
func (l disabledLogger) With(...any) Logger { return l }
func (disabledLogger) WithLevel(Level) Event { return disabledEvent{} }
func (disabledLogger) Write(p []byte) (int, error) { return len(p), nil }

func (l disabledLogger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, CtxKey, l)
}

type disabledEvent struct{}

func (e disabledEvent) Str(string, string) Event { return e }
func (e disabledEvent) Strs(string, []string) Event { return e }
func (e disabledEvent) Bool(string, bool) Event { return e }
func (e disabledEvent) Int(string, int) Event { return e }
func (e disabledEvent) Int64(string, int64) Event { return e }
func (e disabledEvent) Uint64(string, uint64) Event { return e }
func (e disabledEvent) Err(error) Event { return e }
func (e disabledEvent) Time(string, time.Time) Event { return e }
func (e disabledEvent) Dur(string, time.Duration) Event { return e }
func (e disabledEvent) Stringer(string, fmt.Stringer) Event { return e }
func (e disabledEvent) Fields(any) Event { return e }
func (disabledEvent) Enabled() bool { return false }
func (e disabledEvent) Discard() Event { return e }
func (disabledEvent) Msg(string) {}
func (disabledEvent) Msgf(string, ...any) {}
func (disabledEvent) Send() {}
