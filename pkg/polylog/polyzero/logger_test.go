package polyzero_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vulcanize/registry-client/pkg/polylog"
	"github.com/vulcanize/registry-client/pkg/polylog/polyzero"
)

func TestZerologLogger_EventFields(t *testing.T) {
	tests := []struct {
		desc                   string
		logFn                  func(polylog.Event)
		expectedOutputContains string
	}{
		{
			desc:                   "Str",
			logFn:                  func(e polylog.Event) { e.Str("bond_id", "bond1").Send() },
			expectedOutputContains: `"bond_id":"bond1"`,
		},
		{
			desc:                   "Strs",
			logFn:                  func(e polylog.Event) { e.Strs("msgs", []string{"a", "b"}).Send() },
			expectedOutputContains: `"msgs":["a","b"]`,
		},
		{
			desc:                   "Bool",
			logFn:                  func(e polylog.Event) { e.Bool("committed", true).Send() },
			expectedOutputContains: `"committed":true`,
		},
		{
			desc:                   "Int64",
			logFn:                  func(e polylog.Event) { e.Int64("height", 42).Send() },
			expectedOutputContains: `"height":42`,
		},
		{
			desc:                   "Uint64",
			logFn:                  func(e polylog.Event) { e.Uint64("gas_limit", 1000).Send() },
			expectedOutputContains: `"gas_limit":1000`,
		},
		{
			desc:                   "Err",
			logFn:                  func(e polylog.Event) { e.Err(errors.New("42")).Send() },
			expectedOutputContains: `"error":"42"`,
		},
		{
			desc:                   "Dur",
			logFn:                  func(e polylog.Event) { e.Dur("elapsed", 2*time.Millisecond).Send() },
			expectedOutputContains: `"elapsed":2`,
		},
		{
			desc:                   "Fields",
			logFn:                  func(e polylog.Event) { e.Fields([]any{"key1", "value1", "key2", 42}).Send() },
			expectedOutputContains: `"key1":"value1","key2":42`,
		},
		{
			desc:                   "Msgf",
			logFn:                  func(e polylog.Event) { e.Msgf("sent %d msgs", 3) },
			expectedOutputContains: `"message":"sent 3 msgs"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			logger, logOutput := newTestLogger(t, polyzero.DebugLevel)
			tt.logFn(logger.Info())
			require.Contains(t, logOutput.String(), tt.expectedOutputContains)
			require.Contains(t, logOutput.String(), `"level":"info"`)
		})
	}
}

func TestZerologLogger_Levels_Discard(t *testing.T) {
	// Log an event at each level with a logger at each level and assert that
	// the event is written if and only if its level is GTE the logger's level.
	for _, loggerLevel := range polyzero.Levels() {
		t.Run(fmt.Sprintf("%s level logger", loggerLevel.String()), func(t *testing.T) {
			logger, logOutput := newTestLogger(t, loggerLevel)

			for _, eventLevel := range polyzero.Levels() {
				event := logger.WithLevel(eventLevel)
				expectedEnabled := eventLevel.Int() >= loggerLevel.Int()
				require.Equal(t, expectedEnabled, event.Enabled())

				event.Msg(eventLevel.String())
				if expectedEnabled {
					require.Contains(t, logOutput.String(), eventLevel.String())
				} else {
					require.NotContains(t, logOutput.String(), eventLevel.String())
				}
			}
		})
	}
}

func TestZerologLogger_Discard(t *testing.T) {
	logger, logOutput := newTestLogger(t, polyzero.DebugLevel)

	event := logger.Error().Discard()
	require.False(t, event.Enabled())

	event.Msg("if you're reading this, the test failed")
	require.Empty(t, logOutput.String())
}

func TestZerologLogger_With(t *testing.T) {
	logger, logOutput := newTestLogger(t, polyzero.DebugLevel)

	logger.Debug().Msg("before")
	require.NotContains(t, logOutput.String(), `"component":"tx_client"`)

	logger = logger.With("component", "tx_client")
	logger.Debug().Msg("after")
	require.Contains(t, logOutput.String(), `"component":"tx_client"`)
}

func TestZerologLogger_Write(t *testing.T) {
	testOutput := "Write()"
	logger, logOutput := newTestLogger(t, polyzero.DebugLevel)

	n, err := logger.Write([]byte(testOutput))
	require.NoError(t, err)
	require.Equal(t, len(testOutput), n)
	require.Contains(t, logOutput.String(), testOutput)
}

func TestZerologLogger_WithContext(t *testing.T) {
	logger, logOutput := newTestLogger(t, polyzero.InfoLevel)
	ctx := logger.WithContext(context.Background())

	polylog.Ctx(ctx).Info().Msg("from context")
	require.Contains(t, logOutput.String(), "from context")

	// A context without an attached logger falls back to the default.
	require.Equal(t, polylog.DefaultContextLogger, polylog.Ctx(context.Background()))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		levelStr      string
		expectedLevel polyzero.Level
	}{
		{levelStr: "debug", expectedLevel: polyzero.DebugLevel},
		{levelStr: "INFO", expectedLevel: polyzero.InfoLevel},
		{levelStr: "warn", expectedLevel: polyzero.WarnLevel},
		{levelStr: " error ", expectedLevel: polyzero.ErrorLevel},
		{levelStr: "disabled", expectedLevel: polyzero.Disabled},
		{levelStr: "unknown", expectedLevel: polyzero.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.levelStr, func(t *testing.T) {
			require.Equal(t, tt.expectedLevel, polyzero.ParseLevel(tt.levelStr))
		})
	}
}

func newTestLogger(
	t *testing.T,
	level polylog.Level,
	opts ...polylog.LoggerOption,
) (polylog.Logger, *bytes.Buffer) {
	t.Helper()

	var logOutput bytes.Buffer
	opts = append(opts,
		polyzero.WithOutput(&logOutput),
		polyzero.WithLevel(level),
	)
	return polyzero.NewLogger(opts...), &logOutput
}
