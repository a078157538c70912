package testpolylog

import (
	"bytes"
	"context"

	"github.com/vulcanize/registry-client/pkg/polylog"
	"github.com/vulcanize/registry-client/pkg/polylog/polyzero"
)

// NewLoggerWithCtx returns a logger at the given level and a copy of ctx which
// carries it.
func NewLoggerWithCtx(
	ctx context.Context,
	level polylog.Level,
) (polylog.Logger, context.Context) {
	levelOpt := polyzero.WithLevel(level)
	logger := polyzero.NewLogger(levelOpt)
	ctx = logger.WithContext(ctx)

	return logger, ctx
}

// NewBufferedLoggerWithCtx is like NewLoggerWithCtx but the logger writes its
// JSON lines to the returned buffer so that tests can assert on them.
func NewBufferedLoggerWithCtx(
	ctx context.Context,
	level polylog.Level,
) (polylog.Logger, context.Context, *bytes.Buffer) {
	logOutput := new(bytes.Buffer)
	logger := polyzero.NewLogger(
		polyzero.WithLevel(level),
		polyzero.WithOutput(logOutput),
	)
	ctx = logger.WithContext(ctx)

	return logger, ctx, logOutput
}
