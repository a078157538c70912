package polylog_test

import (
	"context"
	"os"

	"github.com/vulcanize/registry-client/pkg/polylog"
	"github.com/vulcanize/registry-client/pkg/polylog/polyzero"
)

func ExampleCtx() {
	// Construct a logger which writes info and above to stdout (for the
	// purposes of this testable example) and label it.
	logger := polyzero.NewLogger(
		polyzero.WithLevel(polyzero.InfoLevel),
		polyzero.WithOutput(os.Stdout),
	).With("component", "registry_client")

	// Associate the logger with a context; this context is typically passed
	// down to the code which performs the work being logged.
	ctx := logger.WithContext(context.Background())

	// Elsewhere, retrieve the logger from the context and log.
	polylog.Ctx(ctx).Info().
		Str("bond_id", "bond1").
		Msg("bond cancellation request sent successfully")
	polylog.Ctx(ctx).Debug().Msg("filtered out by the info level")

	// Output:
	// {"level":"info","component":"registry_client","bond_id":"bond1","message":"bond cancellation request sent successfully"}
}
