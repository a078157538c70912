package signals

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vulcanize/registry-client/pkg/polylog"
)

const shutDownTimeout = 30 * time.Second

// GoOnExitSignal calls the given callback when the process receives an interrupt or terminate signal.
// It sets up a goroutine that listens for OS signals and invokes the callback
func GoOnExitSignal(logger polylog.Logger, onInterrupt func()) {
	go func() {
		// Set up sigCh to receive when this process receives an interrupt or
		// terminate signal.
		sigCh := make(chan os.Signal, 1)

		// DEV_NOTE: SIGKILL cannot be trapped, so we don't listen for it.
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		sig := <-sigCh
		logger.Info().Msgf("Received signal %s, cancelling pending txs...", sig)

		done := make(chan struct{})
		go func() {
			defer close(done)
			onInterrupt()
		}()

		timer := time.NewTimer(shutDownTimeout)
		defer timer.Stop()

		// Wait for either completion or another signal or timeout
		select {
		case <-done:
			return
		case sig := <-sigCh:
			logger.Warn().Msgf("Received another signal %s during shutdown, exiting immediately.", sig)
			// UNIX convention: 128 + SIGINT.
			os.Exit(130)
		case <-timer.C:
			logger.Warn().Msgf("Graceful shutdown timed out after %s, exiting immediately.", shutDownTimeout)
			os.Exit(1)
		}
	}()
}
