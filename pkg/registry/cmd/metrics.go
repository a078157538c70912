package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vulcanize/registry-client/pkg/polylog"
)

// serveMetrics exposes the default prometheus registry, which the tx client
// reports to, at addr until ctx is done.
func serveMetrics(ctx context.Context, addr string) error {
	logger := polylog.Ctx(ctx)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error().Err(err).Msg("failed to listen on address for metrics")
		return err
	}

	server := &http.Server{Handler: promhttp.Handler()}

	// If no error, start the server in a new goroutine
	go func() {
		logger.Info().Str("endpoint", ln.Addr().String()).Msg("serving metrics")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()

	return nil
}
