package tx

import (
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	txClientSubsystem = "tx_client"

	broadcastsTotal      = "broadcasts_total"
	commitDurationSecond = "commit_duration_seconds"

	statusInvalid        = "invalid"
	statusSignError      = "sign_error"
	statusBroadcastError = "broadcast_error"
	statusCheckTx        = "check_tx_error"
	statusCommitted      = "committed"
	statusFailed         = "failed"
	statusTimeout        = "timeout"
	statusQueryError     = "query_error"
	statusCanceled       = "canceled"
)

var (
	// txBroadcastsTotal is a Counter metric for the transactions handled by the
	// tx client, labeled by their final 'status' and the 'msg_type' of their
	// first message.
	//
	// Usage:
	// - Monitor the rate of failed or timed out registry operations.
	// - Compare volumes across message types.
	txBroadcastsTotal metrics.Counter = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Subsystem: txClientSubsystem,
		Name:      broadcastsTotal,
		Help:      "Total number of transactions handled, labeled by final status and message type.",
	}, []string{"status", "msg_type"})

	// txCommitDurationSeconds observes the time between broadcasting a
	// transaction and observing it committed.
	//
	// Buckets:
	// - 1s to 60s, i.e. roughly one block up to the default commit timeout.
	txCommitDurationSeconds metrics.Histogram = prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Subsystem: txClientSubsystem,
		Name:      commitDurationSecond,
		Help:      "Histogram of durations between broadcast and commit.",
		Buckets:   []float64{1, 2, 5, 10, 20, 30, 60},
	}, []string{"msg_type"})
)

func captureTxStatus(status, msgType string) {
	txBroadcastsTotal.
		With("status", status).
		With("msg_type", msgType).
		Add(1)
}

func captureCommitDuration(msgType string, broadcastAt time.Time) {
	txCommitDurationSeconds.
		With("msg_type", msgType).
		Observe(time.Since(broadcastAt).Seconds())
}
