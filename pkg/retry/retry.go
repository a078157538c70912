package retry

import (
	"context"
	"errors"
	"time"

	"github.com/vulcanize/registry-client/pkg/polylog"
)

// RetryStrategyFunc receives the zero-based count of failed attempts so far
// and returns whether the work function should be called again. It may block
// to delay the next attempt.
type RetryStrategyFunc func(int) bool

// Call executes a function repeatedly until it succeeds, returns an error
// wrapping ErrNonRetryable, or the retry strategy indicates that no more
// retries should be attempted.
//
// Returns the result from the work function and any error that occurred if
// retries are exhausted.
func Call[T any](
	work func() (T, error),
	retryStrategy RetryStrategyFunc,
) (T, error) {
	for retryCount := 0; ; retryCount++ {
		result, err := work()
		if err == nil {
			return result, nil
		}
		if errors.Is(err, ErrNonRetryable) {
			return result, err
		}
		if !retryStrategy(retryCount) {
			return result, err
		}
	}
}

// UntilDeadlineFn creates a retry strategy which waits pollInterval between
// attempts and stops retrying once ctx is done or timeout has elapsed since
// the strategy was created, whichever comes first.
func UntilDeadlineFn(
	ctx context.Context,
	pollInterval time.Duration,
	timeout time.Duration,
) RetryStrategyFunc {
	logger := polylog.Ctx(ctx)
	deadline := time.Now().Add(timeout)

	return func(retryCount int) bool {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}

		delay := min(pollInterval, remaining)
		logger.Debug().
			Int("retry_count", retryCount).
			Dur("delay", delay).
			Msg("retrying")

		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
			return time.Now().Before(deadline)
		}
	}
}
