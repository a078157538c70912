package testtx

import (
	"context"
	"testing"
	"time"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/mock/gomock"

	"github.com/vulcanize/registry-client/pkg/either"
	"github.com/vulcanize/registry-client/testutil/mockclient"
)

// SignAndBroadcastFn matches the signature of TxClient#SignAndBroadcast.
type SignAndBroadcastFn func(context.Context, ...cosmostypes.Msg) either.AsyncError

// NewOneTimeDelayedSignAndBroadcastTxClient constructs a mock TxClient with the
// expectation to perform a SignAndBroadcast operation with a specified delay.
func NewOneTimeDelayedSignAndBroadcastTxClient(
	t *testing.T,
	ctx context.Context,
	delay time.Duration,
) *mockclient.MockTxClient {
	t.Helper()

	signAndBroadcast := NewSignAndBroadcastSucceedsDelayed(delay)
	return NewOneTimeSignAndBroadcastTxClient(t, ctx, signAndBroadcast)
}

// NewOneTimeSignAndBroadcastTxClient constructs a mock TxClient with the
// expectation to perform a SignAndBroadcast operation with a single message,
// which will call and receive the return from the given signAndBroadcast function.
func NewOneTimeSignAndBroadcastTxClient(
	t *testing.T,
	ctx context.Context,
	signAndBroadcast SignAndBroadcastFn,
) *mockclient.MockTxClient {
	t.Helper()

	ctrl := gomock.NewController(t)

	txClient := mockclient.NewMockTxClient(ctrl)
	txClient.EXPECT().SignAndBroadcast(
		gomock.Eq(ctx),
		gomock.Any(),
	).DoAndReturn(signAndBroadcast).Times(1)

	return txClient
}

// NewSignAndBroadcastSucceedsDelayed returns a SignAndBroadcastFn that succeeds
// after the given delay.
func NewSignAndBroadcastSucceedsDelayed(delay time.Duration) SignAndBroadcastFn {
	return func(context.Context, ...cosmostypes.Msg) either.AsyncError {
		errCh := make(chan error)

		go func() {
			time.Sleep(delay)
			close(errCh)
		}()

		return either.AsyncErr(errCh)
	}
}

// NewSignAndBroadcastSyncErr returns a SignAndBroadcastFn that fails before
// broadcasting with the given error.
func NewSignAndBroadcastSyncErr(err error) SignAndBroadcastFn {
	return func(context.Context, ...cosmostypes.Msg) either.AsyncError {
		return either.SyncErr(err)
	}
}

// NewSignAndBroadcastAsyncErr returns a SignAndBroadcastFn which broadcasts
// successfully and whose commit fails with the given error after delay.
func NewSignAndBroadcastAsyncErr(delay time.Duration, err error) SignAndBroadcastFn {
	return func(context.Context, ...cosmostypes.Msg) either.AsyncError {
		errCh := make(chan error, 1)

		go func() {
			time.Sleep(delay)
			errCh <- err
			close(errCh)
		}()

		return either.AsyncErr(errCh)
	}
}
