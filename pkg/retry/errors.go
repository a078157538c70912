package retry

import (
	sdkerrors "cosmossdk.io/errors"
)

var (
	codespace = "retry"
	// ErrNonRetryable allows a work function to stop the retry loop early.
	ErrNonRetryable = sdkerrors.Register(codespace, 1, "non-retryable error")
)
