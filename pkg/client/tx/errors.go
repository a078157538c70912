package tx

import (
	sdkerrors "cosmossdk.io/errors"
)

var (
	codespace = "tx"

	// ErrInvalidMsg signifies that there was an issue in validating the
	// transaction message. This could be due to format, syntax, or content
	// inconsistencies in the message.
	ErrInvalidMsg = sdkerrors.Register(codespace, 1, "invalid message")

	// ErrCheckTx indicates an error occurred during the ABCI check transaction
	// process, which verifies the transaction's integrity before it is added
	// to the mempool.
	ErrCheckTx = sdkerrors.Register(codespace, 2, "error during ABCI check tx")

	// ErrTxTimeout is raised when a transaction has taken too long to be
	// committed, i.e. it was not found on chain within the commit timeout.
	ErrTxTimeout = sdkerrors.Register(codespace, 3, "tx timed out")

	// ErrTxFailed is raised when a transaction was committed but its
	// deliver-tx execution failed.
	ErrTxFailed = sdkerrors.Register(codespace, 4, "tx failed")

	// ErrSignTx is raised when the transaction could not be signed with the
	// configured signing key.
	ErrSignTx = sdkerrors.Register(codespace, 5, "failed to sign tx")

	// ErrBroadcastTx is raised when the node could not be reached or rejected
	// the broadcast request itself.
	ErrBroadcastTx = sdkerrors.Register(codespace, 6, "failed to broadcast tx")

	// ErrInvalidTxConfig is raised when the tx client is configured with an
	// unusable fee, gas limit or commit timing.
	ErrInvalidTxConfig = sdkerrors.Register(codespace, 7, "invalid tx client config")

	// ErrSignerAccountNotFound is raised when the signing address has no
	// account on chain, i.e. it has never been funded.
	ErrSignerAccountNotFound = sdkerrors.Register(codespace, 8, "signer account not found on chain")

	// ErrQueryTx is raised when querying for a broadcast transaction fails
	// for any reason other than the transaction not being found (yet).
	ErrQueryTx = sdkerrors.Register(codespace, 9, "failed to query tx")
)
