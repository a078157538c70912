package tx

import (
	"time"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/vulcanize/registry-client/pkg/client"
)

// WithSigningKeyName sets the name of the key which should be retrieved from the
// keyring and used for signing transactions.
func WithSigningKeyName(keyName string) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).signingKeyName = keyName
	}
}

// WithFeeAmount sets the fixed fee which is paid for every transaction.
func WithFeeAmount(feeAmount cosmostypes.Coins) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).feeAmount = feeAmount
	}
}

// WithGasLimit sets the fixed gas limit of every transaction.
func WithGasLimit(gasLimit uint64) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).gasLimit = gasLimit
	}
}

// WithMemo sets the memo which is attached to every transaction.
func WithMemo(memo string) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).memo = memo
	}
}

// WithCommitTimeout sets how long after broadcasting a transaction is polled
// for before it is considered timed out.
func WithCommitTimeout(timeout time.Duration) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).commitTimeout = timeout
	}
}

// WithCommitPollInterval sets the delay between consecutive queries for a
// broadcast transaction.
func WithCommitPollInterval(interval time.Duration) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).commitPollInterval = interval
	}
}
