package tx

import (
	"context"
	"errors"
	"strings"
	"time"

	"cosmossdk.io/depinject"
	sdkerrors "cosmossdk.io/errors"
	cometrpctypes "github.com/cometbft/cometbft/rpc/core/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/multierr"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vulcanize/registry-client/app"
	"github.com/vulcanize/registry-client/pkg/client"
	"github.com/vulcanize/registry-client/pkg/client/keyring"
	"github.com/vulcanize/registry-client/pkg/either"
	"github.com/vulcanize/registry-client/pkg/encoding"
	"github.com/vulcanize/registry-client/pkg/polylog"
	"github.com/vulcanize/registry-client/pkg/retry"
)

const (
	// DefaultCommitTimeout is how long a broadcast transaction is polled for
	// before it is considered timed out.
	DefaultCommitTimeout = 60 * time.Second

	// DefaultCommitPollInterval is the delay between consecutive queries for a
	// broadcast transaction; roughly one block.
	DefaultCommitPollInterval = 3 * time.Second
)

var _ client.TxClient = (*txClient)(nil)

// txClient orchestrates building, signing, broadcasting, and querying of
// transactions. Every transaction pays the same fixed fee and gas limit.
// After a successful check-tx, the transaction is looked up by hash every
// commitPollInterval until it is found or commitTimeout elapses; the result
// of that lookup is used to derive the asynchronous error that's populated
// in the either.AsyncError.
type txClient struct {
	// signingKeyName is the name of the key in the keyring to use for signing
	// transactions.
	signingKeyName string
	// signingAddr is the address of the signing key referenced by signingKeyName.
	// It is hydrated from the keyring by calling Keyring#Key() with signingKeyName.
	signingAddr cosmostypes.AccAddress
	// txCtx is the transactions context which encapsulates transactions building, signing,
	// broadcasting, and querying, as well as keyring access.
	txCtx client.TxContext

	// feeAmount is the fee paid by every transaction.
	feeAmount cosmostypes.Coins
	// gasLimit is the gas limit of every transaction.
	gasLimit uint64
	// memo is attached to every transaction. It may be empty.
	memo string

	// commitTimeout bounds the time spent waiting for a transaction to be committed.
	commitTimeout time.Duration
	// commitPollInterval is the delay between tx queries while waiting.
	commitPollInterval time.Duration
}

// NewTxClient attempts to construct a new TxClient using the given dependencies
// and options.
//
// It performs the following steps:
//  1. Injects the necessary dependencies using depinject.
//  2. Applies any provided options to customize the client.
//  3. Validates and sets any missing default configurations using the
//     validateConfigAndSetDefaults method.
//
// Required dependencies:
//   - client.TxContext
//
// Available options:
//   - WithSigningKeyName
//   - WithFeeAmount
//   - WithGasLimit
//   - WithMemo
//   - WithCommitTimeout
//   - WithCommitPollInterval
func NewTxClient(
	ctx context.Context,
	deps depinject.Config,
	opts ...client.TxClientOption,
) (_ client.TxClient, err error) {
	txnClient := new(txClient)

	if err = depinject.Inject(
		deps,
		&txnClient.txCtx,
	); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(txnClient)
	}

	if err = txnClient.validateConfigAndSetDefaults(); err != nil {
		return nil, err
	}

	polylog.Ctx(ctx).Debug().
		Str("signing_address", txnClient.signingAddr.String()).
		Str("fees", txnClient.feeAmount.String()).
		Uint64("gas_limit", txnClient.gasLimit).
		Msg("tx client initialized")

	return txnClient, nil
}

// SignAndBroadcast signs a set of Cosmos SDK messages, constructs a transaction,
// and broadcasts it to the network. The function performs several steps to
// ensure the messages and the resultant transaction are valid:
//
//  1. Validates each message in the provided set.
//  2. Constructs the transaction using the Cosmos SDK's transaction builder.
//  3. Sets the fixed fee, gas limit and memo.
//  4. Signs the transaction.
//  5. Validates the constructed transaction.
//  6. Serializes and broadcasts the transaction.
//  7. Checks the broadcast response for errors.
//  8. If all the above steps are successful, the function starts waiting for
//     the transaction to be committed.
//
// If any step encounters an error, it returns an either.AsyncError populated with
// the synchronous error. If the function completes successfully, it returns an
// either.AsyncError populated with the error channel which will receive if the
// transaction fails, times out, or ctx is done before it is committed.
func (txnClient *txClient) SignAndBroadcast(
	ctx context.Context,
	msgs ...cosmostypes.Msg,
) either.AsyncError {
	logger := polylog.Ctx(ctx)
	msgType := msgTypeLabel(msgs)

	if len(msgs) == 0 {
		captureTxStatus(statusInvalid, msgType)
		return either.SyncErr(ErrInvalidMsg.Wrap("no messages to broadcast"))
	}

	var validationErrs error
	for i, msg := range msgs {
		if err := msg.ValidateBasic(); err != nil {
			validationErr := ErrInvalidMsg.Wrapf("in msg with index %d: %s", i, err)
			validationErrs = multierr.Append(validationErrs, validationErr)
		}
	}
	if validationErrs != nil {
		captureTxStatus(statusInvalid, msgType)
		return either.SyncErr(validationErrs)
	}

	// Construct the transactions using cosmos' transactions builder.
	txBuilder := txnClient.txCtx.NewTxBuilder()
	if err := txBuilder.SetMsgs(msgs...); err != nil {
		captureTxStatus(statusInvalid, msgType)
		return either.SyncErr(ErrInvalidMsg.Wrapf("%s", err))
	}

	txBuilder.SetFeeAmount(txnClient.feeAmount)
	txBuilder.SetGasLimit(txnClient.gasLimit)
	txBuilder.SetMemo(txnClient.memo)

	// sign transactions
	err := txnClient.txCtx.SignTx(
		txnClient.signingKeyName,
		txBuilder,
		false, false,
	)
	if err != nil {
		captureTxStatus(statusSignError, msgType)

		// The account number and sequence are queried while signing.
		if status.Code(err) == codes.NotFound {
			return either.SyncErr(ErrSignerAccountNotFound.Wrapf("%s: %s", txnClient.signingAddr, err))
		}
		return either.SyncErr(ErrSignTx.Wrapf("with key %q: %s", txnClient.signingKeyName, err))
	}

	// ensure transactions is valid
	// NOTE: this makes the transactions valid; i.e. it is *REQUIRED*
	if err = txBuilder.GetTx().ValidateBasic(); err != nil {
		captureTxStatus(statusInvalid, msgType)
		return either.SyncErr(err)
	}

	// serialize transactions
	txBz, err := txnClient.txCtx.EncodeTx(txBuilder)
	if err != nil {
		captureTxStatus(statusBroadcastError, msgType)
		return either.SyncErr(err)
	}

	txResponse, err := txnClient.txCtx.BroadcastTx(txBz)
	if err != nil {
		captureTxStatus(statusBroadcastError, msgType)
		return either.SyncErr(ErrBroadcastTx.Wrapf("%s", err))
	}

	if txResponse.Code != 0 {
		captureTxStatus(statusCheckTx, msgType)
		return either.SyncErr(ErrCheckTx.Wrapf(
			"code %d (codespace %q): %s",
			txResponse.Code, txResponse.Codespace, txResponse.RawLog,
		))
	}

	txHash := encoding.NormalizeTxHashHex(txResponse.TxHash)
	logger.Debug().
		Str("tx_hash", txHash).
		Str("msg_type", msgType).
		Msg("tx passed check-tx, awaiting commit")

	errCh := make(chan error, 1)
	go txnClient.goAwaitCommit(ctx, txHash, msgType, errCh)

	return either.AsyncErr(errCh)
}

// goAwaitCommit polls the node for the transaction with the given hash until
// it is found, ctx is done or the commit timeout elapses. It sends the
// resulting error, if any, on errCh and then closes it.
// It is intended to be called in a goroutine.
func (txnClient *txClient) goAwaitCommit(
	ctx context.Context,
	txHashHex string,
	msgType string,
	errCh chan<- error,
) {
	defer close(errCh)

	logger := polylog.Ctx(ctx).With("tx_hash", txHashHex)
	broadcastAt := time.Now()

	txHash, err := encoding.TxHashHexToBytes(txHashHex)
	if err != nil {
		errCh <- err
		return
	}

	// Only "not found" is worth polling through; any other query error
	// won't resolve itself before the timeout.
	queryTx := func() (*cometrpctypes.ResultTx, error) {
		txResult, queryErr := txnClient.txCtx.QueryTx(ctx, txHash, false)
		if queryErr != nil && !isTxNotFoundErr(queryErr) {
			return nil, retry.ErrNonRetryable.Wrapf("%s", queryErr)
		}
		return txResult, queryErr
	}
	txResult, queryErr := retry.Call(
		queryTx,
		retry.UntilDeadlineFn(ctx, txnClient.commitPollInterval, txnClient.commitTimeout),
	)

	switch {
	case ctx.Err() != nil:
		captureTxStatus(statusCanceled, msgType)
		errCh <- sdkerrors.Wrapf(ctx.Err(), "awaiting commit of tx with hash %s", txHashHex)
	case errors.Is(queryErr, retry.ErrNonRetryable):
		captureTxStatus(statusQueryError, msgType)
		errCh <- ErrQueryTx.Wrapf("tx with hash %s: %s", txHashHex, queryErr)
	case queryErr != nil:
		captureTxStatus(statusTimeout, msgType)
		errCh <- ErrTxTimeout.Wrapf(
			"tx with hash %s not committed after %s: %s",
			txHashHex, txnClient.commitTimeout, queryErr,
		)
	case txResult.TxResult.Code != 0:
		captureTxStatus(statusFailed, msgType)
		errCh <- ErrTxFailed.Wrapf(
			"tx with hash %s at height %d, code %d (codespace %q): %s",
			txHashHex, txResult.Height,
			txResult.TxResult.Code, txResult.TxResult.Codespace, txResult.TxResult.Log,
		)
	default:
		captureTxStatus(statusCommitted, msgType)
		captureCommitDuration(msgType, broadcastAt)
		logger.Debug().
			Int64("height", txResult.Height).
			Msg("tx committed")
	}
}

// isTxNotFoundErr reports whether err is the node's response to a query for a
// tx which is not indexed (yet), e.g. "tx (<HASH>) not found".
func isTxNotFoundErr(err error) bool {
	return strings.Contains(err.Error(), "not found")
}

// validateConfigAndSetDefaults ensures that the necessary configurations for the
// txClient are set, and populates any missing defaults.
//
//  1. It retrieves the key record from the keyring using the signing key name
//     and computes its address, assigning it to txClient#signingAddr.
//  2. It populates the fee, gas limit and commit timing with their defaults if
//     they are unset.
//
// Returns:
// - ErrEmptySigningKeyName if the signing key name is not provided.
// - ErrNoSuchSigningKey if the signing key is not found in the keyring.
// - ErrSigningKeyAddr if there's an issue retrieving the address for the signing key.
// - ErrInvalidTxConfig if the configured fee or commit timing is unusable.
// - nil if validation is successful and defaults are set appropriately.
func (txnClient *txClient) validateConfigAndSetDefaults() error {
	signingAddr, err := keyring.KeyNameToAddr(
		txnClient.signingKeyName,
		txnClient.txCtx.GetKeyring(),
	)
	if err != nil {
		return err
	}

	txnClient.signingAddr = signingAddr

	if txnClient.feeAmount == nil {
		txnClient.feeAmount = cosmostypes.NewCoins(
			cosmostypes.NewInt64Coin(app.DenomPhoton, app.DefaultFeeAmount),
		)
	}
	if err = txnClient.feeAmount.Validate(); err != nil {
		return ErrInvalidTxConfig.Wrapf("fee amount %q: %s", txnClient.feeAmount, err)
	}

	if txnClient.gasLimit == 0 {
		txnClient.gasLimit = app.DefaultGasLimit
	}

	if txnClient.commitTimeout == 0 {
		txnClient.commitTimeout = DefaultCommitTimeout
	}
	if txnClient.commitPollInterval == 0 {
		txnClient.commitPollInterval = DefaultCommitPollInterval
	}
	if txnClient.commitTimeout < 0 || txnClient.commitPollInterval < 0 {
		return ErrInvalidTxConfig.Wrapf(
			"commit timeout %s and poll interval %s must not be negative",
			txnClient.commitTimeout, txnClient.commitPollInterval,
		)
	}

	return nil
}

// msgTypeLabel returns the type URL of the first message, for use as a metric label.
func msgTypeLabel(msgs []cosmostypes.Msg) string {
	if len(msgs) == 0 {
		return "none"
	}
	return cosmostypes.MsgTypeURL(msgs[0])
}
