package testtx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cosmossdk.io/depinject"
	abci "github.com/cometbft/cometbft/abci/types"
	cometbytes "github.com/cometbft/cometbft/libs/bytes"
	cometrpctypes "github.com/cometbft/cometbft/rpc/core/types"
	comettypes "github.com/cometbft/cometbft/types"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmoskeyring "github.com/cosmos/cosmos-sdk/crypto/keyring"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vulcanize/registry-client/pkg/client"
	"github.com/vulcanize/registry-client/pkg/client/tx"
	txtypes "github.com/vulcanize/registry-client/pkg/client/tx/types"
	"github.com/vulcanize/registry-client/testutil/mockclient"
	"github.com/vulcanize/registry-client/testutil/testclient"
)

// ErrTxNotFound mimics the error returned by the node when queried for a tx
// which has not been committed (yet).
var ErrTxNotFound = errors.New("tx not found")

// NewOneTimeCommittedTxContext creates a mock transaction context primed to
// respond with a single successful broadcast, followed by a successful
// query for the committed transaction after notFoundCount "not found" responses.
func NewOneTimeCommittedTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	signingKeyName string,
	notFoundCount int,
	expectedTx *cometbytes.HexBytes,
) *mockclient.MockTxContext {
	t.Helper()

	txCtxMock := NewOneTimeTxTxContext(t, keyring, signingKeyName, expectedTx)

	queryCount := 0
	txCtxMock.EXPECT().QueryTx(
		gomock.Any(),
		gomock.AssignableToTypeOf([]byte{}),
		gomock.Eq(false),
	).DoAndReturn(
		func(
			_ context.Context,
			txHash []byte,
			_ bool,
		) (*cometrpctypes.ResultTx, error) {
			queryCount++
			if queryCount <= notFoundCount {
				return nil, ErrTxNotFound
			}
			return &cometrpctypes.ResultTx{
				Hash:     txHash,
				Height:   2,
				TxResult: abci.ResponseDeliverTx{Code: 0},
				Tx:       expectedTx.Bytes(),
			}, nil
		},
	).Times(notFoundCount + 1)

	return txCtxMock
}

// NewOneTimeErrTxFailedTxContext creates a mock transaction context designed to
// simulate a transaction which passes check-tx but fails when delivered.
// expectedErrMsg is populated with the same error message which is presented in
// the result from the QueryTx method so that it can be asserted against.
func NewOneTimeErrTxFailedTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	signingKeyName string,
	expectedErrMsg *string,
) *mockclient.MockTxContext {
	t.Helper()

	signerAddr := keyNameToAddr(t, keyring, signingKeyName)
	*expectedErrMsg = fmt.Sprintf(
		"bond not found for owner %s: invalid request",
		signerAddr.String(),
	)

	var expectedTx cometbytes.HexBytes
	txCtxMock := NewOneTimeTxTxContext(t, keyring, signingKeyName, &expectedTx)

	txCtxMock.EXPECT().QueryTx(
		gomock.Any(),
		gomock.AssignableToTypeOf([]byte{}),
		gomock.Eq(false),
	).DoAndReturn(
		func(
			_ context.Context,
			txHash []byte,
			_ bool,
		) (*cometrpctypes.ResultTx, error) {
			return &cometrpctypes.ResultTx{
				Hash:   txHash,
				Height: 2,
				TxResult: abci.ResponseDeliverTx{
					Code:      18,
					Log:       *expectedErrMsg,
					Codespace: "test_codespace",
				},
				Tx: expectedTx.Bytes(),
			}, nil
		},
	).Times(1)

	return txCtxMock
}

// NewOneTimeErrTxTimeoutTxContext creates a mock transaction context designed to
// simulate a transaction which is broadcast successfully but never committed;
// every query for it responds with ErrTxNotFound.
func NewOneTimeErrTxTimeoutTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	signingKeyName string,
) *mockclient.MockTxContext {
	t.Helper()

	var expectedTx cometbytes.HexBytes
	txCtxMock := NewOneTimeTxTxContext(t, keyring, signingKeyName, &expectedTx)

	txCtxMock.EXPECT().QueryTx(
		gomock.Any(),
		gomock.AssignableToTypeOf([]byte{}),
		gomock.Eq(false),
	).Return(nil, ErrTxNotFound).MinTimes(1)

	return txCtxMock
}

// NewOneTimeErrQueryTxContext creates a mock transaction context which
// broadcasts successfully and then fails the first query for the transaction
// with queryErr.
func NewOneTimeErrQueryTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	signingKeyName string,
	queryErr error,
) *mockclient.MockTxContext {
	t.Helper()

	var expectedTx cometbytes.HexBytes
	txCtxMock := NewOneTimeTxTxContext(t, keyring, signingKeyName, &expectedTx)

	txCtxMock.EXPECT().QueryTx(
		gomock.Any(),
		gomock.AssignableToTypeOf([]byte{}),
		gomock.Eq(false),
	).Return(nil, queryErr).Times(1)

	return txCtxMock
}

// NewOneTimeErrBroadcastTxContext creates a mock transaction context which
// signs and encodes the transaction but fails to broadcast it with
// broadcastErr, as when the node is unreachable.
func NewOneTimeErrBroadcastTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	signingKeyName string,
	broadcastErr error,
) *mockclient.MockTxContext {
	t.Helper()

	var expectedTx cometbytes.HexBytes
	txCtxMock := NewBaseTxContext(t, signingKeyName, keyring, &expectedTx)
	txCtxMock.EXPECT().BroadcastTx(gomock.Any()).
		Return(nil, broadcastErr).
		Times(1)

	return txCtxMock
}

// NewOneTimeErrEncodeTxContext creates a mock transaction context which signs
// the transaction but fails to encode it with encodeErr. Nothing is broadcast.
func NewOneTimeErrEncodeTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	signingKeyName string,
	encodeErr error,
) *mockclient.MockTxContext {
	t.Helper()

	txCtxMock, txCtx := NewAnyTimesTxTxContext(t, keyring)
	txCtxMock.EXPECT().NewTxBuilder().
		DoAndReturn(txCtx.NewTxBuilder).
		AnyTimes()
	txCtxMock.EXPECT().SignTx(
		gomock.Eq(signingKeyName),
		gomock.AssignableToTypeOf(txCtx.NewTxBuilder()),
		gomock.Eq(false), gomock.Eq(false),
	).DoAndReturn(txCtx.SignTx).AnyTimes()
	txCtxMock.EXPECT().EncodeTx(gomock.Any()).
		Return(nil, encodeErr).
		Times(1)

	return txCtxMock
}

// NewOneTimeErrCheckTxTxContext creates a mock transaction context to simulate
// a specific error scenario during the ABCI check-tx phase (i.e., during initial
// validation before the transaction is included in the block).
// expectedErrMsg is populated with the same error message which is presented in
// the broadcast response so that it can be asserted against.
func NewOneTimeErrCheckTxTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	signingKeyName string,
	expectedErrMsg *string,
) *mockclient.MockTxContext {
	t.Helper()

	signerAddr := keyNameToAddr(t, keyring, signingKeyName)
	*expectedErrMsg = fmt.Sprintf(
		"fee payer address: %s does not exist: unknown address",
		signerAddr.String(),
	)

	var expectedTx cometbytes.HexBytes
	txCtxMock := NewBaseTxContext(
		t, signingKeyName,
		keyring,
		&expectedTx,
	)

	// intercept #BroadcastTx() call to mock response and prevent actual broadcast
	txCtxMock.EXPECT().BroadcastTx(gomock.Any()).
		DoAndReturn(
			func(txBytes []byte) (*cosmostypes.TxResponse, error) {
				var expectedTxHash cometbytes.HexBytes = comettypes.Tx(txBytes).Hash()
				return &cosmostypes.TxResponse{
					TxHash:    expectedTxHash.String(),
					RawLog:    *expectedErrMsg,
					Code:      9,
					Codespace: "test_codespace",
				}, nil
			},
		).Times(1)

	return txCtxMock
}

// NewOneTimeTxTxContext creates a mock transaction context primed to respond with
// a single successful broadcast response.
func NewOneTimeTxTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	signingKeyName string,
	expectedTx *cometbytes.HexBytes,
) *mockclient.MockTxContext {
	t.Helper()

	txCtxMock := NewBaseTxContext(
		t, signingKeyName,
		keyring,
		expectedTx,
	)

	// intercept #BroadcastTx() call to mock response and prevent actual broadcast
	txCtxMock.EXPECT().BroadcastTx(gomock.Any()).
		DoAndReturn(
			func(txBytes []byte) (*cosmostypes.TxResponse, error) {
				var expectedTxHash cometbytes.HexBytes = comettypes.Tx(txBytes).Hash()
				return &cosmostypes.TxResponse{
					TxHash: expectedTxHash.String(),
				}, nil
			},
		).Times(1)

	return txCtxMock
}

// NewBaseTxContext creates a mock transaction context that's configured to expect
// calls to NewTxBuilder, SignTx, and EncodeTx methods, any number of times.
// EncodeTx is used to intercept the encoded transaction bytes and store them in
// the expectedTx output parameter. Each of these methods proxies to the corresponding
// method on a real transaction context.
func NewBaseTxContext(
	t *testing.T,
	signingKeyName string,
	keyring cosmoskeyring.Keyring,
	expectedTx *cometbytes.HexBytes,
) *mockclient.MockTxContext {
	t.Helper()

	txCtxMock, txCtx := NewAnyTimesTxTxContext(t, keyring)
	txCtxMock.EXPECT().NewTxBuilder().
		DoAndReturn(txCtx.NewTxBuilder).
		AnyTimes()
	txCtxMock.EXPECT().SignTx(
		gomock.Eq(signingKeyName),
		gomock.AssignableToTypeOf(txCtx.NewTxBuilder()),
		gomock.Eq(false), gomock.Eq(false),
	).DoAndReturn(txCtx.SignTx).AnyTimes()
	txCtxMock.EXPECT().EncodeTx(gomock.Any()).
		DoAndReturn(
			func(txBuilder cosmosclient.TxBuilder) (_ []byte, err error) {
				// intercept cosmosTxContext#EncodeTx to get the encoded tx cometbytes
				*expectedTx, err = txCtx.EncodeTx(txBuilder)
				require.NoError(t, err)
				return expectedTx.Bytes(), nil
			},
		).AnyTimes()

	return txCtxMock
}

// NewAnyTimesTxTxContext initializes a mock transaction context that's configured to allow
// arbitrary calls to certain predefined interactions, primarily concerning the retrieval
// of account numbers and sequences. It also returns a real transaction context,
// backed by the same keyring, to which the mock's expectations may proxy.
func NewAnyTimesTxTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
) (*mockclient.MockTxContext, client.TxContext) {
	t.Helper()

	ctrl := gomock.NewController(t)

	// intercept #GetAccountNumberSequence() call to mock response and prevent actual query
	accountRetrieverMock := mockclient.NewMockAccountRetriever(ctrl)
	accountRetrieverMock.EXPECT().GetAccountNumberSequence(gomock.Any(), gomock.Any()).
		Return(uint64(1), uint64(1), nil).
		AnyTimes()

	clientCtx := testclient.NewLocalnetClientCtx(t).
		WithKeyring(keyring).
		WithAccountRetriever(accountRetrieverMock)

	txFactory := tx.NewTxFactory(clientCtx)
	require.NotEmpty(t, txFactory)

	txCtxDeps := depinject.Supply(txFactory, txtypes.Context(clientCtx))
	txCtx, err := tx.NewTxContext(txCtxDeps)
	require.NoError(t, err)
	txCtxMock := mockclient.NewMockTxContext(ctrl)
	txCtxMock.EXPECT().GetKeyring().Return(keyring).AnyTimes()

	return txCtxMock, txCtx
}

func keyNameToAddr(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	keyName string,
) cosmostypes.AccAddress {
	t.Helper()

	signerKey, err := keyring.Key(keyName)
	require.NoError(t, err)

	signerAddr, err := signerKey.GetAddress()
	require.NoError(t, err)

	return signerAddr
}
