package registry_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"cosmossdk.io/depinject"
	cometbytes "github.com/cometbft/cometbft/libs/bytes"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vulcanize/registry-client/app"
	"github.com/vulcanize/registry-client/pkg/client"
	"github.com/vulcanize/registry-client/pkg/client/keyring"
	"github.com/vulcanize/registry-client/pkg/client/registry"
	"github.com/vulcanize/registry-client/pkg/client/tx"
	"github.com/vulcanize/registry-client/pkg/either"
	"github.com/vulcanize/registry-client/pkg/polylog"
	"github.com/vulcanize/registry-client/pkg/polylog/polyzero"
	"github.com/vulcanize/registry-client/testutil/mockclient"
	"github.com/vulcanize/registry-client/testutil/sample"
	"github.com/vulcanize/registry-client/testutil/testclient"
	"github.com/vulcanize/registry-client/testutil/testclient/testtx"
	"github.com/vulcanize/registry-client/testutil/testkeyring"
	auctiontypes "github.com/vulcanize/registry-client/x/auction/types"
	bondtypes "github.com/vulcanize/registry-client/x/bond/types"
	nameservicetypes "github.com/vulcanize/registry-client/x/nameservice/types"
)

const testSigningKeyName = "test_signer"

// registryOpTest describes one RegistryClient operation: how to call it and
// which message it must hand to the tx client.
type registryOpTest struct {
	name          string
	successLogMsg string
	errorLogMsg   string
	call          func(ctx context.Context, rClient client.RegistryClient) error
	expectedMsg   cosmostypes.Msg
}

func TestNewRegistryClient(t *testing.T) {
	ctrl := gomock.NewController(t)

	memKeyring, _ := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	txCtxMock, _ := testtx.NewAnyTimesTxTxContext(t, memKeyring)
	txClientMock := mockclient.NewMockTxClient(ctrl)

	deps := depinject.Supply(
		polyzero.NewLogger(),
		txCtxMock,
		txClientMock,
	)

	tests := []struct {
		name           string
		signingKeyName string
		expectedErr    error
	}{
		{
			name:           "valid signing key name",
			signingKeyName: testSigningKeyName,
			expectedErr:    nil,
		},
		{
			name:           "empty signing key name",
			signingKeyName: "",
			expectedErr:    keyring.ErrEmptySigningKeyName,
		},
		{
			name:           "no such signing key name",
			signingKeyName: "nonexistent",
			expectedErr:    keyring.ErrNoSuchSigningKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signingKeyOpt := registry.WithSigningKeyName(tt.signingKeyName)

			registryClient, err := registry.NewRegistryClient(deps, signingKeyOpt)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				require.Nil(t, registryClient)
			} else {
				require.NoError(t, err)
				require.NotNil(t, registryClient)
			}
		})
	}
}

func TestNewRegistryClient_MissingDependency(t *testing.T) {
	memKeyring, _ := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	txCtxMock, _ := testtx.NewAnyTimesTxTxContext(t, memKeyring)

	// No TxClient is supplied.
	deps := depinject.Supply(polyzero.NewLogger(), txCtxMock)

	registryClient, err := registry.NewRegistryClient(
		deps, registry.WithSigningKeyName(testSigningKeyName),
	)
	require.Error(t, err)
	require.Nil(t, registryClient)
}

func TestRegistryClient_SigningAddress(t *testing.T) {
	memKeyring, signingKey := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	expectedAddr, err := signingKey.GetAddress()
	require.NoError(t, err)

	txCtxMock, _ := testtx.NewAnyTimesTxTxContext(t, memKeyring)
	txClientMock := mockclient.NewMockTxClient(gomock.NewController(t))

	registryClient, err := registry.NewRegistryClient(
		depinject.Supply(polyzero.NewLogger(), txCtxMock, txClientMock),
		registry.WithSigningKeyName(testSigningKeyName),
	)
	require.NoError(t, err)
	require.Equal(t, expectedAddr, registryClient.SigningAddress())
}

func TestRegistryClient_Operations_Succeed(t *testing.T) {
	signer := sample.AccAddress()

	for _, tt := range newRegistryOpTests(signer) {
		t.Run(tt.name, func(t *testing.T) {
			var (
				ctx        = context.Background()
				ctrl       = gomock.NewController(t)
				actualMsgs []cosmostypes.Msg
			)

			txClientMock := mockclient.NewMockTxClient(ctrl)
			txClientMock.EXPECT().SignAndBroadcast(gomock.Eq(ctx), gomock.Any()).
				DoAndReturn(func(_ context.Context, msgs ...cosmostypes.Msg) either.AsyncError {
					actualMsgs = msgs
					return newCommittedAsyncErr()
				}).
				Times(1)

			registryClient, logOutput := newTestRegistryClient(t, txClientMock)

			err := tt.call(ctx, registryClient)
			require.NoError(t, err)

			// Exactly the given fields, nothing added or coerced.
			require.Len(t, actualMsgs, 1)
			require.Equal(t, tt.expectedMsg, actualMsgs[0])

			require.Contains(t, logOutput.String(), `"level":"info"`)
			require.Contains(t, logOutput.String(), `"message":"`+tt.successLogMsg+`"`)
			require.Contains(t, logOutput.String(), cosmostypes.MsgTypeURL(tt.expectedMsg))
		})
	}
}

func TestRegistryClient_Operations_SyncError(t *testing.T) {
	signer := sample.AccAddress()
	expectedErr := tx.ErrCheckTx.Wrap("insufficient fees")

	for _, tt := range newRegistryOpTests(signer) {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			txClientMock := testtx.NewOneTimeSignAndBroadcastTxClient(
				t, ctx, testtx.NewSignAndBroadcastSyncErr(expectedErr),
			)
			registryClient, logOutput := newTestRegistryClient(t, txClientMock)

			err := tt.call(ctx, registryClient)
			require.ErrorIs(t, err, tx.ErrCheckTx)

			require.Contains(t, logOutput.String(), `"level":"error"`)
			require.Contains(t, logOutput.String(), `"stage":"broadcast"`)
			require.Contains(t, logOutput.String(), `"message":"`+tt.errorLogMsg+`"`)
			require.Contains(t, logOutput.String(), "insufficient fees")
			require.NotContains(t, logOutput.String(), "request sent successfully")
		})
	}
}

func TestRegistryClient_CommitError(t *testing.T) {
	tests := []struct {
		name        string
		asyncErr    error
		expectedErr error
	}{
		{
			name:        "tx failed",
			asyncErr:    tx.ErrTxFailed.Wrap("bond not found"),
			expectedErr: tx.ErrTxFailed,
		},
		{
			name:        "tx timed out",
			asyncErr:    tx.ErrTxTimeout.Wrap("tx not found"),
			expectedErr: tx.ErrTxTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			txClientMock := testtx.NewOneTimeSignAndBroadcastTxClient(
				t, ctx, testtx.NewSignAndBroadcastAsyncErr(time.Millisecond, tt.asyncErr),
			)
			registryClient, logOutput := newTestRegistryClient(t, txClientMock)

			err := registryClient.CancelBond(ctx, "bond1", sample.AccAddress())
			require.ErrorIs(t, err, tt.expectedErr)

			require.Contains(t, logOutput.String(), `"stage":"commit"`)
			require.Contains(t, logOutput.String(), `"message":"error in cancelling bond"`)
		})
	}
}

func TestRegistryClient_BlocksUntilCommitted(t *testing.T) {
	var (
		signAndBroadcastDelay = 50 * time.Millisecond
		doneCh                = make(chan struct{}, 1)
		ctx                   = context.Background()
	)

	txClientMock := testtx.NewOneTimeDelayedSignAndBroadcastTxClient(t, ctx, signAndBroadcastDelay)
	registryClient, _ := newTestRegistryClient(t, txClientMock)

	var err error
	go func() {
		err = registryClient.RenewRecord(ctx, "record1", sample.AccAddress())
		close(doneCh)
	}()

	select {
	case <-doneCh:
		t.Fatal("expected RenewRecord to block for signAndBroadcastDelay")
	case <-time.After(signAndBroadcastDelay * 95 / 100):
		t.Log("OK: RenewRecord blocked for at least 95% of signAndBroadcastDelay")
	}

	select {
	case <-time.After(signAndBroadcastDelay):
		t.Fatal("expected RenewRecord to unblock after signAndBroadcastDelay")
	case <-doneCh:
		t.Log("OK: RenewRecord unblocked after signAndBroadcastDelay")
	}
	require.NoError(t, err)
}

func TestRegistryClient_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	// The commit never completes; only cancellation ends the wait.
	txClientMock := testtx.NewOneTimeSignAndBroadcastTxClient(
		t, ctx,
		func(context.Context, ...cosmostypes.Msg) either.AsyncError {
			return either.AsyncErr(make(chan error))
		},
	)
	registryClient, logOutput := newTestRegistryClient(t, txClientMock)

	time.AfterFunc(10*time.Millisecond, cancel)

	err := registryClient.SetName(ctx, "crn://example/app", "cid1", sample.AccAddress())
	require.ErrorIs(t, err, context.Canceled)
	require.Contains(t, logOutput.String(), `"message":"error in setting name"`)
}

// TestRegistryClient_SignedTxs drives every operation through a real tx client
// and asserts on the signed tx bytes which would have been broadcast.
func TestRegistryClient_SignedTxs(t *testing.T) {
	memKeyring, signingKey := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	signingAddr, err := signingKey.GetAddress()
	require.NoError(t, err)

	for _, tt := range newRegistryOpTests(signingAddr.String()) {
		t.Run(tt.name, func(t *testing.T) {
			var (
				expectedTx cometbytes.HexBytes
				ctx        = context.Background()
			)

			txCtxMock := testtx.NewOneTimeCommittedTxContext(
				t, memKeyring, testSigningKeyName, 0, &expectedTx,
			)
			txClient, err := tx.NewTxClient(
				ctx, depinject.Supply(txCtxMock),
				tx.WithSigningKeyName(testSigningKeyName),
				tx.WithCommitPollInterval(time.Millisecond),
			)
			require.NoError(t, err)

			registryClient, err := registry.NewRegistryClient(
				depinject.Supply(polyzero.NewLogger(), txCtxMock, txClient),
				registry.WithSigningKeyName(testSigningKeyName),
			)
			require.NoError(t, err)

			require.NoError(t, tt.call(ctx, registryClient))

			var txRaw txtypes.TxRaw
			require.NoError(t, testclient.EncodingConfig.Marshaler.Unmarshal(expectedTx, &txRaw))

			var txBody txtypes.TxBody
			require.NoError(t, testclient.EncodingConfig.Marshaler.Unmarshal(txRaw.BodyBytes, &txBody))
			require.Len(t, txBody.Messages, 1)
			require.Equal(t, cosmostypes.MsgTypeURL(tt.expectedMsg), txBody.Messages[0].TypeUrl)
			require.Equal(t, tt.expectedMsg, txBody.Messages[0].GetCachedValue())

			var authInfo txtypes.AuthInfo
			require.NoError(t, testclient.EncodingConfig.Marshaler.Unmarshal(txRaw.AuthInfoBytes, &authInfo))
			require.Equal(t, uint64(app.DefaultGasLimit), authInfo.Fee.GasLimit)
			require.Equal(t,
				cosmostypes.NewCoins(cosmostypes.NewInt64Coin(app.DenomPhoton, app.DefaultFeeAmount)),
				authInfo.Fee.Amount,
			)
		})
	}
}

// newTestRegistryClient constructs a registry client around txClient whose
// logs are written to the returned buffer.
func newTestRegistryClient(
	t *testing.T,
	txClient client.TxClient,
) (client.RegistryClient, *bytes.Buffer) {
	t.Helper()

	memKeyring, _ := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	txCtxMock, _ := testtx.NewAnyTimesTxTxContext(t, memKeyring)

	logOutput := new(bytes.Buffer)
	var logger polylog.Logger = polyzero.NewLogger(polyzero.WithOutput(logOutput))

	registryClient, err := registry.NewRegistryClient(
		depinject.Supply(logger, txCtxMock, txClient),
		registry.WithSigningKeyName(testSigningKeyName),
	)
	require.NoError(t, err)

	return registryClient, logOutput
}

// newCommittedAsyncErr returns an AsyncError whose channel is already closed,
// i.e. a tx which committed successfully.
func newCommittedAsyncErr() either.AsyncError {
	errCh := make(chan error)
	close(errCh)
	return either.AsyncErr(errCh)
}

func newRegistryOpTests(signer string) []registryOpTest {
	var (
		commitFee  = cosmostypes.NewInt64Coin(app.DenomPhoton, 100)
		revealFee  = cosmostypes.NewInt64Coin(app.DenomPhoton, 200)
		minimumBid = cosmostypes.NewInt64Coin(app.DenomPhoton, 5000)
		coins      = cosmostypes.NewCoins(cosmostypes.NewInt64Coin(app.DenomPhoton, 1000))
		owner      = sample.AccAddress()
	)

	return []registryOpTest{
		{
			name:          "create auction",
			successLogMsg: "auction creation request sent successfully",
			errorLogMsg:   "error in creating auction",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.CreateAuction(ctx, 5*time.Minute, 3*time.Minute, commitFee, revealFee, minimumBid, signer)
			},
			expectedMsg: &auctiontypes.MsgCreateAuction{
				CommitsDuration: 5 * time.Minute,
				RevealsDuration: 3 * time.Minute,
				CommitFee:       commitFee,
				RevealFee:       revealFee,
				MinimumBid:      minimumBid,
				Signer:          signer,
			},
		},
		{
			name:          "commit bid",
			successLogMsg: "bid commit request sent successfully",
			errorLogMsg:   "error in committing bid",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.CommitBid(ctx, "auction1", "commithash1", signer)
			},
			expectedMsg: &auctiontypes.MsgCommitBid{AuctionId: "auction1", CommitHash: "commithash1", Signer: signer},
		},
		{
			name:          "reveal bid",
			successLogMsg: "bid reveal request sent successfully",
			errorLogMsg:   "error in revealing bid",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.RevealBid(ctx, "auction1", "7b2272657665616c223a317d", signer)
			},
			expectedMsg: &auctiontypes.MsgRevealBid{AuctionId: "auction1", Reveal: "7b2272657665616c223a317d", Signer: signer},
		},
		{
			name:          "create bond",
			successLogMsg: "bond creation request sent successfully",
			errorLogMsg:   "error in creating bond",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.CreateBond(ctx, signer, coins)
			},
			expectedMsg: &bondtypes.MsgCreateBond{Signer: signer, Coins: coins},
		},
		{
			name:          "refill bond",
			successLogMsg: "bond refill request sent successfully",
			errorLogMsg:   "error in refilling bond",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.RefillBond(ctx, "bond1", signer, coins)
			},
			expectedMsg: &bondtypes.MsgRefillBond{Id: "bond1", Signer: signer, Coins: coins},
		},
		{
			name:          "withdraw bond",
			successLogMsg: "bond withdrawal request sent successfully",
			errorLogMsg:   "error in withdrawing bond",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.WithdrawBond(ctx, "bond1", signer, coins)
			},
			expectedMsg: &bondtypes.MsgWithdrawBond{Id: "bond1", Signer: signer, Coins: coins},
		},
		{
			name:          "cancel bond",
			successLogMsg: "bond cancellation request sent successfully",
			errorLogMsg:   "error in cancelling bond",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.CancelBond(ctx, "bond1", signer)
			},
			expectedMsg: &bondtypes.MsgCancelBond{Id: "bond1", Signer: signer},
		},
		{
			name:          "associate bond",
			successLogMsg: "bond association request sent successfully",
			errorLogMsg:   "error in associating bond",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.AssociateBond(ctx, "record1", "bond1", signer)
			},
			expectedMsg: &nameservicetypes.MsgAssociateBond{RecordId: "record1", BondId: "bond1", Signer: signer},
		},
		{
			name:          "dissociate bond",
			successLogMsg: "bond dissociation request sent successfully",
			errorLogMsg:   "error in dissociating bond",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.DissociateBond(ctx, "record1", signer)
			},
			expectedMsg: &nameservicetypes.MsgDissociateBond{RecordId: "record1", Signer: signer},
		},
		{
			name:          "dissociate records",
			successLogMsg: "records dissociation request sent successfully",
			errorLogMsg:   "error in dissociating records",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.DissociateRecords(ctx, "bond1", signer)
			},
			expectedMsg: &nameservicetypes.MsgDissociateRecords{BondId: "bond1", Signer: signer},
		},
		{
			name:          "delete name authority",
			successLogMsg: "name authority deletion request sent successfully",
			errorLogMsg:   "error in deleting name authority",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.DeleteNameAuthority(ctx, "example", signer)
			},
			expectedMsg: &nameservicetypes.MsgDeleteNameAuthority{Name: "example", Signer: signer},
		},
		{
			name:          "reassociate records",
			successLogMsg: "records reassociation request sent successfully",
			errorLogMsg:   "error in reassociating records",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.ReAssociateRecords(ctx, "bond2", "bond1", signer)
			},
			expectedMsg: &nameservicetypes.MsgReAssociateRecords{NewBondId: "bond2", OldBondId: "bond1", Signer: signer},
		},
		{
			name:          "renew record",
			successLogMsg: "record renewal request sent successfully",
			errorLogMsg:   "error in renewing record",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.RenewRecord(ctx, "record1", signer)
			},
			expectedMsg: &nameservicetypes.MsgRenewRecord{RecordId: "record1", Signer: signer},
		},
		{
			name:          "set authority bond",
			successLogMsg: "authority bond update request sent successfully",
			errorLogMsg:   "error in setting authority bond",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.SetAuthorityBond(ctx, "example", "bond1", signer)
			},
			expectedMsg: &nameservicetypes.MsgSetAuthorityBond{Name: "example", BondId: "bond1", Signer: signer},
		},
		{
			name:          "reserve authority",
			successLogMsg: "authority reservation request sent successfully",
			errorLogMsg:   "error in reserving authority",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.ReserveAuthority(ctx, "example", signer, owner)
			},
			expectedMsg: &nameservicetypes.MsgReserveAuthority{Name: "example", Signer: signer, Owner: owner},
		},
		{
			name:          "set name",
			successLogMsg: "set name request sent successfully",
			errorLogMsg:   "error in setting name",
			call: func(ctx context.Context, rClient client.RegistryClient) error {
				return rClient.SetName(ctx, "crn://example/app", "cid1", signer)
			},
			expectedMsg: &nameservicetypes.MsgSetName{Crn: "crn://example/app", Cid: "cid1", Signer: signer},
		},
	}
}
