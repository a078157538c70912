package app_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/stretchr/testify/require"

	"github.com/vulcanize/registry-client/app"
	"github.com/vulcanize/registry-client/testutil/sample"
	auctiontypes "github.com/vulcanize/registry-client/x/auction/types"
	bondtypes "github.com/vulcanize/registry-client/x/bond/types"
	nameservicetypes "github.com/vulcanize/registry-client/x/nameservice/types"
)

func TestMakeEncodingConfig_TxRoundTrip(t *testing.T) {
	var (
		encCfg = app.MakeEncodingConfig()
		signer = sample.AccAddress()
		fee    = sdk.NewInt64Coin(app.DenomPhoton, app.DefaultFeeAmount)
		coins  = sdk.NewCoins(sdk.NewInt64Coin(app.DenomPhoton, 1000))
	)

	tests := []struct {
		expectedTypeURL string
		msg             sdk.Msg
	}{
		{
			expectedTypeURL: "/vulcanize.auction.v1beta1.MsgCreateAuction",
			msg:             auctiontypes.NewMsgCreateAuction(time.Hour, time.Minute, fee, fee, fee, signer),
		},
		{
			expectedTypeURL: "/vulcanize.auction.v1beta1.MsgCommitBid",
			msg:             auctiontypes.NewMsgCommitBid("auction1", "hash", signer),
		},
		{
			expectedTypeURL: "/vulcanize.auction.v1beta1.MsgRevealBid",
			msg:             auctiontypes.NewMsgRevealBid("auction1", "reveal", signer),
		},
		{
			expectedTypeURL: "/vulcanize.bond.v1beta1.MsgCreateBond",
			msg:             bondtypes.NewMsgCreateBond(signer, coins),
		},
		{
			expectedTypeURL: "/vulcanize.bond.v1beta1.MsgRefillBond",
			msg:             bondtypes.NewMsgRefillBond("bond1", signer, coins),
		},
		{
			expectedTypeURL: "/vulcanize.bond.v1beta1.MsgWithdrawBond",
			msg:             bondtypes.NewMsgWithdrawBond("bond1", signer, coins),
		},
		{
			expectedTypeURL: "/vulcanize.bond.v1beta1.MsgCancelBond",
			msg:             bondtypes.NewMsgCancelBond("bond1", signer),
		},
		{
			expectedTypeURL: "/vulcanize.nameservice.v1beta1.MsgAssociateBond",
			msg:             nameservicetypes.NewMsgAssociateBond("record1", "bond1", signer),
		},
		{
			expectedTypeURL: "/vulcanize.nameservice.v1beta1.MsgDissociateBond",
			msg:             nameservicetypes.NewMsgDissociateBond("record1", signer),
		},
		{
			expectedTypeURL: "/vulcanize.nameservice.v1beta1.MsgDissociateRecords",
			msg:             nameservicetypes.NewMsgDissociateRecords("bond1", signer),
		},
		{
			expectedTypeURL: "/vulcanize.nameservice.v1beta1.MsgDeleteNameAuthority",
			msg:             nameservicetypes.NewMsgDeleteNameAuthority("example", signer),
		},
		{
			expectedTypeURL: "/vulcanize.nameservice.v1beta1.MsgReAssociateRecords",
			msg:             nameservicetypes.NewMsgReAssociateRecords("bond2", "bond1", signer),
		},
		{
			expectedTypeURL: "/vulcanize.nameservice.v1beta1.MsgRenewRecord",
			msg:             nameservicetypes.NewMsgRenewRecord("record1", signer),
		},
		{
			expectedTypeURL: "/vulcanize.nameservice.v1beta1.MsgSetAuthorityBond",
			msg:             nameservicetypes.NewMsgSetAuthorityBond("example", "bond1", signer),
		},
		{
			expectedTypeURL: "/vulcanize.nameservice.v1beta1.MsgReserveAuthority",
			msg:             nameservicetypes.NewMsgReserveAuthority("example", signer, signer),
		},
		{
			expectedTypeURL: "/vulcanize.nameservice.v1beta1.MsgSetName",
			msg:             nameservicetypes.NewMsgSetName("crn://example/app", "cid1", signer),
		},
	}

	for _, tt := range tests {
		t.Run(tt.expectedTypeURL, func(t *testing.T) {
			require.Equal(t, tt.expectedTypeURL, sdk.MsgTypeURL(tt.msg))

			txBuilder := encCfg.TxConfig.NewTxBuilder()
			require.NoError(t, txBuilder.SetMsgs(tt.msg))
			txBuilder.SetFeeAmount(sdk.NewCoins(fee))
			txBuilder.SetGasLimit(app.DefaultGasLimit)

			txBz, err := encCfg.TxConfig.TxEncoder()(txBuilder.GetTx())
			require.NoError(t, err)

			// Decode with the proto codec rather than the tx decoder; the latter
			// requires file descriptors to reject unknown fields.
			var txRaw txtypes.TxRaw
			require.NoError(t, encCfg.Marshaler.Unmarshal(txBz, &txRaw))

			var txBody txtypes.TxBody
			require.NoError(t, encCfg.Marshaler.Unmarshal(txRaw.BodyBytes, &txBody))
			require.Len(t, txBody.Messages, 1)
			require.Equal(t, tt.expectedTypeURL, txBody.Messages[0].TypeUrl)
			require.Equal(t, tt.msg, txBody.Messages[0].GetCachedValue())

			var authInfo txtypes.AuthInfo
			require.NoError(t, encCfg.Marshaler.Unmarshal(txRaw.AuthInfoBytes, &authInfo))
			require.Equal(t, sdk.NewCoins(fee), authInfo.Fee.Amount)
			require.Equal(t, uint64(app.DefaultGasLimit), authInfo.Fee.GasLimit)
		})
	}
}
