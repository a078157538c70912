package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/vulcanize/registry-client/testutil/sample"
)

func TestMsgCreateBond_ValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  *MsgCreateBond
		err  error
	}{
		{
			name: "valid",
			msg:  NewMsgCreateBond(sample.AccAddress(), sdk.NewCoins(sdk.NewInt64Coin("aphoton", 1000))),
		},
		{
			name: "invalid - signer address",
			msg:  NewMsgCreateBond("invalid_address", sdk.NewCoins(sdk.NewInt64Coin("aphoton", 1000))),
			err:  ErrBondInvalidSigner,
		},
		{
			name: "invalid - empty coins",
			msg:  NewMsgCreateBond(sample.AccAddress(), sdk.Coins{}),
			err:  ErrBondInvalidCoins,
		},
		{
			name: "invalid - unsorted coins",
			msg: NewMsgCreateBond(sample.AccAddress(), sdk.Coins{
				sdk.NewInt64Coin("bphoton", 1),
				sdk.NewInt64Coin("aphoton", 1),
			}),
			err: ErrBondInvalidCoins,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}
