package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vulcanize/registry-client/testutil/sample"
)

func TestMsgRevealBid_ValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  *MsgRevealBid
		err  error
	}{
		{
			name: "valid",
			msg:  NewMsgRevealBid("auction1", "7b2272657665616c223a317d", sample.AccAddress()),
		},
		{
			name: "invalid - missing signer",
			msg:  NewMsgRevealBid("auction1", "7b7d", ""),
			err:  ErrAuctionInvalidSigner,
		},
		{
			name: "invalid - missing auction id",
			msg:  NewMsgRevealBid("", "7b7d", sample.AccAddress()),
			err:  ErrAuctionInvalidID,
		},
		{
			name: "invalid - missing reveal",
			msg:  NewMsgRevealBid("auction1", "", sample.AccAddress()),
			err:  ErrAuctionInvalidReveal,
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
