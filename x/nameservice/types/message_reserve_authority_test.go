package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vulcanize/registry-client/testutil/sample"
)

func TestMsgReserveAuthority_ValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  *MsgReserveAuthority
		err  error
	}{
		{
			name: "valid - explicit owner",
			msg:  NewMsgReserveAuthority("example", sample.AccAddress(), sample.AccAddress()),
		},
		{
			name: "valid - empty owner",
			msg:  NewMsgReserveAuthority("example", sample.AccAddress(), ""),
		},
		{
			name: "invalid - owner address",
			msg:  NewMsgReserveAuthority("example", sample.AccAddress(), "invalid_address"),
			err:  ErrNameserviceInvalidOwner,
		},
		{
			name: "invalid - missing name",
			msg:  NewMsgReserveAuthority("", sample.AccAddress(), ""),
			err:  ErrNameserviceInvalidName,
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
