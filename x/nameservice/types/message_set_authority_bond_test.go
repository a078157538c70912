package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vulcanize/registry-client/testutil/sample"
)

func TestMsgSetAuthorityBond_ValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  *MsgSetAuthorityBond
		err  error
	}{
		{
			name: "valid",
			msg:  NewMsgSetAuthorityBond("example", "bond1", sample.AccAddress()),
		},
		{
			name: "invalid - missing name",
			msg:  NewMsgSetAuthorityBond("", "bond1", sample.AccAddress()),
			err:  ErrNameserviceInvalidName,
		},
		{
			name: "invalid - missing bond id",
			msg:  NewMsgSetAuthorityBond("example", "", sample.AccAddress()),
			err:  ErrNameserviceInvalidBondID,
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
