package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vulcanize/registry-client/testutil/sample"
)

func TestMsgReAssociateRecords_ValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  *MsgReAssociateRecords
		err  error
	}{
		{
			name: "valid",
			msg:  NewMsgReAssociateRecords("bond2", "bond1", sample.AccAddress()),
		},
		{
			name: "invalid - missing new bond id",
			msg:  NewMsgReAssociateRecords("", "bond1", sample.AccAddress()),
			err:  ErrNameserviceInvalidBondID,
		},
		{
			name: "invalid - missing old bond id",
			msg:  NewMsgReAssociateRecords("bond2", "", sample.AccAddress()),
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
