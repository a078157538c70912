package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgCancelBond = "cancel_bond"

var _ sdk.Msg = (*MsgCancelBond)(nil)

func NewMsgCancelBond(id, signer string) *MsgCancelBond {
	return &MsgCancelBond{
		Id:     id,
		Signer: signer,
	}
}

func (msg *MsgCancelBond) Route() string {
	return RouterKey
}

func (msg *MsgCancelBond) Type() string {
	return TypeMsgCancelBond
}

func (msg *MsgCancelBond) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgCancelBond) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgCancelBond) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrBondInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.Id == "" {
		return ErrBondInvalidID.Wrap("empty bond id")
	}
	return nil
}
