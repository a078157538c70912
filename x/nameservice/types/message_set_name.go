package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgSetName = "set_name"

var _ sdk.Msg = (*MsgSetName)(nil)

func NewMsgSetName(crn, cid, signer string) *MsgSetName {
	return &MsgSetName{
		Crn:    crn,
		Cid:    cid,
		Signer: signer,
	}
}

func (msg *MsgSetName) Route() string {
	return RouterKey
}

func (msg *MsgSetName) Type() string {
	return TypeMsgSetName
}

func (msg *MsgSetName) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgSetName) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgSetName) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrNameserviceInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.Crn == "" {
		return ErrNameserviceInvalidCRN.Wrap("empty crn")
	}
	if msg.Cid == "" {
		return ErrNameserviceInvalidCID.Wrap("empty cid")
	}
	return nil
}
