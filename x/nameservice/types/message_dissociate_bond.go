package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgDissociateBond = "dissociate_bond"

var _ sdk.Msg = (*MsgDissociateBond)(nil)

func NewMsgDissociateBond(recordId, signer string) *MsgDissociateBond {
	return &MsgDissociateBond{
		RecordId: recordId,
		Signer:   signer,
	}
}

func (msg *MsgDissociateBond) Route() string {
	return RouterKey
}

func (msg *MsgDissociateBond) Type() string {
	return TypeMsgDissociateBond
}

func (msg *MsgDissociateBond) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgDissociateBond) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgDissociateBond) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrNameserviceInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.RecordId == "" {
		return ErrNameserviceInvalidRecordID.Wrap("empty record id")
	}
	return nil
}
