package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgAssociateBond = "associate_bond"

var _ sdk.Msg = (*MsgAssociateBond)(nil)

func NewMsgAssociateBond(recordId, bondId, signer string) *MsgAssociateBond {
	return &MsgAssociateBond{
		RecordId: recordId,
		BondId:   bondId,
		Signer:   signer,
	}
}

func (msg *MsgAssociateBond) Route() string {
	return RouterKey
}

func (msg *MsgAssociateBond) Type() string {
	return TypeMsgAssociateBond
}

func (msg *MsgAssociateBond) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgAssociateBond) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgAssociateBond) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrNameserviceInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.RecordId == "" {
		return ErrNameserviceInvalidRecordID.Wrap("empty record id")
	}
	if msg.BondId == "" {
		return ErrNameserviceInvalidBondID.Wrap("empty bond id")
	}
	return nil
}
