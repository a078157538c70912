package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgReAssociateRecords = "reassociate_records"

var _ sdk.Msg = (*MsgReAssociateRecords)(nil)

func NewMsgReAssociateRecords(newBondId, oldBondId, signer string) *MsgReAssociateRecords {
	return &MsgReAssociateRecords{
		NewBondId: newBondId,
		OldBondId: oldBondId,
		Signer:    signer,
	}
}

func (msg *MsgReAssociateRecords) Route() string {
	return RouterKey
}

func (msg *MsgReAssociateRecords) Type() string {
	return TypeMsgReAssociateRecords
}

func (msg *MsgReAssociateRecords) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgReAssociateRecords) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgReAssociateRecords) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrNameserviceInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.NewBondId == "" {
		return ErrNameserviceInvalidBondID.Wrap("empty new bond id")
	}
	if msg.OldBondId == "" {
		return ErrNameserviceInvalidBondID.Wrap("empty old bond id")
	}
	return nil
}
