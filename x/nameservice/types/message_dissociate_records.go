package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgDissociateRecords = "dissociate_records"

var _ sdk.Msg = (*MsgDissociateRecords)(nil)

func NewMsgDissociateRecords(bondId, signer string) *MsgDissociateRecords {
	return &MsgDissociateRecords{
		BondId: bondId,
		Signer: signer,
	}
}

func (msg *MsgDissociateRecords) Route() string {
	return RouterKey
}

func (msg *MsgDissociateRecords) Type() string {
	return TypeMsgDissociateRecords
}

func (msg *MsgDissociateRecords) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgDissociateRecords) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgDissociateRecords) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrNameserviceInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.BondId == "" {
		return ErrNameserviceInvalidBondID.Wrap("empty bond id")
	}
	return nil
}
