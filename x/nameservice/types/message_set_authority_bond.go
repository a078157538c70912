package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgSetAuthorityBond = "set_authority_bond"

var _ sdk.Msg = (*MsgSetAuthorityBond)(nil)

func NewMsgSetAuthorityBond(name, bondId, signer string) *MsgSetAuthorityBond {
	return &MsgSetAuthorityBond{
		Name:   name,
		BondId: bondId,
		Signer: signer,
	}
}

func (msg *MsgSetAuthorityBond) Route() string {
	return RouterKey
}

func (msg *MsgSetAuthorityBond) Type() string {
	return TypeMsgSetAuthorityBond
}

func (msg *MsgSetAuthorityBond) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgSetAuthorityBond) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgSetAuthorityBond) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrNameserviceInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.Name == "" {
		return ErrNameserviceInvalidName.Wrap("empty name")
	}
	if msg.BondId == "" {
		return ErrNameserviceInvalidBondID.Wrap("empty bond id")
	}
	return nil
}
