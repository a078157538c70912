package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgDeleteNameAuthority = "delete_name_authority"

var _ sdk.Msg = (*MsgDeleteNameAuthority)(nil)

func NewMsgDeleteNameAuthority(name, signer string) *MsgDeleteNameAuthority {
	return &MsgDeleteNameAuthority{
		Name:   name,
		Signer: signer,
	}
}

func (msg *MsgDeleteNameAuthority) Route() string {
	return RouterKey
}

func (msg *MsgDeleteNameAuthority) Type() string {
	return TypeMsgDeleteNameAuthority
}

func (msg *MsgDeleteNameAuthority) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgDeleteNameAuthority) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgDeleteNameAuthority) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrNameserviceInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.Name == "" {
		return ErrNameserviceInvalidName.Wrap("empty name")
	}
	return nil
}
