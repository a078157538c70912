package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgReserveAuthority = "reserve_authority"

var _ sdk.Msg = (*MsgReserveAuthority)(nil)

func NewMsgReserveAuthority(name, signer, owner string) *MsgReserveAuthority {
	return &MsgReserveAuthority{
		Name:   name,
		Signer: signer,
		Owner:  owner,
	}
}

func (msg *MsgReserveAuthority) Route() string {
	return RouterKey
}

func (msg *MsgReserveAuthority) Type() string {
	return TypeMsgReserveAuthority
}

func (msg *MsgReserveAuthority) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgReserveAuthority) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgReserveAuthority) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrNameserviceInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.Name == "" {
		return ErrNameserviceInvalidName.Wrap("empty name")
	}
	// The chain defaults an empty owner to the signer.
	if msg.Owner != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
			return ErrNameserviceInvalidOwner.Wrapf("%s; (%v)", msg.Owner, err)
		}
	}
	return nil
}
