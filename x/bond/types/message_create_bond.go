package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgCreateBond = "create_bond"

var _ sdk.Msg = (*MsgCreateBond)(nil)

func NewMsgCreateBond(signer string, coins sdk.Coins) *MsgCreateBond {
	return &MsgCreateBond{
		Signer: signer,
		Coins:  coins,
	}
}

func (msg *MsgCreateBond) Route() string {
	return RouterKey
}

func (msg *MsgCreateBond) Type() string {
	return TypeMsgCreateBond
}

func (msg *MsgCreateBond) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgCreateBond) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgCreateBond) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrBondInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.Coins.Empty() {
		return ErrBondInvalidCoins.Wrap("empty coins")
	}
	if err := msg.Coins.Validate(); err != nil {
		return ErrBondInvalidCoins.Wrapf("%s: %s", msg.Coins, err)
	}
	return nil
}
