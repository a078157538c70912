package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgRefillBond = "refill_bond"

var _ sdk.Msg = (*MsgRefillBond)(nil)

func NewMsgRefillBond(id, signer string, coins sdk.Coins) *MsgRefillBond {
	return &MsgRefillBond{
		Id:     id,
		Signer: signer,
		Coins:  coins,
	}
}

func (msg *MsgRefillBond) Route() string {
	return RouterKey
}

func (msg *MsgRefillBond) Type() string {
	return TypeMsgRefillBond
}

func (msg *MsgRefillBond) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgRefillBond) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgRefillBond) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrBondInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.Id == "" {
		return ErrBondInvalidID.Wrap("empty bond id")
	}
	if msg.Coins.Empty() {
		return ErrBondInvalidCoins.Wrap("empty coins")
	}
	if err := msg.Coins.Validate(); err != nil {
		return ErrBondInvalidCoins.Wrapf("%s: %s", msg.Coins, err)
	}
	return nil
}
