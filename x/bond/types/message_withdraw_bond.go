package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgWithdrawBond = "withdraw_bond"

var _ sdk.Msg = (*MsgWithdrawBond)(nil)

func NewMsgWithdrawBond(id, signer string, coins sdk.Coins) *MsgWithdrawBond {
	return &MsgWithdrawBond{
		Id:     id,
		Signer: signer,
		Coins:  coins,
	}
}

func (msg *MsgWithdrawBond) Route() string {
	return RouterKey
}

func (msg *MsgWithdrawBond) Type() string {
	return TypeMsgWithdrawBond
}

func (msg *MsgWithdrawBond) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgWithdrawBond) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgWithdrawBond) ValidateBasic() error {
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
