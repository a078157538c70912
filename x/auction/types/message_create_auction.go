package types

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgCreateAuction = "create_auction"

var _ sdk.Msg = (*MsgCreateAuction)(nil)

func NewMsgCreateAuction(
	commitsDuration, revealsDuration time.Duration,
	commitFee, revealFee, minimumBid sdk.Coin,
	signer string,
) *MsgCreateAuction {
	return &MsgCreateAuction{
		CommitsDuration: commitsDuration,
		RevealsDuration: revealsDuration,
		CommitFee:       commitFee,
		RevealFee:       revealFee,
		MinimumBid:      minimumBid,
		Signer:          signer,
	}
}

func (msg *MsgCreateAuction) Route() string {
	return RouterKey
}

func (msg *MsgCreateAuction) Type() string {
	return TypeMsgCreateAuction
}

func (msg *MsgCreateAuction) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgCreateAuction) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgCreateAuction) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrAuctionInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.CommitsDuration <= 0 {
		return ErrAuctionInvalidDuration.Wrapf("commits duration must be positive, got %s", msg.CommitsDuration)
	}
	if msg.RevealsDuration <= 0 {
		return ErrAuctionInvalidDuration.Wrapf("reveals duration must be positive, got %s", msg.RevealsDuration)
	}
	if err := msg.CommitFee.Validate(); err != nil {
		return ErrAuctionInvalidFee.Wrapf("commit fee %s: %s", msg.CommitFee, err)
	}
	if err := msg.RevealFee.Validate(); err != nil {
		return ErrAuctionInvalidFee.Wrapf("reveal fee %s: %s", msg.RevealFee, err)
	}
	if err := msg.MinimumBid.Validate(); err != nil {
		return ErrAuctionInvalidMinimumBid.Wrapf("%s: %s", msg.MinimumBid, err)
	}
	return nil
}
