package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgRevealBid = "reveal_bid"

var _ sdk.Msg = (*MsgRevealBid)(nil)

func NewMsgRevealBid(auctionId, reveal, signer string) *MsgRevealBid {
	return &MsgRevealBid{
		AuctionId: auctionId,
		Reveal:    reveal,
		Signer:    signer,
	}
}

func (msg *MsgRevealBid) Route() string {
	return RouterKey
}

func (msg *MsgRevealBid) Type() string {
	return TypeMsgRevealBid
}

func (msg *MsgRevealBid) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgRevealBid) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgRevealBid) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrAuctionInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.AuctionId == "" {
		return ErrAuctionInvalidID.Wrap("empty auction id")
	}
	if msg.Reveal == "" {
		return ErrAuctionInvalidReveal.Wrap("empty reveal")
	}
	return nil
}
