package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgCommitBid = "commit_bid"

var _ sdk.Msg = (*MsgCommitBid)(nil)

func NewMsgCommitBid(auctionId, commitHash, signer string) *MsgCommitBid {
	return &MsgCommitBid{
		AuctionId:  auctionId,
		CommitHash: commitHash,
		Signer:     signer,
	}
}

func (msg *MsgCommitBid) Route() string {
	return RouterKey
}

func (msg *MsgCommitBid) Type() string {
	return TypeMsgCommitBid
}

func (msg *MsgCommitBid) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgCommitBid) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgCommitBid) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrAuctionInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.AuctionId == "" {
		return ErrAuctionInvalidID.Wrap("empty auction id")
	}
	if msg.CommitHash == "" {
		return ErrAuctionInvalidCommitHash.Wrap("empty commit hash")
	}
	return nil
}
