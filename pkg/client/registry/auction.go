package registry

import (
	"context"
	"time"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	auctiontypes "github.com/vulcanize/registry-client/x/auction/types"
)

var (
	opCreateAuction = operation{noun: "auction creation", gerund: "creating auction"}
	opCommitBid     = operation{noun: "bid commit", gerund: "committing bid"}
	opRevealBid     = operation{noun: "bid reveal", gerund: "revealing bid"}
)

// CreateAuction sends a MsgCreateAuction.
func (rClient *registryClient) CreateAuction(
	ctx context.Context,
	commitsDuration, revealsDuration time.Duration,
	commitFee, revealFee, minimumBid cosmostypes.Coin,
	signer string,
) error {
	msg := auctiontypes.NewMsgCreateAuction(
		commitsDuration, revealsDuration,
		commitFee, revealFee, minimumBid,
		signer,
	)
	return rClient.sendTxMessage(ctx, opCreateAuction, msg)
}

// CommitBid sends a MsgCommitBid.
func (rClient *registryClient) CommitBid(
	ctx context.Context,
	auctionID, commitHash, signer string,
) error {
	msg := auctiontypes.NewMsgCommitBid(auctionID, commitHash, signer)
	return rClient.sendTxMessage(ctx, opCommitBid, msg)
}

// RevealBid sends a MsgRevealBid.
func (rClient *registryClient) RevealBid(
	ctx context.Context,
	auctionID, reveal, signer string,
) error {
	msg := auctiontypes.NewMsgRevealBid(auctionID, reveal, signer)
	return rClient.sendTxMessage(ctx, opRevealBid, msg)
}
