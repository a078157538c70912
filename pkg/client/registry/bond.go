package registry

import (
	"context"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	bondtypes "github.com/vulcanize/registry-client/x/bond/types"
)

var (
	opCreateBond   = operation{noun: "bond creation", gerund: "creating bond"}
	opRefillBond   = operation{noun: "bond refill", gerund: "refilling bond"}
	opWithdrawBond = operation{noun: "bond withdrawal", gerund: "withdrawing bond"}
	opCancelBond   = operation{noun: "bond cancellation", gerund: "cancelling bond"}
)

// CreateBond sends a MsgCreateBond.
func (rClient *registryClient) CreateBond(
	ctx context.Context,
	signer string,
	coins cosmostypes.Coins,
) error {
	msg := bondtypes.NewMsgCreateBond(signer, coins)
	return rClient.sendTxMessage(ctx, opCreateBond, msg)
}

// RefillBond sends a MsgRefillBond.
func (rClient *registryClient) RefillBond(
	ctx context.Context,
	bondID, signer string,
	coins cosmostypes.Coins,
) error {
	msg := bondtypes.NewMsgRefillBond(bondID, signer, coins)
	return rClient.sendTxMessage(ctx, opRefillBond, msg)
}

// WithdrawBond sends a MsgWithdrawBond.
func (rClient *registryClient) WithdrawBond(
	ctx context.Context,
	bondID, signer string,
	coins cosmostypes.Coins,
) error {
	msg := bondtypes.NewMsgWithdrawBond(bondID, signer, coins)
	return rClient.sendTxMessage(ctx, opWithdrawBond, msg)
}

// CancelBond sends a MsgCancelBond.
func (rClient *registryClient) CancelBond(
	ctx context.Context,
	bondID, signer string,
) error {
	msg := bondtypes.NewMsgCancelBond(bondID, signer)
	return rClient.sendTxMessage(ctx, opCancelBond, msg)
}
