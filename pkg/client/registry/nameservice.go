package registry

import (
	"context"

	nameservicetypes "github.com/vulcanize/registry-client/x/nameservice/types"
)

var (
	opAssociateBond       = operation{noun: "bond association", gerund: "associating bond"}
	opDissociateBond      = operation{noun: "bond dissociation", gerund: "dissociating bond"}
	opDissociateRecords   = operation{noun: "records dissociation", gerund: "dissociating records"}
	opDeleteNameAuthority = operation{noun: "name authority deletion", gerund: "deleting name authority"}
	opReAssociateRecords  = operation{noun: "records reassociation", gerund: "reassociating records"}
	opRenewRecord         = operation{noun: "record renewal", gerund: "renewing record"}
	opSetAuthorityBond    = operation{noun: "authority bond update", gerund: "setting authority bond"}
	opReserveAuthority    = operation{noun: "authority reservation", gerund: "reserving authority"}
	opSetName             = operation{noun: "set name", gerund: "setting name"}
)

// AssociateBond sends a MsgAssociateBond.
func (rClient *registryClient) AssociateBond(
	ctx context.Context,
	recordID, bondID, signer string,
) error {
	msg := nameservicetypes.NewMsgAssociateBond(recordID, bondID, signer)
	return rClient.sendTxMessage(ctx, opAssociateBond, msg)
}

// DissociateBond sends a MsgDissociateBond.
func (rClient *registryClient) DissociateBond(
	ctx context.Context,
	recordID, signer string,
) error {
	msg := nameservicetypes.NewMsgDissociateBond(recordID, signer)
	return rClient.sendTxMessage(ctx, opDissociateBond, msg)
}

// DissociateRecords sends a MsgDissociateRecords.
func (rClient *registryClient) DissociateRecords(
	ctx context.Context,
	bondID, signer string,
) error {
	msg := nameservicetypes.NewMsgDissociateRecords(bondID, signer)
	return rClient.sendTxMessage(ctx, opDissociateRecords, msg)
}

// DeleteNameAuthority sends a MsgDeleteNameAuthority.
func (rClient *registryClient) DeleteNameAuthority(
	ctx context.Context,
	name, signer string,
) error {
	msg := nameservicetypes.NewMsgDeleteNameAuthority(name, signer)
	return rClient.sendTxMessage(ctx, opDeleteNameAuthority, msg)
}

// ReAssociateRecords sends a MsgReAssociateRecords.
func (rClient *registryClient) ReAssociateRecords(
	ctx context.Context,
	newBondID, oldBondID, signer string,
) error {
	msg := nameservicetypes.NewMsgReAssociateRecords(newBondID, oldBondID, signer)
	return rClient.sendTxMessage(ctx, opReAssociateRecords, msg)
}

// RenewRecord sends a MsgRenewRecord.
func (rClient *registryClient) RenewRecord(
	ctx context.Context,
	recordID, signer string,
) error {
	msg := nameservicetypes.NewMsgRenewRecord(recordID, signer)
	return rClient.sendTxMessage(ctx, opRenewRecord, msg)
}

// SetAuthorityBond sends a MsgSetAuthorityBond.
func (rClient *registryClient) SetAuthorityBond(
	ctx context.Context,
	name, bondID, signer string,
) error {
	msg := nameservicetypes.NewMsgSetAuthorityBond(name, bondID, signer)
	return rClient.sendTxMessage(ctx, opSetAuthorityBond, msg)
}

// ReserveAuthority sends a MsgReserveAuthority. An empty owner is left empty;
// the chain then treats the signer as the owner.
func (rClient *registryClient) ReserveAuthority(
	ctx context.Context,
	name, signer, owner string,
) error {
	msg := nameservicetypes.NewMsgReserveAuthority(name, signer, owner)
	return rClient.sendTxMessage(ctx, opReserveAuthority, msg)
}

// SetName sends a MsgSetName.
func (rClient *registryClient) SetName(
	ctx context.Context,
	crn, cid, signer string,
) error {
	msg := nameservicetypes.NewMsgSetName(crn, cid, signer)
	return rClient.sendTxMessage(ctx, opSetName, msg)
}
