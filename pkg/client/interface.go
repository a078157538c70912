//go:generate mockgen -destination=../../testutil/mockclient/tx_context_mock.go -package=mockclient . TxContext
//go:generate mockgen -destination=../../testutil/mockclient/tx_client_mock.go -package=mockclient . TxClient
//go:generate mockgen -destination=../../testutil/mockclient/registry_client_mock.go -package=mockclient . RegistryClient
//go:generate mockgen -destination=../../testutil/mockclient/cosmos_client_mock.go -package=mockclient github.com/cosmos/cosmos-sdk/client AccountRetriever

package client

import (
	"context"
	"time"

	cometrpctypes "github.com/cometbft/cometbft/rpc/core/types"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmoskeyring "github.com/cosmos/cosmos-sdk/crypto/keyring"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/vulcanize/registry-client/pkg/either"
)

// TxContext provides an interface which consolidates the operational dependencies
// required to facilitate the sender side of the tx lifecycle: build, sign, encode,
// broadcast, query.
type TxContext interface {
	// GetKeyring returns the associated key management mechanism for the tx context.
	GetKeyring() cosmoskeyring.Keyring

	// NewTxBuilder creates and returns a new tx builder instance.
	NewTxBuilder() cosmosclient.TxBuilder

	// SignTx signs a tx using the specified key name. It can operate in offline mode,
	// and can overwrite any existing signatures based on the provided flags.
	SignTx(
		keyName string,
		txBuilder cosmosclient.TxBuilder,
		offline, overwriteSig bool,
	) error

	// EncodeTx takes a tx builder and encodes it, returning its byte representation.
	EncodeTx(txBuilder cosmosclient.TxBuilder) ([]byte, error)

	// BroadcastTx broadcasts the given tx to the network, blocking until the
	// check-tx ABCI operation completes.
	BroadcastTx(txBytes []byte) (*cosmostypes.TxResponse, error)

	// QueryTx retrieves a tx status based on its hash and optionally provides
	// proof of the tx.
	QueryTx(
		ctx context.Context,
		txHash []byte,
		prove bool,
	) (*cometrpctypes.ResultTx, error)

	// GetClientCtx returns the cosmos-sdk client context associated with the
	// tx context.
	GetClientCtx() cosmosclient.Context
}

// TxClient provides a synchronous interface initiating and waiting for transactions
// derived from cosmos-sdk messages, in a cosmos-sdk based blockchain network.
type TxClient interface {
	// SignAndBroadcast validates, signs and broadcasts the given messages in a
	// single tx, paying the configured fee and gas limit. Failures up to and
	// including check-tx are returned synchronously; the returned error channel
	// receives the deliver-tx failure or timeout, or is closed without a value
	// once the tx is committed successfully.
	SignAndBroadcast(
		ctx context.Context,
		msgs ...cosmostypes.Msg,
	) either.AsyncError
}

// TxClientOption defines a function type that modifies the TxClient.
type TxClientOption func(TxClient)

// RegistryClient submits the auction, bond and nameservice module messages of
// the registry chain. Each method builds one message from its arguments,
// signs and broadcasts it and blocks until the tx is committed, fails, times
// out, or ctx is done. The outcome is logged and any failure is returned.
type RegistryClient interface {
	// CreateAuction creates a new auction with the given commit and reveal
	// phase durations, fees and minimum bid.
	CreateAuction(
		ctx context.Context,
		commitsDuration, revealsDuration time.Duration,
		commitFee, revealFee, minimumBid cosmostypes.Coin,
		signer string,
	) error
	// CommitBid commits a sealed bid, identified by its commit hash, to an auction.
	CommitBid(ctx context.Context, auctionID, commitHash, signer string) error
	// RevealBid reveals a previously committed bid.
	RevealBid(ctx context.Context, auctionID, reveal, signer string) error

	// CreateBond creates a new bond funded with coins.
	CreateBond(ctx context.Context, signer string, coins cosmostypes.Coins) error
	// RefillBond adds coins to an existing bond.
	RefillBond(ctx context.Context, bondID, signer string, coins cosmostypes.Coins) error
	// WithdrawBond withdraws coins from an existing bond.
	WithdrawBond(ctx context.Context, bondID, signer string, coins cosmostypes.Coins) error
	// CancelBond cancels a bond, returning its remaining balance to the owner.
	CancelBond(ctx context.Context, bondID, signer string) error

	// AssociateBond associates a record with a bond.
	AssociateBond(ctx context.Context, recordID, bondID, signer string) error
	// DissociateBond removes the bond association of a record.
	DissociateBond(ctx context.Context, recordID, signer string) error
	// DissociateRecords removes the association of all records with a bond.
	DissociateRecords(ctx context.Context, bondID, signer string) error
	// DeleteNameAuthority deletes a name authority.
	DeleteNameAuthority(ctx context.Context, name, signer string) error
	// ReAssociateRecords moves all records associated with oldBondID to newBondID.
	ReAssociateRecords(ctx context.Context, newBondID, oldBondID, signer string) error
	// RenewRecord renews an expired record.
	RenewRecord(ctx context.Context, recordID, signer string) error
	// SetAuthorityBond sets the bond of a name authority.
	SetAuthorityBond(ctx context.Context, name, bondID, signer string) error
	// ReserveAuthority reserves a name authority on behalf of owner. An empty
	// owner defaults to the signer on chain.
	ReserveAuthority(ctx context.Context, name, signer, owner string) error
	// SetName maps a CRN to a content ID.
	SetName(ctx context.Context, crn, cid, signer string) error

	// SigningAddress returns the address of the key which signs all txs.
	SigningAddress() cosmostypes.AccAddress
}

// RegistryClientOption defines a function type that modifies the RegistryClient.
type RegistryClientOption func(RegistryClient)
