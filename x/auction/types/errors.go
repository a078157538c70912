package types

// DONTCOVER

import sdkerrors "cosmossdk.io/errors"

// x/auction module sentinel errors
var (
	ErrAuctionInvalidSigner     = sdkerrors.Register(ModuleName, 1100, "invalid signer address")
	ErrAuctionInvalidDuration   = sdkerrors.Register(ModuleName, 1101, "invalid auction phase duration")
	ErrAuctionInvalidFee        = sdkerrors.Register(ModuleName, 1102, "invalid auction fee")
	ErrAuctionInvalidMinimumBid = sdkerrors.Register(ModuleName, 1103, "invalid minimum bid")
	ErrAuctionInvalidID         = sdkerrors.Register(ModuleName, 1104, "invalid auction id")
	ErrAuctionInvalidCommitHash = sdkerrors.Register(ModuleName, 1105, "invalid bid commit hash")
	ErrAuctionInvalidReveal     = sdkerrors.Register(ModuleName, 1106, "invalid bid reveal")
)
