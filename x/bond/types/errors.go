package types

// DONTCOVER

import sdkerrors "cosmossdk.io/errors"

// x/bond module sentinel errors
var (
	ErrBondInvalidSigner = sdkerrors.Register(ModuleName, 1100, "invalid signer address")
	ErrBondInvalidID     = sdkerrors.Register(ModuleName, 1101, "invalid bond id")
	ErrBondInvalidCoins  = sdkerrors.Register(ModuleName, 1102, "invalid bond coins")
)
