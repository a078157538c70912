package types

// DONTCOVER

import sdkerrors "cosmossdk.io/errors"

// x/nameservice module sentinel errors
var (
	ErrNameserviceInvalidSigner   = sdkerrors.Register(ModuleName, 1100, "invalid signer address")
	ErrNameserviceInvalidRecordID = sdkerrors.Register(ModuleName, 1101, "invalid record id")
	ErrNameserviceInvalidBondID   = sdkerrors.Register(ModuleName, 1102, "invalid bond id")
	ErrNameserviceInvalidName     = sdkerrors.Register(ModuleName, 1103, "invalid authority name")
	ErrNameserviceInvalidOwner    = sdkerrors.Register(ModuleName, 1104, "invalid authority owner address")
	ErrNameserviceInvalidCRN      = sdkerrors.Register(ModuleName, 1105, "invalid crn")
	ErrNameserviceInvalidCID      = sdkerrors.Register(ModuleName, 1106, "invalid cid")
)
