package cmd

import sdkerrors "cosmossdk.io/errors"

var (
	codespace                = "registry_cmd"
	ErrRegistryCmdInvalidArg = sdkerrors.Register(codespace, 1, "invalid argument")
	ErrRegistryCmdNoConfig   = sdkerrors.Register(codespace, 2, "registry client config not loaded")
)
