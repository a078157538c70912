package config

import sdkerrors "cosmossdk.io/errors"

var (
	codespace                          = "registry_config"
	ErrRegistryConfigUnmarshalYAML     = sdkerrors.Register(codespace, 1, "config reader cannot unmarshal yaml content")
	ErrRegistryConfigEmpty             = sdkerrors.Register(codespace, 2, "empty registry client config")
	ErrRegistryConfigInvalidNodeUrl    = sdkerrors.Register(codespace, 3, "invalid node url in registry client config")
	ErrRegistryConfigInvalidSigningKey = sdkerrors.Register(codespace, 4, "invalid signing key name in registry client config")
	ErrRegistryConfigInvalidMnemonic   = sdkerrors.Register(codespace, 5, "invalid mnemonic in registry client config")
	ErrRegistryConfigInvalidFees       = sdkerrors.Register(codespace, 6, "invalid fees in registry client config")
	ErrRegistryConfigInvalidGasLimit   = sdkerrors.Register(codespace, 7, "invalid gas limit in registry client config")
	ErrRegistryConfigInvalidCommit     = sdkerrors.Register(codespace, 8, "invalid commit timing in registry client config")
	ErrRegistryConfigInvalidLogLevel   = sdkerrors.Register(codespace, 9, "invalid log level in registry client config")
	ErrRegistryConfigInvalidMetrics    = sdkerrors.Register(codespace, 10, "invalid metrics in registry client config")
)
