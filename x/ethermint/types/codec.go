package types

import (
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// RegisterInterfaces registers EthAccount as an implementation of the auth
// module's account interface.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*authtypes.AccountI)(nil),
		&EthAccount{},
	)
}
