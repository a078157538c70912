package app

import (
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/std"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	auctiontypes "github.com/vulcanize/registry-client/x/auction/types"
	bondtypes "github.com/vulcanize/registry-client/x/bond/types"
	ethermint "github.com/vulcanize/registry-client/x/ethermint/types"
	nameservicetypes "github.com/vulcanize/registry-client/x/nameservice/types"
)

// EncodingConfig specifies the concrete encoding types to use for the registry
// client. This is provided for compatibility between protobuf and amino
// implementations.
type EncodingConfig struct {
	InterfaceRegistry codectypes.InterfaceRegistry
	Marshaler         codec.Codec
	TxConfig          client.TxConfig
	Amino             *codec.LegacyAmino
}

// MakeEncodingConfig creates an EncodingConfig whose interface registry knows
// the SDK's standard types, the auth and bank module types, the auction, bond
// and nameservice messages, and ethermint's account type.
func MakeEncodingConfig() EncodingConfig {
	amino := codec.NewLegacyAmino()
	interfaceRegistry := codectypes.NewInterfaceRegistry()
	marshaler := codec.NewProtoCodec(interfaceRegistry)
	txCfg := authtx.NewTxConfig(marshaler, authtx.DefaultSignModes)

	std.RegisterLegacyAminoCodec(amino)
	std.RegisterInterfaces(interfaceRegistry)

	authtypes.RegisterLegacyAminoCodec(amino)
	authtypes.RegisterInterfaces(interfaceRegistry)
	banktypes.RegisterLegacyAminoCodec(amino)
	banktypes.RegisterInterfaces(interfaceRegistry)

	auctiontypes.RegisterLegacyAminoCodec(amino)
	auctiontypes.RegisterInterfaces(interfaceRegistry)
	bondtypes.RegisterLegacyAminoCodec(amino)
	bondtypes.RegisterInterfaces(interfaceRegistry)
	nameservicetypes.RegisterLegacyAminoCodec(amino)
	nameservicetypes.RegisterInterfaces(interfaceRegistry)

	ethermint.RegisterInterfaces(interfaceRegistry)

	return EncodingConfig{
		InterfaceRegistry: interfaceRegistry,
		Marshaler:         marshaler,
		TxConfig:          txCfg,
		Amino:             amino,
	}
}
