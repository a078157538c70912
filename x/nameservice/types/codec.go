package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterLegacyAminoCodec(amino)
	cryptocodec.RegisterCrypto(amino)
	sdk.RegisterLegacyAminoCodec(amino)
	amino.Seal()
}

// RegisterLegacyAminoCodec registers the nameservice messages for amino JSON sign
// bytes.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgAssociateBond{}, "nameservice/MsgAssociateBond", nil)
	cdc.RegisterConcrete(&MsgDissociateBond{}, "nameservice/MsgDissociateBond", nil)
	cdc.RegisterConcrete(&MsgDissociateRecords{}, "nameservice/MsgDissociateRecords", nil)
	cdc.RegisterConcrete(&MsgDeleteNameAuthority{}, "nameservice/MsgDeleteNameAuthority", nil)
	cdc.RegisterConcrete(&MsgReAssociateRecords{}, "nameservice/MsgReAssociateRecords", nil)
	cdc.RegisterConcrete(&MsgRenewRecord{}, "nameservice/MsgRenewRecord", nil)
	cdc.RegisterConcrete(&MsgSetAuthorityBond{}, "nameservice/MsgSetAuthorityBond", nil)
	cdc.RegisterConcrete(&MsgReserveAuthority{}, "nameservice/MsgReserveAuthority", nil)
	cdc.RegisterConcrete(&MsgSetName{}, "nameservice/MsgSetName", nil)
}

func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgAssociateBond{},
		&MsgDissociateBond{},
		&MsgDissociateRecords{},
		&MsgDeleteNameAuthority{},
		&MsgReAssociateRecords{},
		&MsgRenewRecord{},
		&MsgSetAuthorityBond{},
		&MsgReserveAuthority{},
		&MsgSetName{},
	)
}
