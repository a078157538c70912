package types

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	proto "github.com/cosmos/gogoproto/proto"
	"google.golang.org/protobuf/encoding/protowire"
	"gopkg.in/yaml.v2"

	"github.com/vulcanize/registry-client/pkg/encoding"
)

var (
	_ authtypes.AccountI                 = (*EthAccount)(nil)
	_ codectypes.UnpackInterfacesMessage = (*EthAccount)(nil)
)

// EthAccount is the account type used by ethermint based chains. Nodes of such
// chains return it (packed in an Any) from the auth module's account query,
// which the SDK's account retriever must decode to obtain the account number
// and sequence for signing.
//
// The base account is held in a named field rather than embedded so that
// BaseAccount's generated XXX_ marshal methods aren't promoted over ours.
type EthAccount struct {
	BaseAccount *authtypes.BaseAccount `protobuf:"bytes,1,opt,name=base_account,json=baseAccount,proto3,embedded=base_account" json:"base_account,omitempty" yaml:"base_account"`
	CodeHash    string                 `protobuf:"bytes,2,opt,name=code_hash,json=codeHash,proto3" json:"code_hash,omitempty" yaml:"code_hash"`
}

// NewEthAccount wraps baseAccount with the given code hash.
func NewEthAccount(baseAccount *authtypes.BaseAccount, codeHash string) *EthAccount {
	return &EthAccount{
		BaseAccount: baseAccount,
		CodeHash:    codeHash,
	}
}

func (acc *EthAccount) Reset() { *acc = EthAccount{} }
func (*EthAccount) ProtoMessage() {}
func (*EthAccount) XXX_MessageName() string {
	return "ethermint.types.v1.EthAccount"
}

func (acc *EthAccount) String() string {
	out, _ := yaml.Marshal(acc)
	return string(out)
}

func (acc *EthAccount) base() *authtypes.BaseAccount {
	if acc.BaseAccount == nil {
		acc.BaseAccount = new(authtypes.BaseAccount)
	}
	return acc.BaseAccount
}

func (acc *EthAccount) GetAddress() sdk.AccAddress {
	return acc.base().GetAddress()
}

func (acc *EthAccount) SetAddress(addr sdk.AccAddress) error {
	return acc.base().SetAddress(addr)
}

func (acc *EthAccount) GetPubKey() cryptotypes.PubKey {
	return acc.base().GetPubKey()
}

func (acc *EthAccount) SetPubKey(pubKey cryptotypes.PubKey) error {
	return acc.base().SetPubKey(pubKey)
}

func (acc *EthAccount) GetAccountNumber() uint64 {
	return acc.base().GetAccountNumber()
}

func (acc *EthAccount) SetAccountNumber(accNumber uint64) error {
	return acc.base().SetAccountNumber(accNumber)
}

func (acc *EthAccount) GetSequence() uint64 {
	return acc.base().GetSequence()
}

func (acc *EthAccount) SetSequence(seq uint64) error {
	return acc.base().SetSequence(seq)
}

// UnpackInterfaces unpacks the base account's public key Any.
func (acc *EthAccount) UnpackInterfaces(unpacker codectypes.AnyUnpacker) error {
	if acc.BaseAccount == nil {
		return nil
	}
	return acc.BaseAccount.UnpackInterfaces(unpacker)
}

func (acc *EthAccount) Marshal() (bz []byte, err error) {
	if acc.BaseAccount != nil {
		baseBz, err := acc.BaseAccount.Marshal()
		if err != nil {
			return nil, err
		}
		bz = encoding.AppendEmbedded(bz, 1, baseBz)
	}
	bz = encoding.AppendString(bz, 2, acc.CodeHash)
	return bz, nil
}

func (acc *EthAccount) Unmarshal(bz []byte) error {
	*acc = EthAccount{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) error {
		if num > 2 {
			return nil
		}
		if err := encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			acc.BaseAccount = new(authtypes.BaseAccount)
			if err := acc.BaseAccount.Unmarshal(value); err != nil {
				return encoding.ErrProtoFieldDecode.Wrapf("base_account: %s", err)
			}
		case 2:
			acc.CodeHash = string(value)
		}
		return nil
	})
}

func init() {
	proto.RegisterType((*EthAccount)(nil), "ethermint.types.v1.EthAccount")
}
