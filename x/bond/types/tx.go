package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	proto "github.com/cosmos/gogoproto/proto"
	"google.golang.org/protobuf/encoding/protowire"
	"gopkg.in/yaml.v2"

	"github.com/vulcanize/registry-client/pkg/encoding"
)

// This file holds the wire representation of the bond module's tx messages.
// Field numbers and message names must stay in sync with the chain's
// vulcanize.bond.v1beta1 proto package.

type MsgCreateBond struct {
	Signer string    `protobuf:"bytes,1,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
	Coins  sdk.Coins `protobuf:"bytes,2,rep,name=coins,proto3" json:"coins" yaml:"coins"`
}

func (m *MsgCreateBond) Reset() { *m = MsgCreateBond{} }
func (*MsgCreateBond) ProtoMessage() {}
func (*MsgCreateBond) XXX_MessageName() string {
	return "vulcanize.bond.v1beta1.MsgCreateBond"
}

func (m *MsgCreateBond) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgCreateBond) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.Signer)
	if bz, err = encoding.AppendCoins(bz, 2, m.Coins); err != nil {
		return nil, err
	}
	return bz, nil
}

func (m *MsgCreateBond) Unmarshal(bz []byte) error {
	*m = MsgCreateBond{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 2 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.Signer = string(value)
		case 2:
			var coin sdk.Coin
			if coin, err = encoding.DecodeCoin(num, value); err == nil {
				m.Coins = append(m.Coins, coin)
			}
		}
		return err
	})
}

type MsgRefillBond struct {
	Id     string    `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty" yaml:"id"`
	Signer string    `protobuf:"bytes,2,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
	Coins  sdk.Coins `protobuf:"bytes,3,rep,name=coins,proto3" json:"coins" yaml:"coins"`
}

func (m *MsgRefillBond) Reset() { *m = MsgRefillBond{} }
func (*MsgRefillBond) ProtoMessage() {}
func (*MsgRefillBond) XXX_MessageName() string {
	return "vulcanize.bond.v1beta1.MsgRefillBond"
}

func (m *MsgRefillBond) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgRefillBond) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.Id)
	bz = encoding.AppendString(bz, 2, m.Signer)
	if bz, err = encoding.AppendCoins(bz, 3, m.Coins); err != nil {
		return nil, err
	}
	return bz, nil
}

func (m *MsgRefillBond) Unmarshal(bz []byte) error {
	*m = MsgRefillBond{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 3 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.Id = string(value)
		case 2:
			m.Signer = string(value)
		case 3:
			var coin sdk.Coin
			if coin, err = encoding.DecodeCoin(num, value); err == nil {
				m.Coins = append(m.Coins, coin)
			}
		}
		return err
	})
}

type MsgWithdrawBond struct {
	Id     string    `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty" yaml:"id"`
	Signer string    `protobuf:"bytes,2,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
	Coins  sdk.Coins `protobuf:"bytes,3,rep,name=coins,proto3" json:"coins" yaml:"coins"`
}

func (m *MsgWithdrawBond) Reset() { *m = MsgWithdrawBond{} }
func (*MsgWithdrawBond) ProtoMessage() {}
func (*MsgWithdrawBond) XXX_MessageName() string {
	return "vulcanize.bond.v1beta1.MsgWithdrawBond"
}

func (m *MsgWithdrawBond) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgWithdrawBond) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.Id)
	bz = encoding.AppendString(bz, 2, m.Signer)
	if bz, err = encoding.AppendCoins(bz, 3, m.Coins); err != nil {
		return nil, err
	}
	return bz, nil
}

func (m *MsgWithdrawBond) Unmarshal(bz []byte) error {
	*m = MsgWithdrawBond{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 3 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.Id = string(value)
		case 2:
			m.Signer = string(value)
		case 3:
			var coin sdk.Coin
			if coin, err = encoding.DecodeCoin(num, value); err == nil {
				m.Coins = append(m.Coins, coin)
			}
		}
		return err
	})
}

type MsgCancelBond struct {
	Id     string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty" yaml:"id"`
	Signer string `protobuf:"bytes,2,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
}

func (m *MsgCancelBond) Reset() { *m = MsgCancelBond{} }
func (*MsgCancelBond) ProtoMessage() {}
func (*MsgCancelBond) XXX_MessageName() string {
	return "vulcanize.bond.v1beta1.MsgCancelBond"
}

func (m *MsgCancelBond) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgCancelBond) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.Id)
	bz = encoding.AppendString(bz, 2, m.Signer)
	return bz, nil
}

func (m *MsgCancelBond) Unmarshal(bz []byte) error {
	*m = MsgCancelBond{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 2 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.Id = string(value)
		case 2:
			m.Signer = string(value)
		}
		return err
	})
}

func init() {
	proto.RegisterType((*MsgCreateBond)(nil), "vulcanize.bond.v1beta1.MsgCreateBond")
	proto.RegisterType((*MsgRefillBond)(nil), "vulcanize.bond.v1beta1.MsgRefillBond")
	proto.RegisterType((*MsgWithdrawBond)(nil), "vulcanize.bond.v1beta1.MsgWithdrawBond")
	proto.RegisterType((*MsgCancelBond)(nil), "vulcanize.bond.v1beta1.MsgCancelBond")
}
