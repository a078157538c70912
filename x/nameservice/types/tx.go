package types

import (
	proto "github.com/cosmos/gogoproto/proto"
	"google.golang.org/protobuf/encoding/protowire"
	"gopkg.in/yaml.v2"

	"github.com/vulcanize/registry-client/pkg/encoding"
)

// This file holds the wire representation of the nameservice module's tx messages.
// Field numbers and message names must stay in sync with the chain's
// vulcanize.nameservice.v1beta1 proto package.

type MsgAssociateBond struct {
	RecordId string `protobuf:"bytes,1,opt,name=record_id,proto3" json:"record_id,omitempty" yaml:"record_id"`
	BondId   string `protobuf:"bytes,2,opt,name=bond_id,proto3" json:"bond_id,omitempty" yaml:"bond_id"`
	Signer   string `protobuf:"bytes,3,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
}

func (m *MsgAssociateBond) Reset() { *m = MsgAssociateBond{} }
func (*MsgAssociateBond) ProtoMessage() {}
func (*MsgAssociateBond) XXX_MessageName() string {
	return "vulcanize.nameservice.v1beta1.MsgAssociateBond"
}

func (m *MsgAssociateBond) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgAssociateBond) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.RecordId)
	bz = encoding.AppendString(bz, 2, m.BondId)
	bz = encoding.AppendString(bz, 3, m.Signer)
	return bz, nil
}

func (m *MsgAssociateBond) Unmarshal(bz []byte) error {
	*m = MsgAssociateBond{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 3 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.RecordId = string(value)
		case 2:
			m.BondId = string(value)
		case 3:
			m.Signer = string(value)
		}
		return err
	})
}

type MsgDissociateBond struct {
	RecordId string `protobuf:"bytes,1,opt,name=record_id,proto3" json:"record_id,omitempty" yaml:"record_id"`
	Signer   string `protobuf:"bytes,2,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
}

func (m *MsgDissociateBond) Reset() { *m = MsgDissociateBond{} }
func (*MsgDissociateBond) ProtoMessage() {}
func (*MsgDissociateBond) XXX_MessageName() string {
	return "vulcanize.nameservice.v1beta1.MsgDissociateBond"
}

func (m *MsgDissociateBond) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgDissociateBond) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.RecordId)
	bz = encoding.AppendString(bz, 2, m.Signer)
	return bz, nil
}

func (m *MsgDissociateBond) Unmarshal(bz []byte) error {
	*m = MsgDissociateBond{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 2 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.RecordId = string(value)
		case 2:
			m.Signer = string(value)
		}
		return err
	})
}

type MsgDissociateRecords struct {
	BondId string `protobuf:"bytes,1,opt,name=bond_id,proto3" json:"bond_id,omitempty" yaml:"bond_id"`
	Signer string `protobuf:"bytes,2,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
}

func (m *MsgDissociateRecords) Reset() { *m = MsgDissociateRecords{} }
func (*MsgDissociateRecords) ProtoMessage() {}
func (*MsgDissociateRecords) XXX_MessageName() string {
	return "vulcanize.nameservice.v1beta1.MsgDissociateRecords"
}

func (m *MsgDissociateRecords) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgDissociateRecords) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.BondId)
	bz = encoding.AppendString(bz, 2, m.Signer)
	return bz, nil
}

func (m *MsgDissociateRecords) Unmarshal(bz []byte) error {
	*m = MsgDissociateRecords{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 2 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.BondId = string(value)
		case 2:
			m.Signer = string(value)
		}
		return err
	})
}

type MsgDeleteNameAuthority struct {
	Name   string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty" yaml:"name"`
	Signer string `protobuf:"bytes,2,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
}

func (m *MsgDeleteNameAuthority) Reset() { *m = MsgDeleteNameAuthority{} }
func (*MsgDeleteNameAuthority) ProtoMessage() {}
func (*MsgDeleteNameAuthority) XXX_MessageName() string {
	return "vulcanize.nameservice.v1beta1.MsgDeleteNameAuthority"
}

func (m *MsgDeleteNameAuthority) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgDeleteNameAuthority) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.Name)
	bz = encoding.AppendString(bz, 2, m.Signer)
	return bz, nil
}

func (m *MsgDeleteNameAuthority) Unmarshal(bz []byte) error {
	*m = MsgDeleteNameAuthority{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 2 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.Name = string(value)
		case 2:
			m.Signer = string(value)
		}
		return err
	})
}

type MsgReAssociateRecords struct {
	NewBondId string `protobuf:"bytes,1,opt,name=new_bond_id,proto3" json:"new_bond_id,omitempty" yaml:"new_bond_id"`
	OldBondId string `protobuf:"bytes,2,opt,name=old_bond_id,proto3" json:"old_bond_id,omitempty" yaml:"old_bond_id"`
	Signer    string `protobuf:"bytes,3,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
}

func (m *MsgReAssociateRecords) Reset() { *m = MsgReAssociateRecords{} }
func (*MsgReAssociateRecords) ProtoMessage() {}
func (*MsgReAssociateRecords) XXX_MessageName() string {
	return "vulcanize.nameservice.v1beta1.MsgReAssociateRecords"
}

func (m *MsgReAssociateRecords) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgReAssociateRecords) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.NewBondId)
	bz = encoding.AppendString(bz, 2, m.OldBondId)
	bz = encoding.AppendString(bz, 3, m.Signer)
	return bz, nil
}

func (m *MsgReAssociateRecords) Unmarshal(bz []byte) error {
	*m = MsgReAssociateRecords{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 3 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.NewBondId = string(value)
		case 2:
			m.OldBondId = string(value)
		case 3:
			m.Signer = string(value)
		}
		return err
	})
}

type MsgRenewRecord struct {
	RecordId string `protobuf:"bytes,1,opt,name=record_id,proto3" json:"record_id,omitempty" yaml:"record_id"`
	Signer   string `protobuf:"bytes,2,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
}

func (m *MsgRenewRecord) Reset() { *m = MsgRenewRecord{} }
func (*MsgRenewRecord) ProtoMessage() {}
func (*MsgRenewRecord) XXX_MessageName() string {
	return "vulcanize.nameservice.v1beta1.MsgRenewRecord"
}

func (m *MsgRenewRecord) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgRenewRecord) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.RecordId)
	bz = encoding.AppendString(bz, 2, m.Signer)
	return bz, nil
}

func (m *MsgRenewRecord) Unmarshal(bz []byte) error {
	*m = MsgRenewRecord{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 2 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.RecordId = string(value)
		case 2:
			m.Signer = string(value)
		}
		return err
	})
}

type MsgSetAuthorityBond struct {
	Name   string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty" yaml:"name"`
	BondId string `protobuf:"bytes,2,opt,name=bond_id,proto3" json:"bond_id,omitempty" yaml:"bond_id"`
	Signer string `protobuf:"bytes,3,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
}

func (m *MsgSetAuthorityBond) Reset() { *m = MsgSetAuthorityBond{} }
func (*MsgSetAuthorityBond) ProtoMessage() {}
func (*MsgSetAuthorityBond) XXX_MessageName() string {
	return "vulcanize.nameservice.v1beta1.MsgSetAuthorityBond"
}

func (m *MsgSetAuthorityBond) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgSetAuthorityBond) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.Name)
	bz = encoding.AppendString(bz, 2, m.BondId)
	bz = encoding.AppendString(bz, 3, m.Signer)
	return bz, nil
}

func (m *MsgSetAuthorityBond) Unmarshal(bz []byte) error {
	*m = MsgSetAuthorityBond{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 3 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.Name = string(value)
		case 2:
			m.BondId = string(value)
		case 3:
			m.Signer = string(value)
		}
		return err
	})
}

type MsgReserveAuthority struct {
	Name   string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty" yaml:"name"`
	Signer string `protobuf:"bytes,2,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
	Owner  string `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty" yaml:"owner"`
}

func (m *MsgReserveAuthority) Reset() { *m = MsgReserveAuthority{} }
func (*MsgReserveAuthority) ProtoMessage() {}
func (*MsgReserveAuthority) XXX_MessageName() string {
	return "vulcanize.nameservice.v1beta1.MsgReserveAuthority"
}

func (m *MsgReserveAuthority) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgReserveAuthority) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.Name)
	bz = encoding.AppendString(bz, 2, m.Signer)
	bz = encoding.AppendString(bz, 3, m.Owner)
	return bz, nil
}

func (m *MsgReserveAuthority) Unmarshal(bz []byte) error {
	*m = MsgReserveAuthority{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 3 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.Name = string(value)
		case 2:
			m.Signer = string(value)
		case 3:
			m.Owner = string(value)
		}
		return err
	})
}

type MsgSetName struct {
	Crn    string `protobuf:"bytes,1,opt,name=crn,proto3" json:"crn,omitempty" yaml:"crn"`
	Cid    string `protobuf:"bytes,2,opt,name=cid,proto3" json:"cid,omitempty" yaml:"cid"`
	Signer string `protobuf:"bytes,3,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
}

func (m *MsgSetName) Reset() { *m = MsgSetName{} }
func (*MsgSetName) ProtoMessage() {}
func (*MsgSetName) XXX_MessageName() string {
	return "vulcanize.nameservice.v1beta1.MsgSetName"
}

func (m *MsgSetName) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgSetName) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.Crn)
	bz = encoding.AppendString(bz, 2, m.Cid)
	bz = encoding.AppendString(bz, 3, m.Signer)
	return bz, nil
}

func (m *MsgSetName) Unmarshal(bz []byte) error {
	*m = MsgSetName{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 3 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.Crn = string(value)
		case 2:
			m.Cid = string(value)
		case 3:
			m.Signer = string(value)
		}
		return err
	})
}

func init() {
	proto.RegisterType((*MsgAssociateBond)(nil), "vulcanize.nameservice.v1beta1.MsgAssociateBond")
	proto.RegisterType((*MsgDissociateBond)(nil), "vulcanize.nameservice.v1beta1.MsgDissociateBond")
	proto.RegisterType((*MsgDissociateRecords)(nil), "vulcanize.nameservice.v1beta1.MsgDissociateRecords")
	proto.RegisterType((*MsgDeleteNameAuthority)(nil), "vulcanize.nameservice.v1beta1.MsgDeleteNameAuthority")
	proto.RegisterType((*MsgReAssociateRecords)(nil), "vulcanize.nameservice.v1beta1.MsgReAssociateRecords")
	proto.RegisterType((*MsgRenewRecord)(nil), "vulcanize.nameservice.v1beta1.MsgRenewRecord")
	proto.RegisterType((*MsgSetAuthorityBond)(nil), "vulcanize.nameservice.v1beta1.MsgSetAuthorityBond")
	proto.RegisterType((*MsgReserveAuthority)(nil), "vulcanize.nameservice.v1beta1.MsgReserveAuthority")
	proto.RegisterType((*MsgSetName)(nil), "vulcanize.nameservice.v1beta1.MsgSetName")
}
