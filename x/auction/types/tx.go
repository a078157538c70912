package types

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	proto "github.com/cosmos/gogoproto/proto"
	"google.golang.org/protobuf/encoding/protowire"
	"gopkg.in/yaml.v2"

	"github.com/vulcanize/registry-client/pkg/encoding"
)

// This file holds the wire representation of the auction module's tx messages.
// Field numbers and message names must stay in sync with the chain's
// vulcanize.auction.v1beta1 proto package.

type MsgCreateAuction struct {
	CommitsDuration time.Duration `protobuf:"bytes,1,opt,name=commits_duration,proto3" json:"commits_duration" yaml:"commits_duration"`
	RevealsDuration time.Duration `protobuf:"bytes,2,opt,name=reveals_duration,proto3" json:"reveals_duration" yaml:"reveals_duration"`
	CommitFee       sdk.Coin      `protobuf:"bytes,3,opt,name=commit_fee,proto3" json:"commit_fee" yaml:"commit_fee"`
	RevealFee       sdk.Coin      `protobuf:"bytes,4,opt,name=reveal_fee,proto3" json:"reveal_fee" yaml:"reveal_fee"`
	MinimumBid      sdk.Coin      `protobuf:"bytes,5,opt,name=minimum_bid,proto3" json:"minimum_bid" yaml:"minimum_bid"`
	Signer          string        `protobuf:"bytes,6,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
}

func (m *MsgCreateAuction) Reset() { *m = MsgCreateAuction{} }
func (*MsgCreateAuction) ProtoMessage() {}
func (*MsgCreateAuction) XXX_MessageName() string {
	return "vulcanize.auction.v1beta1.MsgCreateAuction"
}

func (m *MsgCreateAuction) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgCreateAuction) Marshal() (bz []byte, err error) {
	if bz, err = encoding.AppendDuration(bz, 1, m.CommitsDuration); err != nil {
		return nil, err
	}
	if bz, err = encoding.AppendDuration(bz, 2, m.RevealsDuration); err != nil {
		return nil, err
	}
	if bz, err = encoding.AppendCoin(bz, 3, m.CommitFee); err != nil {
		return nil, err
	}
	if bz, err = encoding.AppendCoin(bz, 4, m.RevealFee); err != nil {
		return nil, err
	}
	if bz, err = encoding.AppendCoin(bz, 5, m.MinimumBid); err != nil {
		return nil, err
	}
	bz = encoding.AppendString(bz, 6, m.Signer)
	return bz, nil
}

func (m *MsgCreateAuction) Unmarshal(bz []byte) error {
	*m = MsgCreateAuction{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 6 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.CommitsDuration, err = encoding.DecodeDuration(num, value)
		case 2:
			m.RevealsDuration, err = encoding.DecodeDuration(num, value)
		case 3:
			m.CommitFee, err = encoding.DecodeCoin(num, value)
		case 4:
			m.RevealFee, err = encoding.DecodeCoin(num, value)
		case 5:
			m.MinimumBid, err = encoding.DecodeCoin(num, value)
		case 6:
			m.Signer = string(value)
		}
		return err
	})
}

type MsgCommitBid struct {
	AuctionId  string `protobuf:"bytes,1,opt,name=auction_id,proto3" json:"auction_id,omitempty" yaml:"auction_id"`
	CommitHash string `protobuf:"bytes,2,opt,name=commit_hash,proto3" json:"commit_hash,omitempty" yaml:"commit_hash"`
	Signer     string `protobuf:"bytes,3,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
}

func (m *MsgCommitBid) Reset() { *m = MsgCommitBid{} }
func (*MsgCommitBid) ProtoMessage() {}
func (*MsgCommitBid) XXX_MessageName() string {
	return "vulcanize.auction.v1beta1.MsgCommitBid"
}

func (m *MsgCommitBid) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgCommitBid) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.AuctionId)
	bz = encoding.AppendString(bz, 2, m.CommitHash)
	bz = encoding.AppendString(bz, 3, m.Signer)
	return bz, nil
}

func (m *MsgCommitBid) Unmarshal(bz []byte) error {
	*m = MsgCommitBid{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 3 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.AuctionId = string(value)
		case 2:
			m.CommitHash = string(value)
		case 3:
			m.Signer = string(value)
		}
		return err
	})
}

type MsgRevealBid struct {
	AuctionId string `protobuf:"bytes,1,opt,name=auction_id,proto3" json:"auction_id,omitempty" yaml:"auction_id"`
	Reveal    string `protobuf:"bytes,2,opt,name=reveal,proto3" json:"reveal,omitempty" yaml:"reveal"`
	Signer    string `protobuf:"bytes,3,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
}

func (m *MsgRevealBid) Reset() { *m = MsgRevealBid{} }
func (*MsgRevealBid) ProtoMessage() {}
func (*MsgRevealBid) XXX_MessageName() string {
	return "vulcanize.auction.v1beta1.MsgRevealBid"
}

func (m *MsgRevealBid) String() string {
	out, _ := yaml.Marshal(m)
	return string(out)
}

func (m *MsgRevealBid) Marshal() (bz []byte, err error) {
	bz = encoding.AppendString(bz, 1, m.AuctionId)
	bz = encoding.AppendString(bz, 2, m.Reveal)
	bz = encoding.AppendString(bz, 3, m.Signer)
	return bz, nil
}

func (m *MsgRevealBid) Unmarshal(bz []byte) error {
	*m = MsgRevealBid{}
	return encoding.ConsumeFields(bz, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		if num > 3 {
			return nil
		}
		if err = encoding.ExpectBytesType(num, typ); err != nil {
			return err
		}

		switch num {
		case 1:
			m.AuctionId = string(value)
		case 2:
			m.Reveal = string(value)
		case 3:
			m.Signer = string(value)
		}
		return err
	})
}

func init() {
	proto.RegisterType((*MsgCreateAuction)(nil), "vulcanize.auction.v1beta1.MsgCreateAuction")
	proto.RegisterType((*MsgCommitBid)(nil), "vulcanize.auction.v1beta1.MsgCommitBid")
	proto.RegisterType((*MsgRevealBid)(nil), "vulcanize.auction.v1beta1.MsgRevealBid")
}
