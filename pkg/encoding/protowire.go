package encoding

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	gogotypes "github.com/cosmos/gogoproto/types"
	"google.golang.org/protobuf/encoding/protowire"
)

// AppendString appends a length-delimited string field. Empty strings are
// omitted, matching proto3 implicit presence.
func AppendString(b []byte, num protowire.Number, value string) []byte {
	if value == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, value)
}

// AppendEmbedded appends an embedded message field. Non-nullable embedded
// messages are always emitted, even when empty.
func AppendEmbedded(b []byte, num protowire.Number, value []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, value)
}

// AppendCoin appends a non-nullable cosmos.base.v1beta1.Coin field.
func AppendCoin(b []byte, num protowire.Number, coin sdk.Coin) ([]byte, error) {
	coinBz, err := coin.Marshal()
	if err != nil {
		return nil, err
	}
	return AppendEmbedded(b, num, coinBz), nil
}

// AppendCoins appends one embedded message per coin of a repeated Coin field.
func AppendCoins(b []byte, num protowire.Number, coins sdk.Coins) ([]byte, error) {
	var err error
	for _, coin := range coins {
		if b, err = AppendCoin(b, num, coin); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// AppendDuration appends a non-nullable google.protobuf.Duration field which
// is represented in go as a time.Duration (i.e. gogoproto.stdduration).
func AppendDuration(b []byte, num protowire.Number, duration time.Duration) ([]byte, error) {
	durationBz, err := gogotypes.StdDurationMarshal(duration)
	if err != nil {
		return nil, err
	}
	return AppendEmbedded(b, num, durationBz), nil
}

// FieldFn receives the number, wire type and raw value of a single field. For
// length-delimited fields value is the field payload; for varints it holds
// the varint encoding.
type FieldFn func(num protowire.Number, typ protowire.Type, value []byte) error

// ConsumeFields iterates over the top-level fields of the message encoded in
// b, calling fieldFn for each.
func ConsumeFields(b []byte, fieldFn FieldFn) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrProtoMalformed.Wrapf("tag: %s", protowire.ParseError(n))
		}
		b = b[n:]

		var value []byte
		switch typ {
		case protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return ErrProtoMalformed.Wrapf("field %d: %s", num, protowire.ParseError(m))
			}
			value, n = v, m
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return ErrProtoMalformed.Wrapf("field %d: %s", num, protowire.ParseError(m))
			}
			value, n = b[:m], m
		}
		b = b[n:]

		if err := fieldFn(num, typ, value); err != nil {
			return err
		}
	}
	return nil
}

// ExpectBytesType returns an error unless typ is the length-delimited type.
func ExpectBytesType(num protowire.Number, typ protowire.Type) error {
	if typ != protowire.BytesType {
		return ErrProtoWireType.Wrapf("field %d: got %d, expected %d", num, typ, protowire.BytesType)
	}
	return nil
}

// DecodeCoin decodes an embedded cosmos.base.v1beta1.Coin.
func DecodeCoin(num protowire.Number, value []byte) (sdk.Coin, error) {
	var coin sdk.Coin
	if err := coin.Unmarshal(value); err != nil {
		return sdk.Coin{}, ErrProtoFieldDecode.Wrapf("field %d: %s", num, err)
	}
	return coin, nil
}

// DecodeDuration decodes an embedded google.protobuf.Duration.
func DecodeDuration(num protowire.Number, value []byte) (time.Duration, error) {
	var duration time.Duration
	if err := gogotypes.StdDurationUnmarshal(&duration, value); err != nil {
		return 0, ErrProtoFieldDecode.Wrapf("field %d: %s", num, err)
	}
	return duration, nil
}
