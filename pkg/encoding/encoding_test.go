package encoding_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/vulcanize/registry-client/pkg/encoding"
)

func TestNormalizeTxHashHex(t *testing.T) {
	require.Equal(t, "abcdef0123", encoding.NormalizeTxHashHex("ABCdef0123"))

	txHash, err := encoding.TxHashHexToBytes("00FF")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xff}, txHash)

	_, err = encoding.TxHashHexToBytes("not hex")
	require.ErrorIs(t, err, encoding.ErrInvalidTxHash)
}

func TestConsumeFields(t *testing.T) {
	coin := sdk.NewInt64Coin("aphoton", 10)

	var (
		b   []byte
		err error
	)
	b = encoding.AppendString(b, 1, "bond1")
	b = encoding.AppendString(b, 2, "")
	b, err = encoding.AppendCoin(b, 3, coin)
	require.NoError(t, err)
	b, err = encoding.AppendDuration(b, 4, 90*time.Second)
	require.NoError(t, err)
	b = protowire.AppendTag(b, 5, protowire.VarintType)
	b = protowire.AppendVarint(b, 42)

	var (
		seen     []protowire.Number
		str      string
		gotCoin  sdk.Coin
		duration time.Duration
	)
	err = encoding.ConsumeFields(b, func(num protowire.Number, typ protowire.Type, value []byte) (err error) {
		seen = append(seen, num)
		switch num {
		case 1:
			str = string(value)
		case 3:
			gotCoin, err = encoding.DecodeCoin(num, value)
		case 4:
			duration, err = encoding.DecodeDuration(num, value)
		case 5:
			require.Equal(t, protowire.VarintType, typ)
		}
		return err
	})
	require.NoError(t, err)

	// The empty string field is omitted entirely.
	require.Equal(t, []protowire.Number{1, 3, 4, 5}, seen)
	require.Equal(t, "bond1", str)
	require.Equal(t, coin, gotCoin)
	require.Equal(t, 90*time.Second, duration)
}

func TestConsumeFields_Malformed(t *testing.T) {
	// Tag for a length-delimited field 1 claiming 10 bytes with only 2 present.
	b := []byte{0x0a, 0x0a, 0x01, 0x02}
	err := encoding.ConsumeFields(b, func(protowire.Number, protowire.Type, []byte) error {
		return nil
	})
	require.ErrorIs(t, err, encoding.ErrProtoMalformed)
}

func TestExpectBytesType(t *testing.T) {
	require.NoError(t, encoding.ExpectBytesType(1, protowire.BytesType))
	require.ErrorIs(t, encoding.ExpectBytesType(1, protowire.VarintType), encoding.ErrProtoWireType)
}
