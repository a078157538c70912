package encoding

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "encoding"

	ErrInvalidTxHash    = sdkerrors.Register(codespace, 1, "invalid tx hash")
	ErrProtoWireType    = sdkerrors.Register(codespace, 2, "unexpected protobuf wire type")
	ErrProtoMalformed   = sdkerrors.Register(codespace, 3, "malformed protobuf message")
	ErrProtoFieldDecode = sdkerrors.Register(codespace, 4, "unable to decode protobuf field")
)
