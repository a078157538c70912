package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const TypeMsgRenewRecord = "renew_record"

var _ sdk.Msg = (*MsgRenewRecord)(nil)

func NewMsgRenewRecord(recordId, signer string) *MsgRenewRecord {
	return &MsgRenewRecord{
		RecordId: recordId,
		Signer:   signer,
	}
}

func (msg *MsgRenewRecord) Route() string {
	return RouterKey
}

func (msg *MsgRenewRecord) Type() string {
	return TypeMsgRenewRecord
}

func (msg *MsgRenewRecord) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (msg *MsgRenewRecord) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgRenewRecord) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrNameserviceInvalidSigner.Wrapf("%s; (%v)", msg.Signer, err)
	}
	if msg.RecordId == "" {
		return ErrNameserviceInvalidRecordID.Wrap("empty record id")
	}
	return nil
}
