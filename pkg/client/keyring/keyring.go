package keyring

import (
	"strings"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	cosmoskeyring "github.com/cosmos/cosmos-sdk/crypto/keyring"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/tyler-smith/go-bip39"
)

// DefaultHDPath is the BIP-44 derivation path of the first account of the
// cosmos coin type (i.e. m/44'/118'/0'/0/0).
var DefaultHDPath = hd.CreateHDPath(cosmostypes.CoinType, 0, 0).String()

// NewInMemoryKeyringFromMnemonic derives a secp256k1 key from mnemonic along
// DefaultHDPath and stores it under keyName in a new in-memory keyring. No
// key material is ever written to disk.
func NewInMemoryKeyringFromMnemonic(
	cdc codec.Codec,
	keyName string,
	mnemonic string,
) (cosmoskeyring.Keyring, *cosmoskeyring.Record, error) {
	if keyName == "" {
		return nil, nil, ErrEmptySigningKeyName
	}

	// Tolerate the whitespace which results from reading a mnemonic file.
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, nil, ErrInvalidMnemonic.Wrapf("for key %q", keyName)
	}

	kr := cosmoskeyring.NewInMemory(cdc)
	record, err := kr.NewAccount(
		keyName,
		mnemonic,
		cosmoskeyring.DefaultBIP39Passphrase,
		DefaultHDPath,
		hd.Secp256k1,
	)
	if err != nil {
		return nil, nil, ErrInvalidMnemonic.Wrapf("for key %q: %s", keyName, err)
	}

	return kr, record, nil
}

// KeyNameToAddr attempts to retrieve the key with the given name from the
// given keyring and compute its address.
func KeyNameToAddr(
	keyName string,
	keyring cosmoskeyring.Keyring,
) (cosmostypes.AccAddress, error) {
	if keyName == "" {
		return nil, ErrEmptySigningKeyName
	}

	keyRecord, err := keyring.Key(keyName)
	if err != nil {
		return nil, ErrNoSuchSigningKey.Wrapf("name %q: %s", keyName, err)
	}
	signingAddr, err := keyRecord.GetAddress()
	if err != nil {
		return nil, ErrSigningKeyAddr.Wrapf("name %q: %s", keyName, err)
	}

	return signingAddr, nil
}
