package keyring_test

import (
	"testing"

	cosmoskeyring "github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/stretchr/testify/require"

	"github.com/vulcanize/registry-client/app"
	"github.com/vulcanize/registry-client/pkg/client/keyring"
)

// Well-known test mnemonic and the address it derives at m/44'/118'/0'/0/0.
const (
	testMnemonic     = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testMnemonicAddr = "cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4"
	testKeyName      = "registry"
)

func TestNewInMemoryKeyringFromMnemonic(t *testing.T) {
	cdc := app.MakeEncodingConfig().Marshaler

	tests := []struct {
		desc        string
		keyName     string
		mnemonic    string
		expectedErr error
	}{
		{
			desc:     "valid mnemonic",
			keyName:  testKeyName,
			mnemonic: testMnemonic,
		},
		{
			desc:     "valid mnemonic with surrounding whitespace",
			keyName:  testKeyName,
			mnemonic: "\n  " + testMnemonic + " \n",
		},
		{
			desc:        "empty key name",
			keyName:     "",
			mnemonic:    testMnemonic,
			expectedErr: keyring.ErrEmptySigningKeyName,
		},
		{
			desc:        "bad checksum",
			keyName:     testKeyName,
			mnemonic:    "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			expectedErr: keyring.ErrInvalidMnemonic,
		},
		{
			desc:        "empty mnemonic",
			keyName:     testKeyName,
			mnemonic:    "",
			expectedErr: keyring.ErrInvalidMnemonic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			kr, record, err := keyring.NewInMemoryKeyringFromMnemonic(cdc, tt.keyName, tt.mnemonic)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				require.Nil(t, kr)
				return
			}
			require.NoError(t, err)

			addr, err := record.GetAddress()
			require.NoError(t, err)
			require.Equal(t, testMnemonicAddr, addr.String())

			addrFromName, err := keyring.KeyNameToAddr(tt.keyName, kr)
			require.NoError(t, err)
			require.Equal(t, addr, addrFromName)
		})
	}
}

func TestKeyNameToAddr_Errors(t *testing.T) {
	kr := cosmoskeyring.NewInMemory(app.MakeEncodingConfig().Marshaler)

	_, err := keyring.KeyNameToAddr("", kr)
	require.ErrorIs(t, err, keyring.ErrEmptySigningKeyName)

	_, err = keyring.KeyNameToAddr("nonexistent", kr)
	require.ErrorIs(t, err, keyring.ErrNoSuchSigningKey)
}
