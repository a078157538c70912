package testkeyring

import (
	"testing"

	cosmoskeyring "github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"

	"github.com/vulcanize/registry-client/pkg/client/keyring"
	"github.com/vulcanize/registry-client/testutil/testclient"
)

// NewTestKeyringWithKey creates an in-memory keyring holding a single key,
// derived from a freshly generated mnemonic and stored under keyName.
func NewTestKeyringWithKey(
	t *testing.T,
	keyName string,
) (cosmoskeyring.Keyring, *cosmoskeyring.Record) {
	t.Helper()

	return NewTestKeyringFromMnemonic(t, keyName, NewMnemonic(t))
}

// NewTestKeyringFromMnemonic creates an in-memory keyring holding the key
// derived from mnemonic, stored under keyName.
func NewTestKeyringFromMnemonic(
	t *testing.T,
	keyName string,
	mnemonic string,
) (cosmoskeyring.Keyring, *cosmoskeyring.Record) {
	t.Helper()

	kr, record, err := keyring.NewInMemoryKeyringFromMnemonic(
		testclient.EncodingConfig.Marshaler,
		keyName,
		mnemonic,
	)
	require.NoError(t, err)

	return kr, record
}

// NewMnemonic generates a new 24 word BIP-39 mnemonic.
func NewMnemonic(t *testing.T) string {
	t.Helper()

	entropy, err := bip39.NewEntropy(256)
	require.NoError(t, err)

	mnemonic, err := bip39.NewMnemonic(entropy)
	require.NoError(t, err)

	return mnemonic
}
