package types_test

import (
	"testing"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/vulcanize/registry-client/app"
	ethermint "github.com/vulcanize/registry-client/x/ethermint/types"
)

const testCodeHash = "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"

func TestEthAccount_UnpackFromAny(t *testing.T) {
	encCfg := app.MakeEncodingConfig()

	pubKey := secp256k1.GenPrivKey().PubKey()
	addr := sdk.AccAddress(pubKey.Address())
	baseAccount := authtypes.NewBaseAccount(addr, pubKey, 3, 7)
	expectedAccount := ethermint.NewEthAccount(baseAccount, testCodeHash)

	accountAny, err := codectypes.NewAnyWithValue(expectedAccount)
	require.NoError(t, err)
	require.Equal(t, "/ethermint.types.v1.EthAccount", accountAny.TypeUrl)

	// Drop the cached value so that unpacking has to decode the bytes, as it
	// would for a query response.
	accountAny = &codectypes.Any{TypeUrl: accountAny.TypeUrl, Value: accountAny.Value}

	var account authtypes.AccountI
	require.NoError(t, encCfg.InterfaceRegistry.UnpackAny(accountAny, &account))

	ethAccount, ok := account.(*ethermint.EthAccount)
	require.True(t, ok)
	require.Equal(t, addr, ethAccount.GetAddress())
	require.Equal(t, uint64(3), ethAccount.GetAccountNumber())
	require.Equal(t, uint64(7), ethAccount.GetSequence())
	require.Equal(t, testCodeHash, ethAccount.CodeHash)
	require.True(t, pubKey.Equals(ethAccount.GetPubKey()))
}

func TestEthAccount_NilBaseAccount(t *testing.T) {
	var account ethermint.EthAccount
	require.NoError(t, account.UnpackInterfaces(nil))
	require.Zero(t, account.GetSequence())

	require.NoError(t, account.SetSequence(2))
	require.Equal(t, uint64(2), account.GetSequence())
}
