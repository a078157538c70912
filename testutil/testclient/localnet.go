package testclient

import (
	"fmt"
	"os"
	"testing"

	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/vulcanize/registry-client/app"
)

var (
	// CometLocalTCPURL provides a default URL pointing to the localnet TCP endpoint.
	CometLocalTCPURL = "tcp://localhost:26657"

	// LocalnetChainID is the chain ID of the localnet registry chain.
	LocalnetChainID = "laconic_9000-1"

	// EncodingConfig encapsulates encoding configurations for the registry client.
	EncodingConfig = app.MakeEncodingConfig()
)

// init allows the localnet endpoint to be overridden by the environment.
func init() {
	// If REGISTRY_RPC_ENDPOINT environment variable is set, use it to override the default localnet endpoint.
	if endpoint := os.Getenv("REGISTRY_RPC_ENDPOINT"); endpoint != "" {
		CometLocalTCPURL = fmt.Sprintf("tcp://%s", endpoint)
	}
}

// NewLocalnetClientCtx creates a client context specifically tailored for localnet
// environments. The returned client context is initialized with encoding
// configurations, the localnet chain ID, a default account retriever, and an
// RPC client for CometLocalTCPURL. Constructing it does not dial the node.
func NewLocalnetClientCtx(t *testing.T) cosmosclient.Context {
	t.Helper()

	nodeClient, err := cosmosclient.NewClientFromNode(CometLocalTCPURL)
	require.NoError(t, err)

	return cosmosclient.Context{}.
		WithCodec(EncodingConfig.Marshaler).
		WithTxConfig(EncodingConfig.TxConfig).
		WithInterfaceRegistry(EncodingConfig.InterfaceRegistry).
		WithLegacyAmino(EncodingConfig.Amino).
		WithAccountRetriever(authtypes.AccountRetriever{}).
		WithChainID(LocalnetChainID).
		WithNodeURI(CometLocalTCPURL).
		WithClient(nodeClient).
		WithBroadcastMode(flags.BroadcastSync)
}
