package config

import (
	"context"
	"crypto/tls"
	"net/url"

	"cosmossdk.io/depinject"
	sdkclient "github.com/cosmos/cosmos-sdk/client"
	cosmosflags "github.com/cosmos/cosmos-sdk/client/flags"
	cosmoskeyring "github.com/cosmos/cosmos-sdk/crypto/keyring"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/vulcanize/registry-client/app"
	"github.com/vulcanize/registry-client/pkg/client"
	"github.com/vulcanize/registry-client/pkg/client/keyring"
	"github.com/vulcanize/registry-client/pkg/client/registry"
	"github.com/vulcanize/registry-client/pkg/client/tx"
	txtypes "github.com/vulcanize/registry-client/pkg/client/tx/types"
	"github.com/vulcanize/registry-client/pkg/polylog"
)

// NewSupplyLoggerFromCtx supplies a depinject config with a polylog.Logger instance
// populated from the given context.
func NewSupplyLoggerFromCtx(ctx context.Context) SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		return depinject.Configs(deps, depinject.Supply(polylog.Ctx(ctx))), nil
	}
}

// NewSupplyEncodingConfigFn supplies a depinject config with the registry
// client's app.EncodingConfig.
func NewSupplyEncodingConfigFn() SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		return depinject.Configs(deps, depinject.Supply(app.MakeEncodingConfig())), nil
	}
}

// NewSupplyKeyringFn supplies a depinject config with an in-memory keyring
// which holds the single key derived from mnemonic, stored as signingKeyName.
//
// Required dependencies:
//   - app.EncodingConfig
func NewSupplyKeyringFn(signingKeyName, mnemonic string) SupplierFn {
	return func(
		ctx context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		var encodingConfig app.EncodingConfig
		if err := depinject.Inject(deps, &encodingConfig); err != nil {
			return nil, err
		}

		kr, record, err := keyring.NewInMemoryKeyringFromMnemonic(
			encodingConfig.Marshaler,
			signingKeyName,
			mnemonic,
		)
		if err != nil {
			return nil, err
		}

		signingAddr, err := record.GetAddress()
		if err != nil {
			return nil, keyring.ErrSigningKeyAddr.Wrapf("name %q: %s", signingKeyName, err)
		}
		polylog.Ctx(ctx).Debug().
			Str("signing_address", signingAddr.String()).
			Msg("derived signing key")

		return depinject.Configs(deps, depinject.Supply(kr)), nil
	}
}

// NewSupplyTxClientContextFn supplies a depinject config with a txtypes.Context
// which broadcasts to and queries the node at nodeRPCURL. If chainID is empty,
// it is discovered from the node's status. If nodeGRPCURL is not nil, account
// queries are sent to it instead of the comet RPC endpoint.
//
// Required dependencies:
//   - app.EncodingConfig
//   - cosmoskeyring.Keyring
func NewSupplyTxClientContextFn(
	nodeRPCURL *url.URL,
	nodeGRPCURL *url.URL,
	chainID string,
) SupplierFn {
	return func(
		ctx context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		var (
			encodingConfig app.EncodingConfig
			kr             cosmoskeyring.Keyring
		)
		if err := depinject.Inject(deps, &encodingConfig, &kr); err != nil {
			return nil, err
		}

		nodeClient, err := sdkclient.NewClientFromNode(nodeRPCURL.String())
		if err != nil {
			return nil, err
		}

		if chainID == "" {
			nodeStatus, err := nodeClient.Status(ctx)
			if err != nil {
				return nil, err
			}
			chainID = nodeStatus.NodeInfo.Network

			polylog.Ctx(ctx).Info().
				Str("chain_id", chainID).
				Msg("discovered chain ID from node status")
		}

		txClientCtx := sdkclient.Context{}.
			WithCodec(encodingConfig.Marshaler).
			WithTxConfig(encodingConfig.TxConfig).
			WithInterfaceRegistry(encodingConfig.InterfaceRegistry).
			WithLegacyAmino(encodingConfig.Amino).
			WithAccountRetriever(authtypes.AccountRetriever{}).
			WithKeyring(kr).
			WithChainID(chainID).
			WithNodeURI(nodeRPCURL.String()).
			WithClient(nodeClient).
			WithBroadcastMode(cosmosflags.BroadcastSync)

		if nodeGRPCURL != nil {
			grpcConn, err := newGRPCClientConn(nodeGRPCURL)
			if err != nil {
				return nil, err
			}
			txClientCtx = txClientCtx.WithGRPCClient(grpcConn)
		}

		return depinject.Configs(deps, depinject.Supply(
			txtypes.Context(txClientCtx),
		)), nil
	}
}

// newGRPCClientConn returns a lazily connecting gRPC client connection to the
// host of nodeGRPCURL, which uses TLS if its scheme is https.
func newGRPCClientConn(nodeGRPCURL *url.URL) (*grpc.ClientConn, error) {
	transportCreds := insecure.NewCredentials()
	if nodeGRPCURL.Scheme == "https" {
		transportCreds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	return grpc.Dial(nodeGRPCURL.Host, grpc.WithTransportCredentials(transportCreds))
}

// NewSupplyTxFactoryFn supplies a depinject config with a cosmostx.Factory
// built from the supplied txtypes.Context.
//
// Required dependencies:
//   - txtypes.Context
func NewSupplyTxFactoryFn() SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		var txClientCtx txtypes.Context
		if err := depinject.Inject(deps, &txClientCtx); err != nil {
			return nil, err
		}

		txFactory := tx.NewTxFactory(sdkclient.Context(txClientCtx))
		return depinject.Configs(deps, depinject.Supply(txFactory)), nil
	}
}

// NewSupplyTxContextFn supplies a depinject config with a client.TxContext.
//
// Required dependencies:
//   - txtypes.Context
//   - cosmostx.Factory
func NewSupplyTxContextFn() SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		txContext, err := tx.NewTxContext(deps)
		if err != nil {
			return nil, err
		}

		return depinject.Configs(deps, depinject.Supply(txContext)), nil
	}
}

// NewSupplyTxClientFn supplies a depinject config with a client.TxClient which
// signs with signingKeyName and is further configured by opts.
//
// Required dependencies:
//   - client.TxContext
func NewSupplyTxClientFn(signingKeyName string, opts ...client.TxClientOption) SupplierFn {
	return func(
		ctx context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		txClientOpts := append([]client.TxClientOption{
			tx.WithSigningKeyName(signingKeyName),
		}, opts...)

		txClient, err := tx.NewTxClient(ctx, deps, txClientOpts...)
		if err != nil {
			return nil, err
		}

		return depinject.Configs(deps, depinject.Supply(txClient)), nil
	}
}

// NewSupplyRegistryClientFn supplies a depinject config with a
// client.RegistryClient which signs with signingKeyName.
//
// Required dependencies:
//   - polylog.Logger
//   - client.TxContext
//   - client.TxClient
func NewSupplyRegistryClientFn(signingKeyName string) SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		registryClient, err := registry.NewRegistryClient(
			deps,
			registry.WithSigningKeyName(signingKeyName),
		)
		if err != nil {
			return nil, err
		}

		return depinject.Configs(deps, depinject.Supply(registryClient)), nil
	}
}
