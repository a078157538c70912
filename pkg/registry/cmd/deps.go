package cmd

import (
	"context"

	"cosmossdk.io/depinject"
	"github.com/spf13/cobra"

	"github.com/vulcanize/registry-client/pkg/client"
	"github.com/vulcanize/registry-client/pkg/deps/config"
	registryconfig "github.com/vulcanize/registry-client/pkg/registry/config"
)

// newRegistryClient builds the registry client's dependency tree from the
// leaves up, incrementally supplying each component to an accumulating
// depinject.Config:
// Logger, EncodingConfig, Keyring, cosmosclient.Context, TxFactory,
// TxContext, TxClient, RegistryClient.
func newRegistryClient(
	ctx context.Context,
	cmd *cobra.Command,
	registryConfig *registryconfig.RegistryClientConfig,
) (client.RegistryClient, error) {
	supplierFuncs := []config.SupplierFn{
		config.NewSupplyLoggerFromCtx(ctx),
		config.NewSupplyEncodingConfigFn(),
		config.NewSupplyKeyringFn(registryConfig.SigningKeyName, registryConfig.Mnemonic),
		config.NewSupplyTxClientContextFn(
			registryConfig.NodeRPCUrl,
			registryConfig.NodeGRPCUrl,
			registryConfig.ChainID,
		),
		config.NewSupplyTxFactoryFn(),
		config.NewSupplyTxContextFn(),
		config.NewSupplyTxClientFn(
			registryConfig.SigningKeyName,
			config.GetTxClientOptions(registryConfig)...,
		),
		config.NewSupplyRegistryClientFn(registryConfig.SigningKeyName),
	}

	deps, err := config.SupplyConfig(ctx, cmd, supplierFuncs)
	if err != nil {
		return nil, err
	}

	var registryClient client.RegistryClient
	if err := depinject.Inject(deps, &registryClient); err != nil {
		return nil, err
	}

	return registryClient, nil
}
