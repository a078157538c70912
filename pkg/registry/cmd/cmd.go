package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vulcanize/registry-client/app"
	"github.com/vulcanize/registry-client/cmd/flags"
	"github.com/vulcanize/registry-client/cmd/signals"
	"github.com/vulcanize/registry-client/pkg/client"
	"github.com/vulcanize/registry-client/pkg/polylog/polyzero"
	registryconfig "github.com/vulcanize/registry-client/pkg/registry/config"
)

var (
	// flagConfigPath is the path to the registry client config file, sourced
	// from the `--config` flag.
	flagConfigPath string

	// registryConfig is loaded in preRunSetup from the config file, environment
	// and flags.
	registryConfig *registryconfig.RegistryClientConfig

	// cancelCmdCtx cancels the context of the running command once it returns.
	cancelCmdCtx context.CancelFunc

	// newRegistryClientFn constructs the registry client used by tx commands.
	newRegistryClientFn = newRegistryClient
)

// RegistryClientCmd returns the root Cobra command of the registry client.
func RegistryClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   app.Name,
		Short: "Submit auction, bond and nameservice txs to a registry chain",
		Long: `Submit auction, bond and nameservice txs to a registry chain.

Every tx is signed by a key derived from the configured mnemonic, pays a
fixed fee with a fixed gas limit, and is broadcast to the configured node.
Each command waits until its tx is committed, fails or times out.

Configuration is read from a YAML file (--config), REGISTRY_ prefixed
environment variables (e.g. REGISTRY_SIGNER_MNEMONIC) and flags, in
increasing order of precedence.`,
		SilenceUsage:      true,
		PersistentPreRunE: preRunSetup,
		PersistentPostRun: postRunCleanup,
	}

	cmd.PersistentFlags().StringVar(&flagConfigPath, flags.FlagConfig, flags.DefaultConfigPath, flags.FlagConfigUsage)
	if err := bindConfigFlags(cmd); err != nil {
		panic(err)
	}

	cmd.AddCommand(AddressCmd())
	cmd.AddCommand(AuctionCmd())
	cmd.AddCommand(BondCmd())
	cmd.AddCommand(NameserviceCmd())

	return cmd
}

// preRunSetup loads the config, associates a logger with the command context,
// cancels that context on interrupt and starts serving metrics if enabled.
func preRunSetup(cmd *cobra.Command, _ []string) error {
	loadedConfig, err := loadRegistryClientConfig(flagConfigPath)
	if err != nil {
		return err
	}
	registryConfig = loadedConfig

	logger := polyzero.NewLogger(
		polyzero.WithLevel(polyzero.ParseLevel(registryConfig.LogLevel)),
		polyzero.WithOutput(cmd.ErrOrStderr()),
		polyzero.WithTimestamp(),
	)

	ctx, cancelCtx := context.WithCancel(logger.WithContext(cmd.Context()))
	cancelCmdCtx = cancelCtx
	cmd.SetContext(ctx)

	// Handle interrupt and kill signals asynchronously.
	signals.GoOnExitSignal(logger, cancelCtx)

	if registryConfig.Metrics.Enabled {
		if err := serveMetrics(ctx, registryConfig.Metrics.Addr); err != nil {
			return fmt.Errorf("failed to start metrics endpoint: %w", err)
		}
	}

	return nil
}

func postRunCleanup(_ *cobra.Command, _ []string) {
	if cancelCmdCtx != nil {
		cancelCmdCtx()
	}
}

// addSignerFlag registers the --signer flag, inherited by every tx command
// under cmd.
func addSignerFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(flags.FlagSigner, "", flags.FlagSignerUsage)
}

// runTx constructs the registry client and calls sendTx with the signer given
// by --signer, which defaults to the client's signing address.
func runTx(
	cmd *cobra.Command,
	sendTx func(ctx context.Context, registryClient client.RegistryClient, signer string) error,
) error {
	if registryConfig == nil {
		return ErrRegistryCmdNoConfig
	}

	ctx := cmd.Context()
	registryClient, err := newRegistryClientFn(ctx, cmd, registryConfig)
	if err != nil {
		return err
	}

	signer, err := cmd.Flags().GetString(flags.FlagSigner)
	if err != nil {
		return err
	}
	if signer == "" {
		signer = registryClient.SigningAddress().String()
	}

	return sendTx(ctx, registryClient, signer)
}
