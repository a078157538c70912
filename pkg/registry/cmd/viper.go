package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vulcanize/registry-client/cmd/flags"
	registryconfig "github.com/vulcanize/registry-client/pkg/registry/config"
)

const (
	// envPrefix is the viper env prefix. This prefix must be used when setting
	// viper values via environment variables, with nested keys joined by
	// underscores (e.g. REGISTRY_NODE_RPC_URL, REGISTRY_SIGNER_MNEMONIC).
	envPrefix = "REGISTRY"

	configName = "registry_config"
)

// Viper keys, matching the mapstructure tags of
// registryconfig.YAMLRegistryClientConfig.
const (
	keyNodeRPCUrl         = "node.rpc_url"
	keyNodeGRPCUrl        = "node.grpc_url"
	keyNodeChainID        = "node.chain_id"
	keySignerKeyName      = "signer.key_name"
	keySignerMnemonic     = "signer.mnemonic"
	keySignerMnemonicFile = "signer.mnemonic_file"
	keyTxFees             = "tx.fees"
	keyTxGasLimit         = "tx.gas_limit"
	keyTxMemo             = "tx.memo"
	keyTxCommitTimeout    = "tx.commit_timeout"
	keyTxCommitPoll       = "tx.commit_poll_interval"
	keyMetricsEnabled     = "metrics.enabled"
	keyMetricsAddr        = "metrics.addr"
	keyLogLevel           = "log_level"
)

// configFlagDescriptors binds each overridable config value to its flag.
var configFlagDescriptors = []flags.FlagDescriptor{
	{FlagName: flags.FlagNode, ConfigKey: keyNodeRPCUrl, Description: flags.FlagNodeUsage},
	{FlagName: flags.FlagGRPCAddr, ConfigKey: keyNodeGRPCUrl, Description: flags.FlagGRPCAddrUsage},
	{FlagName: flags.FlagChainID, ConfigKey: keyNodeChainID, Description: flags.FlagChainIDUsage},
	{FlagName: flags.FlagKeyName, ConfigKey: keySignerKeyName, Description: flags.FlagKeyNameUsage},
	{FlagName: flags.FlagMnemonicFile, ConfigKey: keySignerMnemonicFile, Description: flags.FlagMnemonicFileUsage},
	{FlagName: flags.FlagFees, ConfigKey: keyTxFees, Description: flags.FlagFeesUsage},
	{FlagName: flags.FlagGasLimit, ConfigKey: keyTxGasLimit, Description: flags.FlagGasLimitUsage},
	{FlagName: flags.FlagMemo, ConfigKey: keyTxMemo, Description: flags.FlagMemoUsage},
	{FlagName: flags.FlagCommitTimeout, ConfigKey: keyTxCommitTimeout, Description: flags.FlagCommitTimeoutUsage},
	{FlagName: flags.FlagCommitPollInterval, ConfigKey: keyTxCommitPoll, Description: flags.FlagCommitPollIntervalUsage},
	{FlagName: flags.FlagMetricsEnabled, ConfigKey: keyMetricsEnabled, Description: flags.FlagMetricsEnabledUsage, IsSwitch: true},
	{FlagName: flags.FlagMetricsAddr, ConfigKey: keyMetricsAddr, Description: flags.FlagMetricsAddrUsage},
	{FlagName: flags.FlagLogLevel, ConfigKey: keyLogLevel, Description: flags.FlagLogLevelUsage},
}

// loadRegistryClientConfig reads viper config values from the following
// sources in order of precedence (highest to lowest):
// 1. Bound flags
// 2. Environment variables
// 3. The config file
// 4. Defaults
// and hydrates them into a RegistryClientConfig.
func loadRegistryClientConfig(configPath string) (*registryconfig.RegistryClientConfig, error) {
	if err := setViperConfig(configPath); err != nil {
		return nil, err
	}

	// Bind all viper values to environment variables prefixed with the envPrefix.
	// See: https://github.com/spf13/viper?tab=readme-ov-file#working-with-environment-variables
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Unknown keys, e.g. misspelled ones in the config file, are rejected.
	var yamlRegistryConfig registryconfig.YAMLRegistryClientConfig
	if err := viper.UnmarshalExact(&yamlRegistryConfig, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	)); err != nil {
		return nil, registryconfig.ErrRegistryConfigUnmarshalYAML.Wrap(err.Error())
	}

	if err := promptMnemonicIfMissing(&yamlRegistryConfig.Signer, os.Stdin, os.Stderr); err != nil {
		return nil, err
	}

	return yamlRegistryConfig.HydrateRegistryClientConfig()
}

// bindConfigFlags sets the viper defaults and binds the config flags to their
// keys. It must be called while constructing the root command so that flag
// usage shows the defaults.
func bindConfigFlags(cmd *cobra.Command) error {
	setViperDefaults()
	return flags.BindFlags(cmd, configFlagDescriptors...)
}

// setViperConfig sets the config file to read, searching the default paths
// if configPath is empty, then attempts to load it.
func setViperConfig(configPath string) error {
	viper.SetConfigType("yaml")

	if configPath != flags.DefaultConfigPath {
		viper.SetConfigFile(configPath)
	} else {
		// name of config file (without extension)
		viper.SetConfigName(configName)
		viper.AddConfigPath("$HOME/.registry")
		viper.AddConfigPath(".")
	}

	err := viper.ReadInConfig()
	switch {
	// It's okay if the config file doesn't exist.
	// Configuration MAY be done via flags and environment variables instead.
	case errors.As(err, &viper.ConfigFileNotFoundError{}):
		return nil
	default:
		return err
	}
}

// setViperDefaults registers every config key with its default. Keys must be
// known to viper for environment variables to be picked up when unmarshaling.
func setViperDefaults() {
	defaults := registryconfig.DefaultYAMLRegistryClientConfig()

	viper.SetDefault(keyNodeRPCUrl, defaults.Node.RPCUrl)
	viper.SetDefault(keyNodeGRPCUrl, defaults.Node.GRPCUrl)
	viper.SetDefault(keyNodeChainID, defaults.Node.ChainID)
	viper.SetDefault(keySignerKeyName, defaults.Signer.KeyName)
	viper.SetDefault(keySignerMnemonic, defaults.Signer.Mnemonic)
	viper.SetDefault(keySignerMnemonicFile, defaults.Signer.MnemonicFile)
	viper.SetDefault(keyTxFees, defaults.Tx.Fees)
	viper.SetDefault(keyTxGasLimit, defaults.Tx.GasLimit)
	viper.SetDefault(keyTxMemo, defaults.Tx.Memo)
	viper.SetDefault(keyTxCommitTimeout, defaults.Tx.CommitTimeout)
	viper.SetDefault(keyTxCommitPoll, defaults.Tx.CommitPollInterval)
	viper.SetDefault(keyMetricsEnabled, defaults.Metrics.Enabled)
	viper.SetDefault(keyMetricsAddr, defaults.Metrics.Addr)
	viper.SetDefault(keyLogLevel, defaults.LogLevel)
}
