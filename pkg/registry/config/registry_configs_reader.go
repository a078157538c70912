package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"slices"
	"strings"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	yaml "gopkg.in/yaml.v2"

	"github.com/vulcanize/registry-client/app"
	"github.com/vulcanize/registry-client/pkg/client/tx"
)

const (
	DefaultNodeRPCUrl     = "tcp://127.0.0.1:26657"
	DefaultSigningKeyName = "registry"
	DefaultLogLevel       = "info"
	DefaultMetricsAddr    = "localhost:9090"
)

var (
	// DefaultFees is the fixed fee paid for every registry tx.
	DefaultFees = fmt.Sprintf("%d%s", app.DefaultFeeAmount, app.DenomPhoton)

	supportedNodeSchemes = []string{"tcp", "http", "https"}
	supportedLogLevels   = []string{"debug", "info", "warn", "error"}
)

// DefaultYAMLRegistryClientConfig returns the config which is used for every
// value a config file, flag or environment variable leaves unset.
func DefaultYAMLRegistryClientConfig() YAMLRegistryClientConfig {
	return YAMLRegistryClientConfig{
		Node: YAMLRegistryNodeConfig{
			RPCUrl: DefaultNodeRPCUrl,
		},
		Signer: YAMLRegistrySignerConfig{
			KeyName: DefaultSigningKeyName,
		},
		Tx: YAMLRegistryTxConfig{
			Fees:               DefaultFees,
			GasLimit:           app.DefaultGasLimit,
			CommitTimeout:      tx.DefaultCommitTimeout,
			CommitPollInterval: tx.DefaultCommitPollInterval,
		},
		Metrics: YAMLRegistryMetricsConfig{
			Addr: DefaultMetricsAddr,
		},
		LogLevel: DefaultLogLevel,
	}
}

// ParseRegistryClientConfig parses the registry client config file into a
// RegistryClientConfig.
func ParseRegistryClientConfig(configContent []byte) (*RegistryClientConfig, error) {
	var yamlRegistryConfig YAMLRegistryClientConfig

	if len(configContent) == 0 {
		return nil, ErrRegistryConfigEmpty
	}

	if err := yaml.Unmarshal(configContent, &yamlRegistryConfig); err != nil {
		return nil, ErrRegistryConfigUnmarshalYAML.Wrap(err.Error())
	}

	return yamlRegistryConfig.HydrateRegistryClientConfig()
}

// HydrateRegistryClientConfig fills every zero value with its default,
// validates the result and converts it into a RegistryClientConfig. If a
// mnemonic file is configured, it is read.
func (yamlRegistryConfig YAMLRegistryClientConfig) HydrateRegistryClientConfig() (*RegistryClientConfig, error) {
	yamlRegistryConfig.setDefaults()

	nodeRPCUrl, err := parseNodeUrl(yamlRegistryConfig.Node.RPCUrl)
	if err != nil {
		return nil, err
	}

	var nodeGRPCUrl *url.URL
	if yamlRegistryConfig.Node.GRPCUrl != "" {
		if nodeGRPCUrl, err = parseNodeUrl(yamlRegistryConfig.Node.GRPCUrl); err != nil {
			return nil, err
		}
	}

	signingKeyName := strings.TrimSpace(yamlRegistryConfig.Signer.KeyName)
	if signingKeyName == "" {
		return nil, ErrRegistryConfigInvalidSigningKey.Wrap("signing key name is required")
	}

	mnemonic, err := loadMnemonic(yamlRegistryConfig.Signer)
	if err != nil {
		return nil, err
	}

	fees, err := cosmostypes.ParseCoinsNormalized(yamlRegistryConfig.Tx.Fees)
	if err != nil {
		return nil, ErrRegistryConfigInvalidFees.Wrap(err.Error())
	}
	if fees.Empty() {
		return nil, ErrRegistryConfigInvalidFees.Wrapf("no fee coins in %q", yamlRegistryConfig.Tx.Fees)
	}

	if err := validateCommitTiming(yamlRegistryConfig.Tx); err != nil {
		return nil, err
	}

	logLevel := strings.ToLower(strings.TrimSpace(yamlRegistryConfig.LogLevel))
	if !slices.Contains(supportedLogLevels, logLevel) {
		return nil, ErrRegistryConfigInvalidLogLevel.Wrapf(
			"%q, expected one of %v", yamlRegistryConfig.LogLevel, supportedLogLevels,
		)
	}

	if yamlRegistryConfig.Metrics.Enabled {
		if _, _, err := net.SplitHostPort(yamlRegistryConfig.Metrics.Addr); err != nil {
			return nil, ErrRegistryConfigInvalidMetrics.Wrap(err.Error())
		}
	}

	return &RegistryClientConfig{
		NodeRPCUrl:         nodeRPCUrl,
		NodeGRPCUrl:        nodeGRPCUrl,
		ChainID:            strings.TrimSpace(yamlRegistryConfig.Node.ChainID),
		SigningKeyName:     signingKeyName,
		Mnemonic:           mnemonic,
		Fees:               fees,
		GasLimit:           yamlRegistryConfig.Tx.GasLimit,
		Memo:               yamlRegistryConfig.Tx.Memo,
		CommitTimeout:      yamlRegistryConfig.Tx.CommitTimeout,
		CommitPollInterval: yamlRegistryConfig.Tx.CommitPollInterval,
		LogLevel:           logLevel,
		Metrics: &RegistryClientMetricsConfig{
			Enabled: yamlRegistryConfig.Metrics.Enabled,
			Addr:    yamlRegistryConfig.Metrics.Addr,
		},
	}, nil
}

// setDefaults replaces every zero value with the respective default.
func (yamlRegistryConfig *YAMLRegistryClientConfig) setDefaults() {
	defaults := DefaultYAMLRegistryClientConfig()

	if yamlRegistryConfig.Node.RPCUrl == "" {
		yamlRegistryConfig.Node.RPCUrl = defaults.Node.RPCUrl
	}
	if yamlRegistryConfig.Signer.KeyName == "" {
		yamlRegistryConfig.Signer.KeyName = defaults.Signer.KeyName
	}
	if yamlRegistryConfig.Tx.Fees == "" {
		yamlRegistryConfig.Tx.Fees = defaults.Tx.Fees
	}
	if yamlRegistryConfig.Tx.GasLimit == 0 {
		yamlRegistryConfig.Tx.GasLimit = defaults.Tx.GasLimit
	}
	if yamlRegistryConfig.Tx.CommitTimeout == 0 {
		yamlRegistryConfig.Tx.CommitTimeout = defaults.Tx.CommitTimeout
	}
	if yamlRegistryConfig.Tx.CommitPollInterval == 0 {
		yamlRegistryConfig.Tx.CommitPollInterval = defaults.Tx.CommitPollInterval
	}
	if yamlRegistryConfig.Metrics.Addr == "" {
		yamlRegistryConfig.Metrics.Addr = defaults.Metrics.Addr
	}
	if yamlRegistryConfig.LogLevel == "" {
		yamlRegistryConfig.LogLevel = defaults.LogLevel
	}
}

// parseNodeUrl parses the comet RPC or gRPC URL of the node to which txs are
// broadcast.
func parseNodeUrl(rawUrl string) (*url.URL, error) {
	nodeRPCUrl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, ErrRegistryConfigInvalidNodeUrl.Wrap(err.Error())
	}

	if !slices.Contains(supportedNodeSchemes, nodeRPCUrl.Scheme) {
		return nil, ErrRegistryConfigInvalidNodeUrl.Wrapf(
			"unsupported scheme %q in %q, expected one of %v",
			nodeRPCUrl.Scheme, rawUrl, supportedNodeSchemes,
		)
	}

	if nodeRPCUrl.Host == "" {
		return nil, ErrRegistryConfigInvalidNodeUrl.Wrapf("missing host in %q", rawUrl)
	}

	return nodeRPCUrl, nil
}

// loadMnemonic returns the configured mnemonic, reading it from the mnemonic
// file if one is configured instead.
func loadMnemonic(signerConfig YAMLRegistrySignerConfig) (string, error) {
	switch {
	case signerConfig.Mnemonic != "" && signerConfig.MnemonicFile != "":
		return "", ErrRegistryConfigInvalidMnemonic.Wrap("mnemonic and mnemonic_file are mutually exclusive")
	case signerConfig.Mnemonic != "":
		return signerConfig.Mnemonic, nil
	case signerConfig.MnemonicFile != "":
		mnemonicBz, err := os.ReadFile(signerConfig.MnemonicFile)
		if err != nil {
			return "", ErrRegistryConfigInvalidMnemonic.Wrapf("reading mnemonic file: %s", err)
		}

		mnemonic := strings.TrimSpace(string(mnemonicBz))
		if mnemonic == "" {
			return "", ErrRegistryConfigInvalidMnemonic.Wrapf("empty mnemonic file %q", signerConfig.MnemonicFile)
		}
		return mnemonic, nil
	default:
		return "", ErrRegistryConfigInvalidMnemonic.Wrap("one of mnemonic or mnemonic_file is required")
	}
}

func validateCommitTiming(txConfig YAMLRegistryTxConfig) error {
	if txConfig.CommitTimeout < 0 {
		return ErrRegistryConfigInvalidCommit.Wrapf("negative commit timeout %s", txConfig.CommitTimeout)
	}

	if txConfig.CommitPollInterval < 0 {
		return ErrRegistryConfigInvalidCommit.Wrapf("negative commit poll interval %s", txConfig.CommitPollInterval)
	}

	if txConfig.CommitPollInterval > txConfig.CommitTimeout {
		return ErrRegistryConfigInvalidCommit.Wrapf(
			"commit poll interval %s exceeds commit timeout %s",
			txConfig.CommitPollInterval, txConfig.CommitTimeout,
		)
	}

	return nil
}
