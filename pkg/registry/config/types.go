package config

import (
	"net/url"
	"time"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"
)

// YAMLRegistryClientConfig is the structure used to unmarshal the registry
// client config file. The mapstructure tags allow the same structure to be
// populated by viper, from flags and REGISTRY_ prefixed environment variables.
type YAMLRegistryClientConfig struct {
	Node     YAMLRegistryNodeConfig    `yaml:"node" mapstructure:"node"`
	Signer   YAMLRegistrySignerConfig  `yaml:"signer" mapstructure:"signer"`
	Tx       YAMLRegistryTxConfig      `yaml:"tx" mapstructure:"tx"`
	Metrics  YAMLRegistryMetricsConfig `yaml:"metrics" mapstructure:"metrics"`
	LogLevel string                    `yaml:"log_level" mapstructure:"log_level"`
}

// YAMLRegistryNodeConfig is the structure used to unmarshal the node section
// of the registry client config file.
type YAMLRegistryNodeConfig struct {
	RPCUrl string `yaml:"rpc_url" mapstructure:"rpc_url"`
	// GRPCUrl optionally points account queries at the node's gRPC endpoint.
	GRPCUrl string `yaml:"grpc_url" mapstructure:"grpc_url"`
	// ChainID is discovered from the node status when empty.
	ChainID string `yaml:"chain_id" mapstructure:"chain_id"`
}

// YAMLRegistrySignerConfig is the structure used to unmarshal the signer
// section of the registry client config file. Exactly one of Mnemonic and
// MnemonicFile must be set.
type YAMLRegistrySignerConfig struct {
	KeyName      string `yaml:"key_name" mapstructure:"key_name"`
	Mnemonic     string `yaml:"mnemonic" mapstructure:"mnemonic"`
	MnemonicFile string `yaml:"mnemonic_file" mapstructure:"mnemonic_file"`
}

// YAMLRegistryTxConfig is the structure used to unmarshal the tx section of
// the registry client config file.
type YAMLRegistryTxConfig struct {
	Fees               string        `yaml:"fees" mapstructure:"fees"`
	GasLimit           uint64        `yaml:"gas_limit" mapstructure:"gas_limit"`
	Memo               string        `yaml:"memo" mapstructure:"memo"`
	CommitTimeout      time.Duration `yaml:"commit_timeout" mapstructure:"commit_timeout"`
	CommitPollInterval time.Duration `yaml:"commit_poll_interval" mapstructure:"commit_poll_interval"`
}

// YAMLRegistryMetricsConfig is the structure used to unmarshal the metrics
// section of the registry client config file.
type YAMLRegistryMetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Addr    string `yaml:"addr" mapstructure:"addr"`
}

// RegistryClientConfig is the structure describing the registry client config
type RegistryClientConfig struct {
	NodeRPCUrl         *url.URL
	NodeGRPCUrl        *url.URL
	ChainID            string
	SigningKeyName     string
	Mnemonic           string
	Fees               cosmostypes.Coins
	GasLimit           uint64
	Memo               string
	CommitTimeout      time.Duration
	CommitPollInterval time.Duration
	LogLevel           string
	Metrics            *RegistryClientMetricsConfig
}

// RegistryClientMetricsConfig is the structure resulting from parsing the
// metrics section of the registry client config file.
type RegistryClientMetricsConfig struct {
	Enabled bool
	Addr    string
}
