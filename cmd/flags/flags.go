package flags

const (
	// OmittedDefaultFlagValue is used whenever a flag is required but no reasonable default value can be provided.
	// In most cases, this forces the user to specify the flag value to avoid unintended behavior.
	OmittedDefaultFlagValue = "intentionally omitting default"

	FlagConfig        = "config"
	FlagConfigUsage   = "path to the registry client YAML config file; $HOME/.registry/registry_config.yaml and ./registry_config.yaml are searched if empty"
	DefaultConfigPath = ""

	FlagNode      = "node"
	FlagNodeUsage = "comet RPC endpoint of the registry node (tcp|http|https)"

	FlagGRPCAddr      = "grpc-addr"
	FlagGRPCAddrUsage = "optional gRPC endpoint of the registry node to which account queries are sent (tcp|http|https)"

	FlagChainID      = "chain-id"
	FlagChainIDUsage = "chain ID of the registry chain; discovered from the node status if empty"

	FlagKeyName      = "key-name"
	FlagKeyNameUsage = "name under which the signing key is held in the in-memory keyring"

	FlagMnemonicFile      = "mnemonic-file"
	FlagMnemonicFileUsage = "path to a file containing the BIP-39 mnemonic of the signing key; the mnemonic may instead be set via REGISTRY_SIGNER_MNEMONIC"

	FlagFees      = "fees"
	FlagFeesUsage = "fixed fee paid for every tx (e.g. 10aphoton)"

	FlagGasLimit      = "gas"
	FlagGasLimitUsage = "fixed gas limit of every tx"

	FlagMemo      = "memo"
	FlagMemoUsage = "memo attached to every tx"

	FlagCommitTimeout      = "commit-timeout"
	FlagCommitTimeoutUsage = "how long to wait for a broadcast tx to be committed"

	FlagCommitPollInterval      = "commit-poll-interval"
	FlagCommitPollIntervalUsage = "delay between queries for a broadcast tx"

	FlagMetricsEnabled      = "metrics"
	FlagMetricsEnabledUsage = "serve prometheus metrics while the command runs"

	FlagMetricsAddr      = "metrics-addr"
	FlagMetricsAddrUsage = "host:port on which prometheus metrics are served"

	FlagLogLevel      = "log-level"
	FlagLogLevelUsage = "The logging level (debug|info|warn|error)"

	FlagSigner      = "signer"
	FlagSignerUsage = "address set as the signer of the message; defaults to the address of the signing key"
)
