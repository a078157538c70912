package config

import (
	"github.com/vulcanize/registry-client/pkg/client"
	"github.com/vulcanize/registry-client/pkg/client/tx"
	registryconfig "github.com/vulcanize/registry-client/pkg/registry/config"
)

// GetTxClientOptions returns the TxClientOptions which apply the fixed fee,
// gas limit, memo and commit timing of the given config.
func GetTxClientOptions(registryConfig *registryconfig.RegistryClientConfig) []client.TxClientOption {
	return []client.TxClientOption{
		tx.WithFeeAmount(registryConfig.Fees),
		tx.WithGasLimit(registryConfig.GasLimit),
		tx.WithMemo(registryConfig.Memo),
		tx.WithCommitTimeout(registryConfig.CommitTimeout),
		tx.WithCommitPollInterval(registryConfig.CommitPollInterval),
	}
}
