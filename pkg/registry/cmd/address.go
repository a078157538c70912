package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vulcanize/registry-client/app"
	"github.com/vulcanize/registry-client/pkg/client/keyring"
)

// AddressCmd returns the command which prints the address derived from the
// configured mnemonic. It does not connect to the node.
func AddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Print the address of the signing key",
		Args:  cobra.NoArgs,
		RunE:  runAddress,
	}
}

func runAddress(cmd *cobra.Command, _ []string) error {
	if registryConfig == nil {
		return ErrRegistryCmdNoConfig
	}

	encodingConfig := app.MakeEncodingConfig()
	_, record, err := keyring.NewInMemoryKeyringFromMnemonic(
		encodingConfig.Marshaler,
		registryConfig.SigningKeyName,
		registryConfig.Mnemonic,
	)
	if err != nil {
		return err
	}

	signingAddr, err := record.GetAddress()
	if err != nil {
		return keyring.ErrSigningKeyAddr.Wrap(err.Error())
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), signingAddr.String())
	return err
}
