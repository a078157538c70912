package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vulcanize/registry-client/pkg/client"
)

// BondCmd returns the command grouping the bond module txs.
func BondCmd() *cobra.Command {
	bondCmd := &cobra.Command{
		Use:   "bond",
		Short: "Bond module txs",
	}
	addSignerFlag(bondCmd)

	bondCmd.AddCommand(&cobra.Command{
		Use:     "create <coins>",
		Short:   "Create a bond funded with coins",
		Example: "registryclient bond create 1000000aphoton",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coins, err := parseCoinsArg("coins", args[0])
			if err != nil {
				return err
			}
			return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
				return registryClient.CreateBond(ctx, signer, coins)
			})
		},
	})
	bondCmd.AddCommand(&cobra.Command{
		Use:   "refill <bond-id> <coins>",
		Short: "Add coins to a bond",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coins, err := parseCoinsArg("coins", args[1])
			if err != nil {
				return err
			}
			return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
				return registryClient.RefillBond(ctx, args[0], signer, coins)
			})
		},
	})
	bondCmd.AddCommand(&cobra.Command{
		Use:   "withdraw <bond-id> <coins>",
		Short: "Withdraw coins from a bond",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coins, err := parseCoinsArg("coins", args[1])
			if err != nil {
				return err
			}
			return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
				return registryClient.WithdrawBond(ctx, args[0], signer, coins)
			})
		},
	})
	bondCmd.AddCommand(&cobra.Command{
		Use:   "cancel <bond-id>",
		Short: "Cancel a bond",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
				return registryClient.CancelBond(ctx, args[0], signer)
			})
		},
	})

	return bondCmd
}
