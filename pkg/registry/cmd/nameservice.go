package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vulcanize/registry-client/pkg/client"
)

// NameserviceCmd returns the command grouping the nameservice module txs.
func NameserviceCmd() *cobra.Command {
	nameserviceCmd := &cobra.Command{
		Use:   "nameservice",
		Short: "Nameservice module txs",
	}
	addSignerFlag(nameserviceCmd)

	nameserviceCmd.AddCommand(
		&cobra.Command{
			Use:   "associate-bond <record-id> <bond-id>",
			Short: "Associate a record with a bond",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
					return registryClient.AssociateBond(ctx, args[0], args[1], signer)
				})
			},
		},
		&cobra.Command{
			Use:   "dissociate-bond <record-id>",
			Short: "Remove the bond association of a record",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
					return registryClient.DissociateBond(ctx, args[0], signer)
				})
			},
		},
		&cobra.Command{
			Use:   "dissociate-records <bond-id>",
			Short: "Remove the association of all records with a bond",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
					return registryClient.DissociateRecords(ctx, args[0], signer)
				})
			},
		},
		&cobra.Command{
			Use:   "delete-authority <name>",
			Short: "Delete a name authority",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
					return registryClient.DeleteNameAuthority(ctx, args[0], signer)
				})
			},
		},
		&cobra.Command{
			Use:   "reassociate-records <new-bond-id> <old-bond-id>",
			Short: "Move all records of a bond to another bond",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
					return registryClient.ReAssociateRecords(ctx, args[0], args[1], signer)
				})
			},
		},
		&cobra.Command{
			Use:   "renew-record <record-id>",
			Short: "Renew an expired record",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
					return registryClient.RenewRecord(ctx, args[0], signer)
				})
			},
		},
		&cobra.Command{
			Use:   "set-authority-bond <name> <bond-id>",
			Short: "Set the bond of a name authority",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
					return registryClient.SetAuthorityBond(ctx, args[0], args[1], signer)
				})
			},
		},
		&cobra.Command{
			Use:   "reserve-authority <name> [owner]",
			Short: "Reserve a name authority, optionally on behalf of owner",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				var owner string
				if len(args) == 2 {
					owner = args[1]
				}
				return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
					return registryClient.ReserveAuthority(ctx, args[0], signer, owner)
				})
			},
		},
		&cobra.Command{
			Use:     "set-name <crn> <cid>",
			Short:   "Map a CRN to a content ID",
			Example: "registryclient nameservice set-name crn://example/app bafyrei...",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
					return registryClient.SetName(ctx, args[0], args[1], signer)
				})
			},
		},
	)

	return nameserviceCmd
}
