package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vulcanize/registry-client/pkg/client"
)

// AuctionCmd returns the command grouping the auction module txs.
func AuctionCmd() *cobra.Command {
	auctionCmd := &cobra.Command{
		Use:   "auction",
		Short: "Auction module txs",
	}
	addSignerFlag(auctionCmd)

	auctionCmd.AddCommand(&cobra.Command{
		Use:     "create <commits-duration> <reveals-duration> <commit-fee> <reveal-fee> <minimum-bid>",
		Short:   "Create an auction",
		Example: "registryclient auction create 5m 5m 10aphoton 10aphoton 100aphoton",
		Args:    cobra.ExactArgs(5),
		RunE:    runCreateAuction,
	})
	auctionCmd.AddCommand(&cobra.Command{
		Use:   "commit-bid <auction-id> <commit-hash>",
		Short: "Commit a sealed bid to an auction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
				return registryClient.CommitBid(ctx, args[0], args[1], signer)
			})
		},
	})
	auctionCmd.AddCommand(&cobra.Command{
		Use:   "reveal-bid <auction-id> <reveal>",
		Short: "Reveal a committed bid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
				return registryClient.RevealBid(ctx, args[0], args[1], signer)
			})
		},
	})

	return auctionCmd
}

func runCreateAuction(cmd *cobra.Command, args []string) error {
	commitsDuration, err := parseDurationArg("commits-duration", args[0])
	if err != nil {
		return err
	}
	revealsDuration, err := parseDurationArg("reveals-duration", args[1])
	if err != nil {
		return err
	}
	commitFee, err := parseCoinArg("commit-fee", args[2])
	if err != nil {
		return err
	}
	revealFee, err := parseCoinArg("reveal-fee", args[3])
	if err != nil {
		return err
	}
	minimumBid, err := parseCoinArg("minimum-bid", args[4])
	if err != nil {
		return err
	}

	return runTx(cmd, func(ctx context.Context, registryClient client.RegistryClient, signer string) error {
		return registryClient.CreateAuction(
			ctx,
			commitsDuration, revealsDuration,
			commitFee, revealFee, minimumBid,
			signer,
		)
	})
}
