package cmd

import (
	"github.com/spf13/cobra"

	registrycmd "github.com/vulcanize/registry-client/pkg/registry/cmd"
)

// NewRootCmd creates a new root command for the registry client. It is called
// once in the main function.
func NewRootCmd() *cobra.Command {
	InitSDKConfig()

	rootCmd := registrycmd.RegistryClientCmd()
	// main prints the returned error once.
	rootCmd.SilenceErrors = true

	return rootCmd
}
