package main

import (
	"fmt"
	"os"

	"github.com/vulcanize/registry-client/cmd/registryclient/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
