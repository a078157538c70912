package cmd

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	registryconfig "github.com/vulcanize/registry-client/pkg/registry/config"
)

// promptMnemonicIfMissing reads the signing key mnemonic from the terminal,
// without echoing it, if neither a mnemonic nor a mnemonic file is configured
// and in is a terminal. Otherwise, it does nothing.
func promptMnemonicIfMissing(
	signerConfig *registryconfig.YAMLRegistrySignerConfig,
	in *os.File,
	out io.Writer,
) error {
	if signerConfig.Mnemonic != "" || signerConfig.MnemonicFile != "" {
		return nil
	}

	inFd := int(in.Fd())
	if !term.IsTerminal(inFd) {
		return nil
	}

	if _, err := fmt.Fprintf(out, "Enter the mnemonic of signing key %q: ", signerConfig.KeyName); err != nil {
		return err
	}

	mnemonicBz, err := term.ReadPassword(inFd)
	// ReadPassword consumes the newline without echoing it.
	_, _ = fmt.Fprintln(out)
	if err != nil {
		return registryconfig.ErrRegistryConfigInvalidMnemonic.Wrapf("reading mnemonic from terminal: %s", err)
	}

	signerConfig.Mnemonic = string(mnemonicBz)
	return nil
}
