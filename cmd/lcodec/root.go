package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the lcodec root command.
var rootCmd = &cobra.Command{
	Use:   "lcodec",
	Short: "Canonical ledger binary codec",
	Long: `lcodec encodes and decodes ledger transactions and objects between JSON and the
canonical binary wire form used for transport, hashing, and signing.

It performs no signing itself — key material and signature generation are out of scope;
use sign/multisign/sign-claim to produce the bytes an external signer needs.`,
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(multisignCmd)
	rootCmd.AddCommand(signClaimCmd)
	rootCmd.AddCommand(inspectCmd)
}
