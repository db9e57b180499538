package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/binarycodec/pkg/binarycodec"
)

// decodeCmd parses canonical hex back into its JSON representation.
var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode canonical hex to JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := binarycodec.Decode(args[0])
		if err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}
		return printJSON(m)
	},
}
