package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/binarycodec/pkg/binarycodec"
)

// inspectCmd decodes hex to JSON and additionally reports the top-level field count, for
// eyeballing a payload's shape without piping through jq.
var inspectCmd = &cobra.Command{
	Use:   "inspect <hex>",
	Short: "Decode canonical hex and report its field count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := binarycodec.Decode(args[0])
		if err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}
		fmt.Printf("fields: %d\n", len(m))
		return printJSON(m)
	},
}
