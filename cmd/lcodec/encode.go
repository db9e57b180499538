package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/binarycodec/pkg/binarycodec"
)

// encodeCmd serializes a JSON ledger object to canonical hex.
var encodeCmd = &cobra.Command{
	Use:   "encode <json-file>",
	Short: "Encode a JSON ledger object to canonical hex",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readJSONFile(args[0])
		if err != nil {
			return err
		}
		hexOut, err := binarycodec.Encode(m)
		if err != nil {
			return fmt.Errorf("encode failed: %w", err)
		}
		fmt.Println(hexOut)
		return nil
	},
}
