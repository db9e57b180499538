package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/binarycodec/pkg/binarycodec"
)

var multisignAccount string

// signCmd serializes a transaction under the single-signer signing filter and prefix.
var signCmd = &cobra.Command{
	Use:   "sign <json-file>",
	Short: "Produce the single-signer signing blob for a transaction",
	Long: `Produce the bytes an external signer hashes and signs for a single-signer
transaction: the signing-only field filter, prefixed with the single-signer domain
separator. lcodec never touches key material — pass the output to whatever signs it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readJSONFile(args[0])
		if err != nil {
			return err
		}
		hexOut, err := binarycodec.EncodeForSigning(m)
		if err != nil {
			return fmt.Errorf("encodeForSigning failed: %w", err)
		}
		fmt.Println(hexOut)
		return nil
	},
}

// multisignCmd serializes a transaction under the signing filter, suffixed with the
// signer's account ID, for one signer's contribution to a multi-signed transaction.
var multisignCmd = &cobra.Command{
	Use:   "multisign <json-file>",
	Short: "Produce a multisigning blob for one signer of a transaction",
	Long: `Produce the bytes one signer of a multi-signed transaction hashes and signs:
the signing-only field filter, prefixed with the multi-sign domain separator and
suffixed with that signer's account ID. Run once per signer, with --account set to the
address that will sign.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if multisignAccount == "" {
			return fmt.Errorf("--account is required")
		}
		m, err := readJSONFile(args[0])
		if err != nil {
			return err
		}
		hexOut, err := binarycodec.EncodeForMultisigning(m, multisignAccount)
		if err != nil {
			return fmt.Errorf("encodeForMultisigning failed: %w", err)
		}
		fmt.Println(hexOut)
		return nil
	},
}

// signClaimCmd serializes a payment-channel claim for the signer of a channel payment.
var signClaimCmd = &cobra.Command{
	Use:   "sign-claim <channel-hex> <amount>",
	Short: "Produce the signing blob for a payment-channel claim",
	Long: `Produce the bytes a payment-channel claim signer hashes and signs: the claim
domain separator, the 32-byte channel hash, and the claimed amount. amount may be a
plain drops string or a JSON issued-currency object.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		channelHex, amountStr := args[0], args[1]
		var amount any = amountStr
		var asObject map[string]any
		if err := json.Unmarshal([]byte(amountStr), &asObject); err == nil {
			amount = asObject
		}
		hexOut, err := binarycodec.EncodeForSigningClaim(channelHex, amount)
		if err != nil {
			return fmt.Errorf("encodeForSigningClaim failed: %w", err)
		}
		fmt.Println(hexOut)
		return nil
	},
}

func init() {
	multisignCmd.Flags().StringVar(&multisignAccount, "account", "", "address of the signer contributing this signature")
}
