// Package binarycodec is the public facade: encode/decode a ledger object or
// transaction between its JSON representation and the canonical binary form used for
// wire transport, hashing, and signing. Every operation here is stateless and safe for
// concurrent use — the only shared state is the immutable definitions registry.
package binarycodec

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
	"github.com/ledgerkit/binarycodec/internal/codec/hashutil"
	"github.com/ledgerkit/binarycodec/internal/codec/stypes"
)

// Domain-separation prefixes. These are wire constants, never derived at runtime.
var (
	prefixTransactionSign      = [4]byte{0x53, 0x54, 0x58, 0x00} // "STX\x00"
	prefixTransactionMultiSign = [4]byte{0x53, 0x4D, 0x54, 0x00} // "SMT\x00"
	prefixPaymentChannelClaim  = [4]byte{0x43, 0x4C, 0x4D, 0x00} // "CLM\x00"
	prefixTransactionID        = [4]byte{0x54, 0x58, 0x4E, 0x00} // "TXN\x00"
)

// Encode serializes a JSON object into its full canonical hex form: every
// isSerialized field, in canonical order.
func Encode(json map[string]any) (string, error) {
	obj, err := stypes.BuildSTObject(definitions.Default(), json)
	if err != nil {
		return "", err
	}
	bl := binary.NewBytesList(0)
	if err := obj.SerializeInto(bl, stypes.FullFilter); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(bl.Bytes())), nil
}

// Decode parses a canonical hex string into its JSON representation. The buffer is
// read as one top-level STObject whose fields run to the end of the buffer. Bytes after
// the last intended field are read as a further field: they fail with that field's
// decode error (UnexpectedEnd, UnknownField, ...) when they do not form one, and are
// decoded as a field when they do; they are not reported as UnexpectedTrailingBytes.
func Decode(hexStr string) (map[string]any, error) {
	raw, err := decodeHex(hexStr)
	if err != nil {
		return nil, err
	}
	p := binary.NewParser(raw, definitions.Default())
	obj, err := stypes.DecodeTopLevelSTObject(p, definitions.Default())
	if err != nil {
		return nil, err
	}
	if !p.End() {
		return nil, codecerr.AtOffset(codecerr.UnexpectedTrailingBytes, p.Offset(), "trailing bytes after top-level object")
	}
	j, err := obj.ToJSON()
	if err != nil {
		return nil, err
	}
	m, ok := j.(map[string]any)
	if !ok {
		return nil, codecerr.Plain(codecerr.TypeMismatch, "decoded value is not a JSON object")
	}
	return m, nil
}

// EncodeForSigning serializes a transaction under the signing-only filter, prefixed
// with the single-signer transaction-sign domain separator.
func EncodeForSigning(json map[string]any) (string, error) {
	body, err := serializeSigningBody(json)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(append(prefixTransactionSign[:], body...))), nil
}

// EncodeForMultisigning serializes a transaction under the signing-only filter,
// prefixed with the multi-sign domain separator and suffixed with the signer's
// 20-byte account ID (no VL prefix).
func EncodeForMultisigning(json map[string]any, accountID string) (string, error) {
	body, err := serializeSigningBody(json)
	if err != nil {
		return "", err
	}
	accountBytes, err := decodeAccountID(accountID)
	if err != nil {
		return "", err
	}
	out := append(append(prefixTransactionMultiSign[:], body...), accountBytes...)
	return strings.ToUpper(hex.EncodeToString(out)), nil
}

// EncodeForSigningClaim serializes a payment-channel claim: the claim domain
// separator, the 32-byte channel hash, then the amount (8-byte drops or 48-byte
// issued form).
func EncodeForSigningClaim(channel string, amount any) (string, error) {
	channelBytes, err := decodeHex(channel)
	if err != nil {
		return "", err
	}
	if len(channelBytes) != 32 {
		return "", codecerr.Plain(codecerr.TypeMismatch, "channel must be a 32-byte hex hash")
	}

	reg := definitions.Default()
	amountDef, err := reg.FieldByName("Amount")
	if err != nil {
		return "", err
	}
	amountVal, err := stypes.FromJSONField(reg, amountDef, amount)
	if err != nil {
		return "", err
	}

	out := append(prefixPaymentChannelClaim[:], channelBytes...)
	out = append(out, amountVal.ToBytes()...)
	return strings.ToUpper(hex.EncodeToString(out)), nil
}

// TransactionID computes the canonical transaction identifier for already-serialized
// transaction bytes: sha512Half(prefix || bytes).
func TransactionID(txBytes []byte) [32]byte {
	return hashutil.Sha512Half(append(prefixTransactionID[:], txBytes...))
}

// Sha512Half exposes the half-digest primitive external callers may need to compute
// hashes over encoded output without pulling in the full hashutil package.
func Sha512Half(data []byte) [32]byte {
	return hashutil.Sha512Half(data)
}

func serializeSigningBody(json map[string]any) ([]byte, error) {
	obj, err := stypes.BuildSTObject(definitions.Default(), json)
	if err != nil {
		return nil, err
	}
	bl := binary.NewBytesList(0)
	if err := obj.SerializeInto(bl, stypes.SigningFilter); err != nil {
		return nil, err
	}
	return bl.Bytes(), nil
}

func decodeAccountID(address string) ([]byte, error) {
	reg := definitions.Default()
	def, err := reg.FieldByName("Account")
	if err != nil {
		return nil, err
	}
	val, err := stypes.FromJSONField(reg, def, address)
	if err != nil {
		return nil, err
	}
	return val.ToBytes(), nil
}

func decodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, codecerr.Plain(codecerr.MalformedHex, "hex string has odd length")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, codecerr.Plain(codecerr.MalformedHex, fmt.Sprintf("invalid hex: %v", err))
	}
	return b, nil
}
