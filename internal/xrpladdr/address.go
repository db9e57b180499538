// Package xrpladdr implements the base58-with-checksum address codec that the
// AccountID primitive type codec depends on. It is Bitcoin-style Base58Check with one
// twist: the ledger's classic addresses use their own base58 alphabet, not Bitcoin's.
package xrpladdr

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"
)

// alphabet is the ledger's base58 character set: same length and role as Bitcoin's,
// different character-to-digit assignment.
const alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// accountIDVersion is the version byte prefixed to a 20-byte account hash before
// Base58Check encoding, i.e. the "classic address" version.
const accountIDVersion = 0x00

// AccountIDLength is the fixed width of a decoded account identifier.
const AccountIDLength = 20

var (
	// ErrInvalidAddress covers malformed base58, wrong version byte, or wrong length.
	ErrInvalidAddress = errors.New("xrpladdr: invalid address")
	// ErrChecksumMismatch means the base58check checksum did not verify.
	ErrChecksumMismatch = errors.New("xrpladdr: checksum mismatch")
)

// EncodeAccountID renders a 20-byte account hash as a base58check "r..." address.
func EncodeAccountID(accountID []byte) (string, error) {
	if len(accountID) != AccountIDLength {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAddress, AccountIDLength, len(accountID))
	}
	return base58CheckEncode(accountID, accountIDVersion), nil
}

// DecodeAccountID parses a base58check "r..." address into its 20-byte account hash.
func DecodeAccountID(address string) ([]byte, error) {
	payload, version, err := base58CheckDecode(address)
	if err != nil {
		return nil, err
	}
	if version != accountIDVersion {
		return nil, fmt.Errorf("%w: unexpected version byte 0x%02x", ErrInvalidAddress, version)
	}
	if len(payload) != AccountIDLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAddress, AccountIDLength, len(payload))
	}
	return payload, nil
}

// Hash160 computes RIPEMD160(SHA256(data)), the account-hash derivation used
// throughout this ledger family.
func Hash160(data []byte) []byte {
	sum := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

func doubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

func base58CheckEncode(data []byte, version byte) string {
	payload := make([]byte, 1+len(data))
	payload[0] = version
	copy(payload[1:], data)

	checksum := doubleSHA256(payload)[:4]
	full := make([]byte, len(payload)+4)
	copy(full, payload)
	copy(full[len(payload):], checksum)

	return base58.EncodeAlphabet(full, base58.NewAlphabet(alphabet))
}

func base58CheckDecode(encoded string) (payload []byte, version byte, err error) {
	decoded, err := base58.DecodeAlphabet(encoded, base58.NewAlphabet(alphabet))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(decoded) < 5 {
		return nil, 0, ErrInvalidAddress
	}

	payloadLen := len(decoded) - 4
	body := decoded[:payloadLen]
	checksum := decoded[payloadLen:]

	expected := doubleSHA256(body)[:4]
	for i := 0; i < 4; i++ {
		if checksum[i] != expected[i] {
			return nil, 0, ErrChecksumMismatch
		}
	}

	return body[1:], body[0], nil
}
