// Package stypes is the library of typed value codecs: one Go type per wire type
// declared in the definitions registry, each knowing how to read itself off a
// binary.Parser, write itself into a binary.BytesList, and convert to/from JSON.
package stypes

import (
	"fmt"

	"github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

// Value is the tagged-variant contract every primitive and composite codec satisfies.
// There is no shared base implementation; each wire type owns its own byte layout and
// JSON projection, closed over the fixed set the registry declares.
type Value interface {
	ToBytes() []byte
	ToJSON() (any, error)
}

// noHint marks a field as not VL-encoded, so a type's parse function reads its own fixed or
// self-terminating length instead of trusting a caller-supplied byte count.
const noHint = -1

// ParseField reads one field's value off p according to def, honoring def.IsVLEncoded.
// It is the single entry point the STObject decoder uses to dispatch by type name. The
// TransactionType/LedgerEntryType/TransactionResult fields are the exact inverse of
// FromJSONField's name-to-code special-casing: decode resolves the numeric wire code
// back through the registry's *Name lookups so ToJSON reproduces the name string the
// JSON side accepted, rather than leaking the raw code.
func ParseField(p *binary.Parser, reg *definitions.Registry, def definitions.FieldDefinition) (Value, error) {
	hint := noHint
	if def.IsVLEncoded {
		n, err := p.ReadVLLength()
		if err != nil {
			return nil, err
		}
		hint = n
	}
	switch def.Name {
	case "TransactionType":
		return parseNamedUInt16(p, reg.TransactionTypeName)
	case "LedgerEntryType":
		return parseNamedUInt16(p, reg.LedgerEntryTypeName)
	case "TransactionResult":
		return parseNamedUInt8(p, reg.TransactionResultName)
	}
	switch def.Type {
	case "UInt8":
		return parseUInt8(p)
	case "UInt16":
		return parseUInt16(p)
	case "UInt32":
		return parseUInt32(p)
	case "UInt64":
		return parseUInt64(p)
	case "Hash128":
		return parseHash(p, 16)
	case "Hash160":
		return parseHash(p, 20)
	case "Hash256":
		return parseHash(p, 32)
	case "Blob":
		return parseBlob(p, hint)
	case "AccountID":
		return parseAccountID(p, hint)
	case "Amount":
		return parseAmount(p)
	case "Currency":
		return parseCurrency(p)
	case "Issue":
		return parseIssue(p)
	case "IssuedCurrency":
		return parseIssuedCurrency(p)
	case "XChainBridge":
		return parseXChainBridge(p)
	case "Vector256":
		return parseVector256(p, hint)
	case "PathSet":
		return parsePathSet(p)
	case "STObject":
		return parseSTObjectNested(p, reg)
	case "STArray":
		return parseSTArray(p, reg)
	default:
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, fmt.Sprintf("no codec registered for type %q", def.Type))
	}
}

// FromJSONField converts a JSON value into a Value for the given field definition. The
// registry is threaded through for the STObject/STArray cases, and for the handful of
// fields (TransactionType, LedgerEntryType, TransactionResult) whose JSON form is a
// name that must be resolved to a numeric code before encoding.
func FromJSONField(reg *definitions.Registry, def definitions.FieldDefinition, v any) (Value, error) {
	switch def.Name {
	case "TransactionType":
		return uint16FromNamedCode(v, def, reg.TransactionTypeCode)
	case "LedgerEntryType":
		return uint16FromNamedCode(v, def, reg.LedgerEntryTypeCode)
	case "TransactionResult":
		return uint8FromNamedCode(v, def, reg.TransactionResultCode)
	}
	switch def.Type {
	case "UInt8":
		return uint8FromJSON(v, def)
	case "UInt16":
		return uint16FromJSON(v, def)
	case "UInt32":
		return uint32FromJSON(v, def)
	case "UInt64":
		return uint64FromJSON(v, def)
	case "Hash128":
		return hashFromJSON(v, def, 16)
	case "Hash160":
		return hashFromJSON(v, def, 20)
	case "Hash256":
		return hashFromJSON(v, def, 32)
	case "Blob":
		return blobFromJSON(v, def)
	case "AccountID":
		return accountIDFromJSON(v, def)
	case "Amount":
		return amountFromJSON(v, def)
	case "Currency":
		return currencyFromJSON(v, def)
	case "Issue":
		return issueFromJSON(v, def)
	case "IssuedCurrency":
		return issuedCurrencyFromJSON(v, def)
	case "XChainBridge":
		return xChainBridgeFromJSON(v, def)
	case "Vector256":
		return vector256FromJSON(v, def)
	case "PathSet":
		return pathSetFromJSON(v, def)
	case "STObject":
		return stObjectFromJSON(reg, def, v)
	case "STArray":
		return stArrayFromJSON(reg, def, v)
	default:
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, fmt.Sprintf("no codec registered for type %q", def.Type))
	}
}
