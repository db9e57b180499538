package stypes

import (
	"encoding/binary"
	"fmt"
	"strconv"

	xbinary "github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

// UInt8 is a single big-endian byte. Its JSON form is a plain number, except for the
// handful of fields (TransactionResult) whose registry entry maps it to a named code.
type UInt8 uint8

func parseUInt8(p *xbinary.Parser) (Value, error) {
	b, err := p.ReadByte()
	if err != nil {
		return nil, err
	}
	return UInt8(b), nil
}

func uint8FromJSON(v any, def definitions.FieldDefinition) (Value, error) {
	n, ok := asInt64(v)
	if !ok || n < 0 || n > 0xFF {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "expected a UInt8-range number")
	}
	return UInt8(n), nil
}

func uint8FromNamedCode(v any, def definitions.FieldDefinition, resolve func(string) (int, error)) (Value, error) {
	if s, ok := v.(string); ok {
		code, err := resolve(s)
		if err != nil {
			return nil, codecerr.AtFieldWrap(codecerr.UnknownField, def.Name, fmt.Sprintf("unknown name %q", s), err)
		}
		return UInt8(code), nil
	}
	return uint8FromJSON(v, def)
}

// namedUInt8 wraps a decoded UInt8 whose JSON form is the registry-resolved name rather
// than the raw code (TransactionResult), so decode is the exact inverse of
// uint8FromNamedCode. A code the name table doesn't recognize decodes to the plain
// number instead of failing — the wire byte may predate the registry's name table.
type namedUInt8 struct {
	UInt8
	name func(int) (string, error)
}

func parseNamedUInt8(p *xbinary.Parser, name func(int) (string, error)) (Value, error) {
	v, err := parseUInt8(p)
	if err != nil {
		return nil, err
	}
	return namedUInt8{UInt8: v.(UInt8), name: name}, nil
}

func (n namedUInt8) ToJSON() (any, error) {
	if s, err := n.name(int(n.UInt8)); err == nil {
		return s, nil
	}
	return n.UInt8.ToJSON()
}

func (u UInt8) ToBytes() []byte  { return []byte{byte(u)} }
func (u UInt8) ToJSON() (any, error) { return int(u), nil }

// UInt16 is two big-endian bytes.
type UInt16 uint16

func parseUInt16(p *xbinary.Parser) (Value, error) {
	b, err := p.Read(2)
	if err != nil {
		return nil, err
	}
	return UInt16(binary.BigEndian.Uint16(b)), nil
}

func uint16FromJSON(v any, def definitions.FieldDefinition) (Value, error) {
	n, ok := asInt64(v)
	if !ok || n < 0 || n > 0xFFFF {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "expected a UInt16-range number")
	}
	return UInt16(n), nil
}

func uint16FromNamedCode(v any, def definitions.FieldDefinition, resolve func(string) (int, error)) (Value, error) {
	if s, ok := v.(string); ok {
		code, err := resolve(s)
		if err != nil {
			return nil, codecerr.AtFieldWrap(codecerr.UnknownField, def.Name, fmt.Sprintf("unknown name %q", s), err)
		}
		return UInt16(code), nil
	}
	return uint16FromJSON(v, def)
}

// namedUInt16 is namedUInt8's counterpart for TransactionType/LedgerEntryType, the two
// fields whose canonical JSON form is a name resolved through the registry rather than
// a bare code.
type namedUInt16 struct {
	UInt16
	name func(int) (string, error)
}

func parseNamedUInt16(p *xbinary.Parser, name func(int) (string, error)) (Value, error) {
	v, err := parseUInt16(p)
	if err != nil {
		return nil, err
	}
	return namedUInt16{UInt16: v.(UInt16), name: name}, nil
}

func (n namedUInt16) ToJSON() (any, error) {
	if s, err := n.name(int(n.UInt16)); err == nil {
		return s, nil
	}
	return n.UInt16.ToJSON()
}

func (u UInt16) ToBytes() []byte {
	out := make([]byte, 2)
	binary.BigEndian.PutUint16(out, uint16(u))
	return out
}
func (u UInt16) ToJSON() (any, error) { return int(u), nil }

// UInt32 is four big-endian bytes.
type UInt32 uint32

func parseUInt32(p *xbinary.Parser) (Value, error) {
	b, err := p.Read(4)
	if err != nil {
		return nil, err
	}
	return UInt32(binary.BigEndian.Uint32(b)), nil
}

func uint32FromJSON(v any, def definitions.FieldDefinition) (Value, error) {
	n, ok := asInt64(v)
	if !ok || n < 0 || n > 0xFFFFFFFF {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "expected a UInt32-range number")
	}
	return UInt32(n), nil
}

func (u UInt32) ToBytes() []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(u))
	return out
}
func (u UInt32) ToJSON() (any, error) { return int64(u), nil }

// UInt64 is eight big-endian bytes. Its JSON form is a 16-character uppercase hex
// string, since a full 64-bit value can exceed the safe range of a JSON number.
type UInt64 uint64

func parseUInt64(p *xbinary.Parser) (Value, error) {
	b, err := p.Read(8)
	if err != nil {
		return nil, err
	}
	return UInt64(binary.BigEndian.Uint64(b)), nil
}

func uint64FromJSON(v any, def definitions.FieldDefinition) (Value, error) {
	switch t := v.(type) {
	case string:
		n, err := strconv.ParseUint(t, hexOrDecBase(t), 64)
		if err != nil {
			return nil, codecerr.AtFieldWrap(codecerr.TypeMismatch, def.Name, "expected hex or decimal UInt64 string", err)
		}
		return UInt64(n), nil
	default:
		n, ok := asInt64(v)
		if !ok || n < 0 {
			return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "expected a UInt64-range number or string")
		}
		return UInt64(n), nil
	}
}

// hexOrDecBase returns 16 when s looks like an unprefixed hex string of the canonical
// 16-character UInt64 JSON form, else 10. This mirrors what to_json emits so round-trip
// decoding of our own output never misparses.
func hexOrDecBase(s string) int {
	if len(s) == 16 && isAllHex(s) {
		return 16
	}
	return 10
}

func isAllHex(s string) bool {
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return false
		}
	}
	return true
}

func (u UInt64) ToBytes() []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, uint64(u))
	return out
}
func (u UInt64) ToJSON() (any, error) {
	return fmt.Sprintf("%016X", uint64(u)), nil
}

func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		return int64(t), true
	case int:
		return int64(t), true
	case int64:
		return t, true
	case uint32:
		return int64(t), true
	default:
		return 0, false
	}
}
