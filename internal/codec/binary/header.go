// Package binary implements the byte-level primitives of the codec: the compact field
// header, variable-length prefixes, the cursor-based parser, and the append-only
// serializer sink. Nothing in this package knows about JSON; it only knows bytes.
package binary

import "github.com/ledgerkit/binarycodec/internal/codec/codecerr"

// EncodeFieldHeader encodes a (typeCode, fieldCode) pair using the compact/extended
// scheme from the field header codec design: one byte when both fit in a nibble, two
// bytes when only one does, three bytes when neither does.
func EncodeFieldHeader(typeCode, fieldCode int) ([]byte, error) {
	if typeCode < 0 || typeCode > 255 || fieldCode < 0 || fieldCode > 255 {
		return nil, codecerr.Plain(codecerr.MalformedHeader, "type code and field code must be in [0,255]")
	}
	switch {
	case typeCode < 16 && fieldCode < 16:
		return []byte{byte(typeCode<<4) | byte(fieldCode)}, nil
	case typeCode < 16 && fieldCode >= 16:
		return []byte{byte(typeCode << 4), byte(fieldCode)}, nil
	case typeCode >= 16 && fieldCode < 16:
		return []byte{byte(fieldCode), byte(typeCode)}, nil
	default:
		return []byte{0x00, byte(typeCode), byte(fieldCode)}, nil
	}
}

// headerResult is the outcome of decoding a field header: the two codes and the number
// of bytes consumed.
type headerResult struct {
	TypeCode  int
	FieldCode int
	Consumed  int
}

// decodeFieldHeader decodes a field header starting at buf[0], returning the codes and
// bytes consumed. It does not itself bounds-check beyond what's needed to read the
// header; callers (the Parser) are responsible for slicing a buffer long enough.
func decodeFieldHeader(buf []byte, offset int) (headerResult, error) {
	if len(buf) < 1 {
		return headerResult{}, codecerr.AtOffset(codecerr.UnexpectedEnd, offset, "buffer too short for field header")
	}
	first := buf[0]
	typeCode := int(first >> 4)
	fieldCode := int(first & 0x0F)

	switch {
	case typeCode != 0 && fieldCode != 0:
		return headerResult{TypeCode: typeCode, FieldCode: fieldCode, Consumed: 1}, nil
	case typeCode != 0 && fieldCode == 0:
		// Compact type code, extended field code: next byte holds the field code.
		if len(buf) < 2 {
			return headerResult{}, codecerr.AtOffset(codecerr.UnexpectedEnd, offset, "truncated extended field header")
		}
		fieldCode = int(buf[1])
		if fieldCode < 16 {
			return headerResult{}, codecerr.AtOffset(codecerr.MalformedHeader, offset, "extended field code must be >= 16")
		}
		return headerResult{TypeCode: typeCode, FieldCode: fieldCode, Consumed: 2}, nil
	case typeCode == 0 && fieldCode != 0:
		// Extended type code, compact field code: next byte holds the type code.
		if len(buf) < 2 {
			return headerResult{}, codecerr.AtOffset(codecerr.UnexpectedEnd, offset, "truncated extended field header")
		}
		typeCode = int(buf[1])
		if typeCode < 16 {
			return headerResult{}, codecerr.AtOffset(codecerr.MalformedHeader, offset, "extended type code must be >= 16")
		}
		return headerResult{TypeCode: typeCode, FieldCode: fieldCode, Consumed: 2}, nil
	default:
		// Both nibbles zero: three-byte extended form, 0x00 <type> <field>.
		if len(buf) < 3 {
			return headerResult{}, codecerr.AtOffset(codecerr.UnexpectedEnd, offset, "truncated extended field header")
		}
		typeCode = int(buf[1])
		fieldCode = int(buf[2])
		if typeCode < 16 || fieldCode < 16 {
			return headerResult{}, codecerr.AtOffset(codecerr.MalformedHeader, offset, "extended header codes must both be >= 16")
		}
		return headerResult{TypeCode: typeCode, FieldCode: fieldCode, Consumed: 3}, nil
	}
}
