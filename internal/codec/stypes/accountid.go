package stypes

import (
	xbinary "github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
	"github.com/ledgerkit/binarycodec/internal/xrpladdr"
)

// AccountID is a 20-byte account hash. Its JSON form is a base58check "r..." address,
// decoded and encoded through the xrpladdr collaborator; it is always VL-prefixed
// when serialized as a field.
type AccountID struct {
	bytes [20]byte
}

func parseAccountID(p *xbinary.Parser, hint int) (Value, error) {
	if hint != 20 {
		return nil, codecerr.Plain(codecerr.TypeMismatch, "AccountID field must be VL-prefixed with length 20")
	}
	b, err := p.Read(20)
	if err != nil {
		return nil, err
	}
	var out AccountID
	copy(out.bytes[:], b)
	return out, nil
}

func accountIDFromJSON(v any, def definitions.FieldDefinition) (Value, error) {
	s, ok := v.(string)
	if !ok {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "expected a base58 address string")
	}
	decoded, err := xrpladdr.DecodeAccountID(s)
	if err != nil {
		return nil, codecerr.AtFieldWrap(codecerr.TypeMismatch, def.Name, "invalid account address", err)
	}
	var out AccountID
	copy(out.bytes[:], decoded)
	return out, nil
}

func (a AccountID) ToBytes() []byte {
	out := make([]byte, 20)
	copy(out, a.bytes[:])
	return out
}

func (a AccountID) ToJSON() (any, error) {
	s, err := xrpladdr.EncodeAccountID(a.bytes[:])
	if err != nil {
		return nil, err
	}
	return s, nil
}
