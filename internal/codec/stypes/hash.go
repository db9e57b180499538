package stypes

import (
	"encoding/hex"
	"fmt"

	xbinary "github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

// Hash is a fixed-width hash value (16, 20, or 32 bytes depending on the field's
// declared type). JSON form is case-insensitive hex on input, uppercase hex on output.
type Hash struct {
	bytes []byte
}

func parseHash(p *xbinary.Parser, width int) (Value, error) {
	b, err := p.Read(width)
	if err != nil {
		return nil, err
	}
	out := make([]byte, width)
	copy(out, b)
	return Hash{bytes: out}, nil
}

func hashFromJSON(v any, def definitions.FieldDefinition, width int) (Value, error) {
	s, ok := v.(string)
	if !ok {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "expected a hex string")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, codecerr.AtFieldWrap(codecerr.MalformedHex, def.Name, "invalid hex", err)
	}
	if len(b) != width {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, fmt.Sprintf("expected %d bytes, got %d", width, len(b)))
	}
	return Hash{bytes: b}, nil
}

func (h Hash) ToBytes() []byte {
	out := make([]byte, len(h.bytes))
	copy(out, h.bytes)
	return out
}

func (h Hash) ToJSON() (any, error) {
	return fmt.Sprintf("%X", h.bytes), nil
}
