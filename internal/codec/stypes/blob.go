package stypes

import (
	"encoding/hex"
	"fmt"

	xbinary "github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

// Blob is an arbitrary-length byte string, always VL-prefixed on the wire.
type Blob struct {
	bytes []byte
}

func parseBlob(p *xbinary.Parser, hint int) (Value, error) {
	if hint < 0 {
		return nil, codecerr.Plain(codecerr.MalformedHeader, "Blob field decoded without a VL length hint")
	}
	b, err := p.Read(hint)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return Blob{bytes: out}, nil
}

func blobFromJSON(v any, def definitions.FieldDefinition) (Value, error) {
	s, ok := v.(string)
	if !ok {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "expected a hex string")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, codecerr.AtFieldWrap(codecerr.MalformedHex, def.Name, "invalid hex", err)
	}
	return Blob{bytes: b}, nil
}

func (b Blob) ToBytes() []byte {
	out := make([]byte, len(b.bytes))
	copy(out, b.bytes)
	return out
}

func (b Blob) ToJSON() (any, error) {
	return fmt.Sprintf("%X", b.bytes), nil
}
