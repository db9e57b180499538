package stypes

import (
	"fmt"

	xbinary "github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

// Vector256 is a VL-prefixed sequence of 32-byte hashes.
type Vector256 struct {
	hashes [][32]byte
}

func parseVector256(p *xbinary.Parser, hint int) (Value, error) {
	if hint < 0 {
		return nil, codecerr.Plain(codecerr.MalformedHeader, "Vector256 field decoded without a VL length hint")
	}
	if hint%32 != 0 {
		return nil, codecerr.Plain(codecerr.TypeMismatch, "Vector256 payload length must be a multiple of 32")
	}
	b, err := p.Read(hint)
	if err != nil {
		return nil, err
	}
	count := hint / 32
	out := make([][32]byte, count)
	for i := 0; i < count; i++ {
		copy(out[i][:], b[i*32:(i+1)*32])
	}
	return Vector256{hashes: out}, nil
}

func vector256FromJSON(v any, def definitions.FieldDefinition) (Value, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "expected an array of hex hash strings")
	}
	out := make([][32]byte, len(arr))
	for i, item := range arr {
		val, err := hashFromJSON(item, def, 32)
		if err != nil {
			return nil, err
		}
		copy(out[i][:], val.(Hash).bytes)
	}
	return Vector256{hashes: out}, nil
}

func (v Vector256) ToBytes() []byte {
	out := make([]byte, 0, len(v.hashes)*32)
	for _, h := range v.hashes {
		out = append(out, h[:]...)
	}
	return out
}

func (v Vector256) ToJSON() (any, error) {
	out := make([]string, len(v.hashes))
	for i, h := range v.hashes {
		out[i] = fmt.Sprintf("%X", h[:])
	}
	return out, nil
}
