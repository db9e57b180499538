package binary

import (
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

// Parser is a cursor over a byte slice, exposing exactly the primitives the
// STObject/STArray decoders need: bounded reads, a peek, and field-header/VL
// decoding that consult the definitions registry. It carries no other state, so a
// Parser is only ever used for a single top-level decode.
type Parser struct {
	buf []byte
	pos int
	reg *definitions.Registry
}

// NewParser wraps buf for cursor-based reading, using reg to resolve field headers.
func NewParser(buf []byte, reg *definitions.Registry) *Parser {
	return &Parser{buf: buf, pos: 0, reg: reg}
}

// End reports whether the cursor has consumed the entire buffer.
func (p *Parser) End() bool {
	return p.pos >= len(p.buf)
}

// Offset returns the cursor's current byte position, for error reporting.
func (p *Parser) Offset() int {
	return p.pos
}

// Remaining returns the number of unread bytes.
func (p *Parser) Remaining() int {
	return len(p.buf) - p.pos
}

// Read consumes and returns the next n bytes.
func (p *Parser) Read(n int) ([]byte, error) {
	if n < 0 || p.pos+n > len(p.buf) {
		return nil, codecerr.AtOffset(codecerr.UnexpectedEnd, p.pos, "read past end of buffer")
	}
	out := p.buf[p.pos : p.pos+n]
	p.pos += n
	return out, nil
}

// Peek returns the next n bytes without advancing the cursor.
func (p *Parser) Peek(n int) ([]byte, error) {
	if n < 0 || p.pos+n > len(p.buf) {
		return nil, codecerr.AtOffset(codecerr.UnexpectedEnd, p.pos, "peek past end of buffer")
	}
	return p.buf[p.pos : p.pos+n], nil
}

// ReadByte consumes and returns the next single byte.
func (p *Parser) ReadByte() (byte, error) {
	b, err := p.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Skip advances the cursor by n bytes without returning them.
func (p *Parser) Skip(n int) error {
	_, err := p.Read(n)
	return err
}

// ReadVLLength decodes a variable-length prefix at the cursor and advances past it.
func (p *Parser) ReadVLLength() (int, error) {
	length, consumed, err := decodeVL(p.buf[p.pos:], p.pos)
	if err != nil {
		return 0, err
	}
	p.pos += consumed
	return length, nil
}

// ReadFieldHeader decodes a field header at the cursor, resolves it against the
// registry, and advances past it.
func (p *Parser) ReadFieldHeader() (definitions.FieldDefinition, error) {
	res, err := decodeFieldHeader(p.buf[p.pos:], p.pos)
	if err != nil {
		return definitions.FieldDefinition{}, err
	}
	def, err := p.reg.FieldByHeader(res.TypeCode, res.FieldCode)
	if err != nil {
		return definitions.FieldDefinition{}, err
	}
	p.pos += res.Consumed
	return def, nil
}

// PeekFieldHeaderIsArrayEnd reports whether the very next byte is the array end marker
// (0xF1), without consuming anything. STArray decoding uses this to detect its own
// terminator, which is a single compact-header byte with type code 15, field code 1.
func (p *Parser) PeekFieldHeaderIsArrayEnd() (bool, error) {
	b, err := p.Peek(1)
	if err != nil {
		return false, err
	}
	return b[0] == ArrayEndMarkerByte, nil
}

// PeekFieldHeaderIsObjectEnd reports whether the very next byte is the object end
// marker (0xE1), without consuming anything.
func (p *Parser) PeekFieldHeaderIsObjectEnd() (bool, error) {
	b, err := p.Peek(1)
	if err != nil {
		return false, err
	}
	return b[0] == ObjectEndMarkerByte, nil
}
