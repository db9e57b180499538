package stypes

import (
	"encoding/hex"
	"fmt"

	xbinary "github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

// Currency is the fixed 20-byte currency code layout: all-zero for XRP, the standard
// ISO-code layout for a 3-letter code, or raw bytes for a non-standard currency.
type Currency struct {
	bytes [20]byte
}

func parseCurrency(p *xbinary.Parser) (Value, error) {
	b, err := p.Read(20)
	if err != nil {
		return nil, err
	}
	var out Currency
	copy(out.bytes[:], b)
	return out, nil
}

func currencyFromJSON(v any, def definitions.FieldDefinition) (Value, error) {
	s, ok := v.(string)
	if !ok {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "expected a currency string")
	}
	return currencyFromString(s, def)
}

func currencyFromString(s string, def definitions.FieldDefinition) (Currency, error) {
	if s == "XRP" {
		return Currency{}, nil
	}
	if isStandardCurrencyCode(s) {
		var c Currency
		copy(c.bytes[12:15], []byte(s))
		return c, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 20 {
		return Currency{}, codecerr.AtField(codecerr.InvalidCurrencyCode, def.Name, "expected a 3-letter ISO code, \"XRP\", or 20-byte hex")
	}
	var c Currency
	copy(c.bytes[:], b)
	return c, nil
}

func isStandardCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !isCurrencyChar(byte(r)) {
			return false
		}
	}
	return true
}

// isCurrencyChar matches the permitted ISO 4217-style currency code character set.
func isCurrencyChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '?' || c == '!' || c == '@' || c == '#' || c == '$' || c == '%' ||
		c == '^' || c == '&' || c == '*' || c == '<' || c == '>' || c == '(' || c == ')' ||
		c == '{' || c == '}' || c == '[' || c == ']' || c == '|':
		return true
	default:
		return false
	}
}

func (c Currency) ToBytes() []byte {
	out := make([]byte, 20)
	copy(out, c.bytes[:])
	return out
}

func (c Currency) isXRP() bool {
	for _, b := range c.bytes {
		if b != 0 {
			return false
		}
	}
	return true
}

func (c Currency) isStandardLayout() bool {
	for i := 0; i < 12; i++ {
		if c.bytes[i] != 0 {
			return false
		}
	}
	for i := 15; i < 20; i++ {
		if c.bytes[i] != 0 {
			return false
		}
	}
	for i := 12; i < 15; i++ {
		if !isCurrencyChar(c.bytes[i]) {
			return false
		}
	}
	return true
}

func (c Currency) ToJSON() (any, error) {
	if c.isXRP() {
		return "XRP", nil
	}
	if c.isStandardLayout() {
		return string(c.bytes[12:15]), nil
	}
	return fmt.Sprintf("%X", c.bytes[:]), nil
}
