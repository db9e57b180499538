package stypes

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	xbinary "github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

// Amount is the discriminated native-drops / issued-currency value. Only one of the
// two representations is populated, selected by isIssued. Decimal precision for the
// issued form is carried as an exact big.Int mantissa plus a base-10 exponent — no
// floating point anywhere in the pipeline, since canonicality requires bit-for-bit
// reproducible rounding.
type Amount struct {
	isIssued bool

	// native-drops fields
	drops *big.Int // always non-negative, <= maxDrops

	// issued-currency fields
	mantissa *big.Int // 0, or in [minMantissa, maxMantissa)
	exponent int       // valid only when mantissa != 0
	negative bool
	currency Currency
	issuer   AccountID
}

const (
	minMantissa   = 1_000_000_000_000_000  // 10^15
	maxMantissa   = 10_000_000_000_000_000 // 10^16
	minExponent   = -96
	maxExponent   = 80
	exponentBias  = 98
	maxDrops      = 100_000_000_000_000_000 // 10^17
	nativeSignBit = uint64(1) << 62
	issuedFlagBit = uint64(1) << 63
	dropsMask     = (uint64(1) << 62) - 1
	mantissaMask  = (uint64(1) << 54) - 1
)

func parseAmount(p *xbinary.Parser) (Value, error) {
	b, err := p.Read(8)
	if err != nil {
		return nil, err
	}
	first := b[0]
	isIssued := first&0x80 != 0

	if !isIssued {
		v := binary.BigEndian.Uint64(b)
		drops := new(big.Int).SetUint64(v & dropsMask)
		return Amount{isIssued: false, drops: drops}, nil
	}

	valueBytes := make([]byte, 8)
	copy(valueBytes, b)
	currencyBytes, err := p.Read(20)
	if err != nil {
		return nil, err
	}
	issuerBytes, err := p.Read(20)
	if err != nil {
		return nil, err
	}

	v := binary.BigEndian.Uint64(valueBytes)
	sign := v&nativeSignBit != 0
	rawExp := int((v >> 54) & 0xFF)
	mantissa := new(big.Int).SetUint64(v & mantissaMask)

	var cur Currency
	copy(cur.bytes[:], currencyBytes)
	var iss AccountID
	copy(iss.bytes[:], issuerBytes)

	if mantissa.Sign() == 0 {
		return Amount{isIssued: true, mantissa: big.NewInt(0), exponent: 0, negative: false, currency: cur, issuer: iss}, nil
	}
	return Amount{
		isIssued: true,
		mantissa: mantissa,
		exponent: rawExp - exponentBias,
		negative: !sign,
		currency: cur,
		issuer:   iss,
	}, nil
}

func amountFromJSON(v any, def definitions.FieldDefinition) (Value, error) {
	switch t := v.(type) {
	case string:
		return nativeAmountFromString(t, def)
	case map[string]any:
		return issuedAmountFromMap(t, def)
	default:
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "expected a drops string or an issued-currency object")
	}
}

func nativeAmountFromString(s string, def definitions.FieldDefinition) (Value, error) {
	drops, ok := new(big.Int).SetString(s, 10)
	if !ok || drops.Sign() < 0 {
		return nil, codecerr.AtField(codecerr.InvalidNativeAmount, def.Name, "drops must be a non-negative decimal integer")
	}
	if drops.Cmp(big.NewInt(maxDrops)) > 0 {
		return nil, codecerr.AtField(codecerr.InvalidNativeAmount, def.Name, "drops exceeds 10^17")
	}
	return Amount{isIssued: false, drops: drops}, nil
}

func issuedAmountFromMap(m map[string]any, def definitions.FieldDefinition) (Value, error) {
	valueStr, _ := m["value"].(string)
	currencyStr, _ := m["currency"].(string)
	issuerStr, _ := m["issuer"].(string)
	if valueStr == "" || currencyStr == "" || issuerStr == "" {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "issued amount requires value, currency, and issuer")
	}

	currency, err := currencyFromString(currencyStr, def)
	if err != nil {
		return nil, err
	}
	issuerVal, err := accountIDFromJSON(issuerStr, def)
	if err != nil {
		return nil, err
	}
	issuer := issuerVal.(AccountID)

	negative, mantissa, exponent, err := parseDecimalToMantissa(valueStr, def)
	if err != nil {
		return nil, err
	}
	return Amount{
		isIssued: true,
		mantissa: mantissa,
		exponent: exponent,
		negative: negative,
		currency: currency,
		issuer:   issuer,
	}, nil
}

// parseDecimalToMantissa normalizes an arbitrary-precision decimal string into a
// 16-significant-digit mantissa and matching base-10 exponent, per the canonical
// issued-amount representation. Zero always normalizes to mantissa=0, exponent=0.
func parseDecimalToMantissa(s string, def definitions.FieldDefinition) (negative bool, mantissa *big.Int, exponent int, err error) {
	orig := s
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	sciExp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		n, convErr := strconv.Atoi(s[i+1:])
		if convErr != nil {
			return false, nil, 0, codecerr.AtFieldWrap(codecerr.TypeMismatch, def.Name, "invalid exponent in amount value", convErr)
		}
		sciExp = n
		s = s[:i]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
	}
	for _, c := range intPart + fracPart {
		if c < '0' || c > '9' {
			return false, nil, 0, codecerr.AtField(codecerr.TypeMismatch, def.Name, fmt.Sprintf("invalid amount value %q", orig))
		}
	}
	if intPart == "" {
		intPart = "0"
	}

	digits := strings.TrimLeft(intPart+fracPart, "0")
	pointExp := sciExp - len(fracPart)
	if digits == "" {
		return false, big.NewInt(0), 0, nil
	}

	// Strip trailing zeros, folding each one into the exponent.
	trimmed := strings.TrimRight(digits, "0")
	pointExp += len(digits) - len(trimmed)
	digits = trimmed
	if digits == "" {
		return false, big.NewInt(0), 0, nil
	}

	raw, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return false, nil, 0, codecerr.AtField(codecerr.TypeMismatch, def.Name, fmt.Sprintf("invalid amount value %q", orig))
	}

	l := len(digits)
	switch {
	case l < 16:
		raw.Mul(raw, pow10(16-l))
		pointExp -= 16 - l
	case l > 16:
		divisor := pow10(l - 16)
		q, r := new(big.Int).QuoRem(raw, divisor, new(big.Int))
		half := new(big.Int).Rsh(divisor, 1)
		if r.CmpAbs(half) >= 0 {
			q.Add(q, big.NewInt(1))
		}
		raw = q
		pointExp += l - 16
		if raw.Cmp(big.NewInt(maxMantissa)) >= 0 {
			raw.Quo(raw, big.NewInt(10))
			pointExp++
		}
	}

	if raw.Cmp(big.NewInt(minMantissa)) < 0 || raw.Cmp(big.NewInt(maxMantissa)) >= 0 {
		return false, nil, 0, codecerr.AtField(codecerr.OverflowAmount, def.Name, "mantissa out of canonical range after normalization")
	}
	if pointExp < minExponent || pointExp > maxExponent {
		return false, nil, 0, codecerr.AtField(codecerr.UnderflowAmount, def.Name, "exponent out of canonical range")
	}

	return negative, raw, pointExp, nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func (a Amount) ToBytes() []byte {
	out := make([]byte, 8)
	if !a.isIssued {
		v := nativeSignBit | (a.drops.Uint64() & dropsMask)
		binary.BigEndian.PutUint64(out, v)
		return out
	}

	var v uint64
	if a.mantissa.Sign() == 0 {
		v = issuedFlagBit
	} else {
		v = issuedFlagBit
		if !a.negative {
			v |= nativeSignBit
		}
		rawExp := uint64(a.exponent + exponentBias)
		v |= (rawExp & 0xFF) << 54
		v |= a.mantissa.Uint64() & mantissaMask
	}
	binary.BigEndian.PutUint64(out, v)
	out = append(out, a.currency.ToBytes()...)
	out = append(out, a.issuer.ToBytes()...)
	return out
}

func (a Amount) ToJSON() (any, error) {
	if !a.isIssued {
		return a.drops.String(), nil
	}
	currencyJSON, err := a.currency.ToJSON()
	if err != nil {
		return nil, err
	}
	issuerJSON, err := a.issuer.ToJSON()
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"value":    formatIssuedValue(a.mantissa, a.exponent, a.negative),
		"currency": currencyJSON,
		"issuer":   issuerJSON,
	}, nil
}

// formatIssuedValue renders a mantissa/exponent pair as the shortest exact decimal
// string, matching the normalization a decimal-string round-trip must reproduce. The
// stored mantissa always carries 16 significant digits, padded with insignificant
// trailing zeros; those are stripped back out (folded into the exponent) before
// formatting so "1" round-trips as "1", not "1.000000000000000".
func formatIssuedValue(mantissa *big.Int, exponent int, negative bool) string {
	if mantissa.Sign() == 0 {
		return "0"
	}
	digits := mantissa.String()
	trimmed := strings.TrimRight(digits, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	exponent += len(digits) - len(trimmed)
	digits = trimmed

	sign := ""
	if negative {
		sign = "-"
	}

	pointPos := len(digits) + exponent
	switch {
	case exponent >= 0:
		return sign + digits + strings.Repeat("0", exponent)
	case pointPos <= 0:
		return sign + "0." + strings.Repeat("0", -pointPos) + digits
	default:
		return sign + digits[:pointPos] + "." + digits[pointPos:]
	}
}
