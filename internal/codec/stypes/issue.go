package stypes

import (
	xbinary "github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

// Issue is either bare XRP (20 zero bytes) or a currency+issuer pair (40 bytes). Unlike
// IssuedCurrency, Issue's JSON form collapses to the bare string "XRP" for the native case.
type Issue struct {
	currency Currency
	issuer   AccountID
	isXRP    bool
}

func parseIssue(p *xbinary.Parser) (Value, error) {
	b, err := p.Peek(20)
	if err != nil {
		return nil, err
	}
	allZero := true
	for _, c := range b {
		if c != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		if _, err := p.Read(20); err != nil {
			return nil, err
		}
		return Issue{isXRP: true}, nil
	}

	currencyBytes, err := p.Read(20)
	if err != nil {
		return nil, err
	}
	issuerBytes, err := p.Read(20)
	if err != nil {
		return nil, err
	}
	var cur Currency
	copy(cur.bytes[:], currencyBytes)
	var iss AccountID
	copy(iss.bytes[:], issuerBytes)
	return Issue{currency: cur, issuer: iss}, nil
}

func issueFromJSON(v any, def definitions.FieldDefinition) (Value, error) {
	if s, ok := v.(string); ok {
		if s != "XRP" {
			return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "bare Issue string must be \"XRP\"")
		}
		return Issue{isXRP: true}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "expected \"XRP\" or a {currency, issuer} object")
	}
	currencyStr, _ := m["currency"].(string)
	if currencyStr == "" {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "Issue object requires currency")
	}
	currency, err := currencyFromString(currencyStr, def)
	if err != nil {
		return nil, err
	}
	if currencyStr == "XRP" {
		return Issue{isXRP: true}, nil
	}
	issuerStr, _ := m["issuer"].(string)
	if issuerStr == "" {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "non-XRP Issue object requires issuer")
	}
	issuerVal, err := accountIDFromJSON(issuerStr, def)
	if err != nil {
		return nil, err
	}
	return Issue{currency: currency, issuer: issuerVal.(AccountID)}, nil
}

func (i Issue) ToBytes() []byte {
	if i.isXRP {
		return make([]byte, 20)
	}
	out := i.currency.ToBytes()
	out = append(out, i.issuer.ToBytes()...)
	return out
}

func (i Issue) ToJSON() (any, error) {
	if i.isXRP {
		return "XRP", nil
	}
	currencyJSON, err := i.currency.ToJSON()
	if err != nil {
		return nil, err
	}
	issuerJSON, err := i.issuer.ToJSON()
	if err != nil {
		return nil, err
	}
	return map[string]any{"currency": currencyJSON, "issuer": issuerJSON}, nil
}
