package stypes

import (
	xbinary "github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

// IssuedCurrency is always the 40-byte currency+issuer pair, with no bare-XRP
// collapse in its JSON form — unlike Issue, every IssuedCurrency names a currency and
// an issuer explicitly. It is the codec for fields of the registry's IssuedCurrency
// type; XChainBridge's per-chain issue slots use Issue instead.
type IssuedCurrency struct {
	currency Currency
	issuer   AccountID
}

func parseIssuedCurrency(p *xbinary.Parser) (Value, error) {
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
	return IssuedCurrency{currency: cur, issuer: iss}, nil
}

func issuedCurrencyFromJSON(v any, def definitions.FieldDefinition) (Value, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "expected a {currency, issuer} object")
	}
	currencyStr, _ := m["currency"].(string)
	issuerStr, _ := m["issuer"].(string)
	if currencyStr == "" || issuerStr == "" {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "IssuedCurrency requires currency and issuer")
	}
	currency, err := currencyFromString(currencyStr, def)
	if err != nil {
		return nil, err
	}
	issuerVal, err := accountIDFromJSON(issuerStr, def)
	if err != nil {
		return nil, err
	}
	return IssuedCurrency{currency: currency, issuer: issuerVal.(AccountID)}, nil
}

func (i IssuedCurrency) ToBytes() []byte {
	out := i.currency.ToBytes()
	out = append(out, i.issuer.ToBytes()...)
	return out
}

func (i IssuedCurrency) ToJSON() (any, error) {
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
