package stypes

import (
	xbinary "github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

const (
	pathStepAccount  = 0x01
	pathStepCurrency = 0x10
	pathStepIssuer   = 0x20
	pathSeparator    = 0xFF
	pathSetEnd       = 0x00
)

// PathStep is one hop of a payment path: an optional intermediate account, and/or a
// currency/issuer pair describing an order-book hop. hasAccount/hasCurrency/hasIssuer
// record which fields the wire form actually carried, since a step's shape is not
// otherwise self-describing.
type PathStep struct {
	hasAccount  bool
	account     AccountID
	hasCurrency bool
	currency    Currency
	hasIssuer   bool
	issuer      AccountID
}

// PathSet is an ordered sequence of Paths, each an ordered sequence of PathSteps.
type PathSet struct {
	paths [][]PathStep
}

func parsePathSet(p *xbinary.Parser) (Value, error) {
	var paths [][]PathStep
	current := []PathStep{}
	for {
		b, err := p.ReadByte()
		if err != nil {
			return nil, err
		}
		switch b {
		case pathSetEnd:
			paths = append(paths, current)
			return PathSet{paths: paths}, nil
		case pathSeparator:
			paths = append(paths, current)
			current = []PathStep{}
		default:
			step := PathStep{}
			if b&pathStepAccount != 0 {
				val, err := parseAccountID(p, 20)
				if err != nil {
					return nil, err
				}
				step.hasAccount = true
				step.account = val.(AccountID)
			}
			if b&pathStepCurrency != 0 {
				val, err := parseCurrency(p)
				if err != nil {
					return nil, err
				}
				step.hasCurrency = true
				step.currency = val.(Currency)
			}
			if b&pathStepIssuer != 0 {
				val, err := parseAccountID(p, 20)
				if err != nil {
					return nil, err
				}
				step.hasIssuer = true
				step.issuer = val.(AccountID)
			}
			if !step.hasAccount && !step.hasCurrency && !step.hasIssuer {
				return nil, codecerr.Plain(codecerr.InvalidPathSet, "path step flag byte declares no fields")
			}
			current = append(current, step)
		}
	}
}

func pathSetFromJSON(v any, def definitions.FieldDefinition) (Value, error) {
	outerArr, ok := v.([]any)
	if !ok {
		return nil, codecerr.AtField(codecerr.InvalidPathSet, def.Name, "expected an array of paths")
	}
	paths := make([][]PathStep, len(outerArr))
	for i, rawPath := range outerArr {
		pathArr, ok := rawPath.([]any)
		if !ok {
			return nil, codecerr.AtField(codecerr.InvalidPathSet, def.Name, "expected an array of path steps")
		}
		steps := make([]PathStep, len(pathArr))
		for j, rawStep := range pathArr {
			stepMap, ok := rawStep.(map[string]any)
			if !ok {
				return nil, codecerr.AtField(codecerr.InvalidPathSet, def.Name, "expected a path step object")
			}
			step := PathStep{}
			if accountRaw, ok := stepMap["account"]; ok {
				val, err := accountIDFromJSON(accountRaw, def)
				if err != nil {
					return nil, err
				}
				step.hasAccount = true
				step.account = val.(AccountID)
			}
			if currencyRaw, ok := stepMap["currency"]; ok {
				currencyStr, _ := currencyRaw.(string)
				currency, err := currencyFromString(currencyStr, def)
				if err != nil {
					return nil, err
				}
				step.hasCurrency = true
				step.currency = currency
			}
			if issuerRaw, ok := stepMap["issuer"]; ok {
				val, err := accountIDFromJSON(issuerRaw, def)
				if err != nil {
					return nil, err
				}
				step.hasIssuer = true
				step.issuer = val.(AccountID)
			}
			if !step.hasAccount && !step.hasCurrency && !step.hasIssuer {
				return nil, codecerr.AtField(codecerr.InvalidPathSet, def.Name, "path step declares no fields")
			}
			steps[j] = step
		}
		paths[i] = steps
	}
	return PathSet{paths: paths}, nil
}

func (ps PathSet) ToBytes() []byte {
	var out []byte
	for i, path := range ps.paths {
		if i > 0 {
			out = append(out, pathSeparator)
		}
		for _, step := range path {
			var flag byte
			if step.hasAccount {
				flag |= pathStepAccount
			}
			if step.hasCurrency {
				flag |= pathStepCurrency
			}
			if step.hasIssuer {
				flag |= pathStepIssuer
			}
			out = append(out, flag)
			if step.hasAccount {
				out = append(out, step.account.ToBytes()...)
			}
			if step.hasCurrency {
				out = append(out, step.currency.ToBytes()...)
			}
			if step.hasIssuer {
				out = append(out, step.issuer.ToBytes()...)
			}
		}
	}
	out = append(out, pathSetEnd)
	return out
}

func (ps PathSet) ToJSON() (any, error) {
	outer := make([]any, len(ps.paths))
	for i, path := range ps.paths {
		steps := make([]any, len(path))
		for j, step := range path {
			m := map[string]any{}
			if step.hasAccount {
				v, err := step.account.ToJSON()
				if err != nil {
					return nil, err
				}
				m["account"] = v
			}
			if step.hasCurrency {
				v, err := step.currency.ToJSON()
				if err != nil {
					return nil, err
				}
				m["currency"] = v
			}
			if step.hasIssuer {
				v, err := step.issuer.ToJSON()
				if err != nil {
					return nil, err
				}
				m["issuer"] = v
			}
			steps[j] = m
		}
		outer[i] = steps
	}
	return outer, nil
}
