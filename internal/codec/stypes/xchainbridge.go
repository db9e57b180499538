package stypes

import (
	xbinary "github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

// XChainBridge names the four fixed slots of a cross-chain bridge: an account door and
// an Issue on each side. Each door AccountID is preceded by its own VL-length marker
// byte (always 0x14, i.e. the encoded length 20) even though the bridge as a whole is
// not itself VL-encoded.
type XChainBridge struct {
	lockingDoor  AccountID
	lockingIssue Issue
	issuingDoor  AccountID
	issuingIssue Issue
}

func parseXChainBridge(p *xbinary.Parser) (Value, error) {
	lockingDoor, err := readVLPrefixedAccountID(p)
	if err != nil {
		return nil, err
	}
	lockingIssueVal, err := parseIssue(p)
	if err != nil {
		return nil, err
	}
	issuingDoor, err := readVLPrefixedAccountID(p)
	if err != nil {
		return nil, err
	}
	issuingIssueVal, err := parseIssue(p)
	if err != nil {
		return nil, err
	}
	return XChainBridge{
		lockingDoor:  lockingDoor,
		lockingIssue: lockingIssueVal.(Issue),
		issuingDoor:  issuingDoor,
		issuingIssue: issuingIssueVal.(Issue),
	}, nil
}

func readVLPrefixedAccountID(p *xbinary.Parser) (AccountID, error) {
	length, err := p.ReadVLLength()
	if err != nil {
		return AccountID{}, err
	}
	if length != 20 {
		return AccountID{}, codecerr.Plain(codecerr.MalformedHeader, "XChainBridge door AccountID must have VL length 20")
	}
	val, err := parseAccountID(p, 20)
	if err != nil {
		return AccountID{}, err
	}
	return val.(AccountID), nil
}

func xChainBridgeFromJSON(v any, def definitions.FieldDefinition) (Value, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, codecerr.AtField(codecerr.TypeMismatch, def.Name, "expected an XChainBridge object")
	}
	lockingDoor, err := requireAccountID(m, "LockingChainDoor", def)
	if err != nil {
		return nil, err
	}
	lockingIssue, err := requireIssue(m, "LockingChainIssue", def)
	if err != nil {
		return nil, err
	}
	issuingDoor, err := requireAccountID(m, "IssuingChainDoor", def)
	if err != nil {
		return nil, err
	}
	issuingIssue, err := requireIssue(m, "IssuingChainIssue", def)
	if err != nil {
		return nil, err
	}
	return XChainBridge{
		lockingDoor:  lockingDoor,
		lockingIssue: lockingIssue,
		issuingDoor:  issuingDoor,
		issuingIssue: issuingIssue,
	}, nil
}

func requireAccountID(m map[string]any, key string, def definitions.FieldDefinition) (AccountID, error) {
	raw, ok := m[key]
	if !ok {
		return AccountID{}, codecerr.AtField(codecerr.TypeMismatch, def.Name, "XChainBridge missing "+key)
	}
	val, err := accountIDFromJSON(raw, def)
	if err != nil {
		return AccountID{}, err
	}
	return val.(AccountID), nil
}

func requireIssue(m map[string]any, key string, def definitions.FieldDefinition) (Issue, error) {
	raw, ok := m[key]
	if !ok {
		return Issue{}, codecerr.AtField(codecerr.TypeMismatch, def.Name, "XChainBridge missing "+key)
	}
	val, err := issueFromJSON(raw, def)
	if err != nil {
		return Issue{}, err
	}
	return val.(Issue), nil
}

func (x XChainBridge) ToBytes() []byte {
	var out []byte
	out = append(out, 0x14)
	out = append(out, x.lockingDoor.ToBytes()...)
	out = append(out, x.lockingIssue.ToBytes()...)
	out = append(out, 0x14)
	out = append(out, x.issuingDoor.ToBytes()...)
	out = append(out, x.issuingIssue.ToBytes()...)
	return out
}

func (x XChainBridge) ToJSON() (any, error) {
	lockingDoorJSON, err := x.lockingDoor.ToJSON()
	if err != nil {
		return nil, err
	}
	lockingIssueJSON, err := x.lockingIssue.ToJSON()
	if err != nil {
		return nil, err
	}
	issuingDoorJSON, err := x.issuingDoor.ToJSON()
	if err != nil {
		return nil, err
	}
	issuingIssueJSON, err := x.issuingIssue.ToJSON()
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"LockingChainDoor":  lockingDoorJSON,
		"LockingChainIssue": lockingIssueJSON,
		"IssuingChainDoor":  issuingDoorJSON,
		"IssuingChainIssue": issuingIssueJSON,
	}, nil
}
