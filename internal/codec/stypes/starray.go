package stypes

import (
	xbinary "github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

// STArray is an ordered sequence of wrapped STObjects — each element on the wire is a
// single-field-name object like {"Memo": {...}}, and array order is preserved exactly
// as given; unlike STObject fields, array elements are never sorted.
type STArray struct {
	Elements []Field
}

func parseSTArray(p *xbinary.Parser, reg *definitions.Registry) (Value, error) {
	var elements []Field
	for {
		isEnd, err := p.PeekFieldHeaderIsArrayEnd()
		if err != nil {
			return nil, err
		}
		if isEnd {
			if err := p.Skip(1); err != nil {
				return nil, err
			}
			break
		}
		def, err := p.ReadFieldHeader()
		if err != nil {
			return nil, err
		}
		inner, err := parseSTObjectNested(p, reg)
		if err != nil {
			return nil, err
		}
		elements = append(elements, Field{Def: def, Val: inner})
	}
	return STArray{Elements: elements}, nil
}

func stArrayFromJSON(reg *definitions.Registry, containerDef definitions.FieldDefinition, v any) (Value, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, codecerr.AtField(codecerr.TypeMismatch, containerDef.Name, "expected an array")
	}
	elements := make([]Field, 0, len(arr))
	for _, item := range arr {
		m, ok := item.(map[string]any)
		if !ok || len(m) != 1 {
			return nil, codecerr.AtField(codecerr.TypeMismatch, containerDef.Name, "expected each array element to be a single-key wrapper object")
		}
		for name, inner := range m {
			def, err := reg.FieldByName(name)
			if err != nil {
				return nil, err
			}
			val, err := FromJSONField(reg, def, inner)
			if err != nil {
				return nil, err
			}
			elements = append(elements, Field{Def: def, Val: val})
		}
	}
	return STArray{Elements: elements}, nil
}

// serializeBody writes the array's elements followed by the ArrayEndMarker. The
// caller (writeField) has already written the field header for the array field itself.
func (a STArray) serializeBody(bl *xbinary.BytesList, filter Filter) error {
	for _, elem := range a.Elements {
		inner, ok := elem.Val.(STObject)
		if !ok {
			return codecerr.AtField(codecerr.TypeMismatch, elem.Def.Name, "STArray element must decode to an STObject")
		}
		if err := writeField(bl, Field{Def: elem.Def, Val: inner}, filter); err != nil {
			return err
		}
	}
	bl.PutByte(xbinary.ArrayEndMarkerByte)
	return nil
}

func (a STArray) ToBytes() []byte {
	bl := xbinary.NewBytesList(0)
	_ = a.serializeBody(bl, FullFilter)
	return bl.Bytes()
}

func (a STArray) ToJSON() (any, error) {
	out := make([]any, len(a.Elements))
	for i, elem := range a.Elements {
		j, err := elem.Val.ToJSON()
		if err != nil {
			return nil, err
		}
		out[i] = map[string]any{elem.Def.Name: j}
	}
	return out, nil
}
