package stypes

import (
	"sort"

	xbinary "github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

// Field pairs a resolved FieldDefinition with its decoded/constructed Value.
type Field struct {
	Def definitions.FieldDefinition
	Val Value
}

// STObject is an ordered sequence of (FieldDefinition, Value) pairs, always held in
// canonical (type_code, field_code) order once constructed — the only field ordering
// this codec ever produces on the wire.
type STObject struct {
	Fields []Field
}

// Filter selects which fields a given serialization pass emits. FullFilter and
// SigningFilter are the two compositions this codec ever uses; both start from
// isSerialized, since a field the registry marks non-serialized never touches the wire.
type Filter func(definitions.FieldDefinition) bool

// FullFilter emits every serialized field, for ordinary (non-signing) encode.
func FullFilter(def definitions.FieldDefinition) bool {
	return def.IsSerialized
}

// SigningFilter emits only fields that are both serialized and marked for signing.
func SigningFilter(def definitions.FieldDefinition) bool {
	return def.IsSerialized && def.IsSigningField
}

func sortFields(fields []Field) {
	sort.SliceStable(fields, func(i, j int) bool {
		a, b := fields[i].Def, fields[j].Def
		if a.TypeCode != b.TypeCode {
			return a.TypeCode < b.TypeCode
		}
		return a.FieldCode < b.FieldCode
	})
}

// stObjectFromJSON builds an STObject from a JSON object, resolving every key against
// the registry (strict: unknown keys fail UnknownField) and sorting the result into
// canonical order. Input key order is deliberately irrelevant.
func stObjectFromJSON(reg *definitions.Registry, containerDef definitions.FieldDefinition, v any) (Value, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, codecerr.AtField(codecerr.TypeMismatch, containerDef.Name, "expected a JSON object")
	}
	return BuildSTObject(reg, m)
}

// BuildSTObject is the shared entry point for constructing an STObject from a JSON
// object, used both for nested object fields and for the top-level transaction/ledger
// object the facade encodes.
func BuildSTObject(reg *definitions.Registry, m map[string]any) (STObject, error) {
	fields := make([]Field, 0, len(m))
	for name, raw := range m {
		def, err := reg.FieldByName(name)
		if err != nil {
			return STObject{}, err
		}
		val, err := FromJSONField(reg, def, raw)
		if err != nil {
			return STObject{}, err
		}
		fields = append(fields, Field{Def: def, Val: val})
	}
	sortFields(fields)
	return STObject{Fields: fields}, nil
}

// SerializeInto writes every field passing filter, in canonical order, into bl. It does
// not itself append an ObjectEndMarker — that is the caller's responsibility when this
// STObject is being written as a nested field value rather than the top-level object.
func (o STObject) SerializeInto(bl *xbinary.BytesList, filter Filter) error {
	for _, f := range o.Fields {
		if !filter(f.Def) {
			continue
		}
		if err := writeField(bl, f, filter); err != nil {
			return err
		}
	}
	return nil
}

func writeField(bl *xbinary.BytesList, f Field, filter Filter) error {
	header, err := xbinary.EncodeFieldHeader(f.Def.TypeCode, f.Def.FieldCode)
	if err != nil {
		return codecerr.AtFieldWrap(codecerr.MalformedHeader, f.Def.Name, "failed to encode field header", err)
	}
	bl.Put(header)

	if nested, ok := f.Val.(STObject); ok {
		if err := nested.SerializeInto(bl, filter); err != nil {
			return err
		}
		bl.PutByte(xbinary.ObjectEndMarkerByte)
		return nil
	}
	if arr, ok := f.Val.(STArray); ok {
		return arr.serializeBody(bl, filter)
	}

	payload := f.Val.ToBytes()
	if f.Def.IsVLEncoded {
		if err := bl.PutVL(payload); err != nil {
			return codecerr.AtFieldWrap(codecerr.MalformedHeader, f.Def.Name, "failed to encode VL prefix", err)
		}
		return nil
	}
	bl.Put(payload)
	return nil
}

// ToBytes serializes the object under FullFilter with no ObjectEndMarker. It exists to
// satisfy the Value interface for round-tripping nested field decode results, but
// top-level and nested serialization always goes through SerializeInto/writeField so
// the marker placement stays correct.
func (o STObject) ToBytes() []byte {
	bl := xbinary.NewBytesList(0)
	_ = o.SerializeInto(bl, FullFilter)
	return bl.Bytes()
}

// ToJSON renders the object's fields as a map keyed by field name. The map carries no
// field order: encoding/json writes its keys sorted by name, not in canonical
// (type_code, field_code) or registry order.
func (o STObject) ToJSON() (any, error) {
	out := make(map[string]any, len(o.Fields))
	for _, f := range o.Fields {
		j, err := f.Val.ToJSON()
		if err != nil {
			return nil, err
		}
		out[f.Def.Name] = j
	}
	return out, nil
}

// parseSTObjectNested decodes an STObject that is itself the value of a field — it
// reads fields until it consumes an ObjectEndMarker.
func parseSTObjectNested(p *xbinary.Parser, reg *definitions.Registry) (Value, error) {
	fields, err := decodeFields(p, reg, true)
	if err != nil {
		return nil, err
	}
	return STObject{Fields: fields}, nil
}

// DecodeTopLevelSTObject decodes a whole buffer as a single top-level STObject. A
// top-level object has no end marker, so it reads fields until the buffer is exhausted:
// it either consumes the buffer in full or fails on the first bytes that do not form a
// complete, registered field.
func DecodeTopLevelSTObject(p *xbinary.Parser, reg *definitions.Registry) (STObject, error) {
	fields, err := decodeFields(p, reg, false)
	if err != nil {
		return STObject{}, err
	}
	return STObject{Fields: fields}, nil
}

func decodeFields(p *xbinary.Parser, reg *definitions.Registry, nested bool) ([]Field, error) {
	var fields []Field
	for {
		if nested {
			isEnd, err := p.PeekFieldHeaderIsObjectEnd()
			if err != nil {
				return nil, err
			}
			if isEnd {
				_ = mustSkip(p, 1)
				break
			}
		} else if p.End() {
			break
		}

		def, err := p.ReadFieldHeader()
		if err != nil {
			return nil, err
		}
		if !def.IsSerialized {
			return nil, codecerr.Plain(codecerr.UnknownField, "decoded a field the registry marks isSerialized=false: "+def.Name)
		}
		val, err := ParseField(p, reg, def)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Def: def, Val: val})
	}
	return fields, nil
}

func mustSkip(p *xbinary.Parser, n int) error {
	return p.Skip(n)
}
