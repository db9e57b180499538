// Package definitions loads the static field/type table that binds field names to
// their wire encoding and enumerates the transaction-result / type / ledger-entry-type
// code mappings. It is the single source of truth consulted by every other codec
// package; no field or type number is ever hardcoded outside this table.
package definitions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ledgerkit/binarycodec/internal/codec/codecerr"
)

//go:embed definitions.json
var definitionsAsset []byte

// FieldDefinition describes one field's wire encoding. It is immutable once loaded.
type FieldDefinition struct {
	Name           string
	Type           string
	TypeCode       int
	FieldCode      int
	IsVLEncoded    bool
	IsSerialized   bool
	IsSigningField bool
}

// TypeDefinition names one wire type and its numeric code. Negative codes are
// reserved for structural/sentinel types (Done, Unknown); zero is NotPresent.
type TypeDefinition struct {
	Name string
	Code int
}

type rawFieldInfo struct {
	Nth            int    `json:"nth"`
	IsVLEncoded    bool   `json:"isVLEncoded"`
	IsSerialized   bool   `json:"isSerialized"`
	IsSigningField bool   `json:"isSigningField"`
	Type           string `json:"type"`
}

type rawAsset struct {
	Types              map[string]int    `json:"TYPES"`
	Fields             []json.RawMessage `json:"FIELDS"`
	LedgerEntryTypes   map[string]int    `json:"LEDGER_ENTRY_TYPES"`
	TransactionTypes   map[string]int    `json:"TRANSACTION_TYPES"`
	TransactionResults map[string]int    `json:"TRANSACTION_RESULTS"`
}

// Registry is the immutable, process-wide table of field and type definitions.
type Registry struct {
	fieldsByName          map[string]FieldDefinition
	fieldsByHeader         map[[2]int]FieldDefinition
	types                  map[string]int
	typeNamesByCode        map[int]string
	ledgerEntryTypes       map[string]int
	ledgerEntryTypeNames   map[int]string
	transactionTypes       map[string]int
	transactionTypeNames   map[int]string
	transactionResults     map[string]int
	transactionResultNames map[int]string
}

var (
	once     sync.Once
	instance *Registry
	loadErr  error
)

// Default returns the process-wide registry, loading it from the embedded asset on
// first use. It panics if the embedded asset is malformed, since that is a build-time
// defect rather than a runtime condition callers can recover from.
func Default() *Registry {
	once.Do(func() {
		instance, loadErr = load(definitionsAsset)
		if loadErr != nil {
			panic(fmt.Sprintf("definitions: failed to load embedded asset: %v", loadErr))
		}
	})
	return instance
}

func load(raw []byte) (*Registry, error) {
	var asset rawAsset
	if err := json.Unmarshal(raw, &asset); err != nil {
		return nil, fmt.Errorf("parse definitions asset: %w", err)
	}

	reg := &Registry{
		fieldsByName:           make(map[string]FieldDefinition, len(asset.Fields)),
		fieldsByHeader:         make(map[[2]int]FieldDefinition, len(asset.Fields)),
		types:                  asset.Types,
		typeNamesByCode:        make(map[int]string, len(asset.Types)),
		ledgerEntryTypes:       asset.LedgerEntryTypes,
		ledgerEntryTypeNames:   make(map[int]string, len(asset.LedgerEntryTypes)),
		transactionTypes:       asset.TransactionTypes,
		transactionTypeNames:   make(map[int]string, len(asset.TransactionTypes)),
		transactionResults:     asset.TransactionResults,
		transactionResultNames: make(map[int]string, len(asset.TransactionResults)),
	}

	for name, code := range asset.Types {
		reg.typeNamesByCode[code] = name
	}
	for name, code := range asset.LedgerEntryTypes {
		reg.ledgerEntryTypeNames[code] = name
	}
	for name, code := range asset.TransactionTypes {
		reg.transactionTypeNames[code] = name
	}
	for name, code := range asset.TransactionResults {
		reg.transactionResultNames[code] = name
	}

	for _, raw := range asset.Fields {
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
			return nil, fmt.Errorf("malformed FIELDS entry: %s", raw)
		}
		var name string
		if err := json.Unmarshal(pair[0], &name); err != nil {
			return nil, fmt.Errorf("malformed FIELDS entry name: %s", pair[0])
		}
		var info rawFieldInfo
		if err := json.Unmarshal(pair[1], &info); err != nil {
			return nil, fmt.Errorf("malformed FIELDS entry info for %q: %w", name, err)
		}
		typeCode, ok := reg.types[info.Type]
		if !ok {
			return nil, fmt.Errorf("field %q references unknown type %q", name, info.Type)
		}
		def := FieldDefinition{
			Name:           name,
			Type:           info.Type,
			TypeCode:       typeCode,
			FieldCode:      info.Nth,
			IsVLEncoded:    info.IsVLEncoded,
			IsSerialized:   info.IsSerialized,
			IsSigningField: info.IsSigningField,
		}
		reg.fieldsByName[name] = def
		reg.fieldsByHeader[[2]int{typeCode, info.Nth}] = def
	}

	return reg, nil
}

// FieldByName returns the FieldDefinition for name, or UnknownField.
func (r *Registry) FieldByName(name string) (FieldDefinition, error) {
	def, ok := r.fieldsByName[name]
	if !ok {
		return FieldDefinition{}, codecerr.AtField(codecerr.UnknownField, name, "no such field in registry")
	}
	return def, nil
}

// FieldByHeader returns the FieldDefinition for a decoded (typeCode, fieldCode) pair.
func (r *Registry) FieldByHeader(typeCode, fieldCode int) (FieldDefinition, error) {
	def, ok := r.fieldsByHeader[[2]int{typeCode, fieldCode}]
	if !ok {
		return FieldDefinition{}, codecerr.Plain(codecerr.UnknownField,
			fmt.Sprintf("no field for header (type=%d, field=%d)", typeCode, fieldCode))
	}
	return def, nil
}

// TypeCode returns the numeric code for a type name.
func (r *Registry) TypeCode(typeName string) (int, error) {
	code, ok := r.types[typeName]
	if !ok {
		return 0, codecerr.Plain(codecerr.UnknownField, fmt.Sprintf("no such type %q", typeName))
	}
	return code, nil
}

// TypeName returns the type name for a numeric code.
func (r *Registry) TypeName(code int) (string, error) {
	name, ok := r.typeNamesByCode[code]
	if !ok {
		return "", codecerr.Plain(codecerr.UnknownField, fmt.Sprintf("no type registered for code %d", code))
	}
	return name, nil
}

// TransactionTypeCode maps a transaction type name to its numeric code.
func (r *Registry) TransactionTypeCode(name string) (int, error) {
	code, ok := r.transactionTypes[name]
	if !ok {
		return 0, codecerr.Plain(codecerr.UnknownField, fmt.Sprintf("no such transaction type %q", name))
	}
	return code, nil
}

// TransactionTypeName maps a numeric transaction type code to its name.
func (r *Registry) TransactionTypeName(code int) (string, error) {
	name, ok := r.transactionTypeNames[code]
	if !ok {
		return "", codecerr.Plain(codecerr.UnknownField, fmt.Sprintf("no transaction type registered for code %d", code))
	}
	return name, nil
}

// TransactionResultCode maps a transaction result name (e.g. "tesSUCCESS") to its code.
func (r *Registry) TransactionResultCode(name string) (int, error) {
	code, ok := r.transactionResults[name]
	if !ok {
		return 0, codecerr.Plain(codecerr.UnknownField, fmt.Sprintf("no such transaction result %q", name))
	}
	return code, nil
}

// TransactionResultName maps a numeric transaction result code to its name.
func (r *Registry) TransactionResultName(code int) (string, error) {
	name, ok := r.transactionResultNames[code]
	if !ok {
		return "", codecerr.Plain(codecerr.UnknownField, fmt.Sprintf("no transaction result registered for code %d", code))
	}
	return name, nil
}

// LedgerEntryTypeCode maps a ledger entry type name to its numeric code.
func (r *Registry) LedgerEntryTypeCode(name string) (int, error) {
	code, ok := r.ledgerEntryTypes[name]
	if !ok {
		return 0, codecerr.Plain(codecerr.UnknownField, fmt.Sprintf("no such ledger entry type %q", name))
	}
	return code, nil
}

// LedgerEntryTypeName maps a numeric ledger entry type code to its name.
func (r *Registry) LedgerEntryTypeName(code int) (string, error) {
	name, ok := r.ledgerEntryTypeNames[code]
	if !ok {
		return "", codecerr.Plain(codecerr.UnknownField, fmt.Sprintf("no ledger entry type registered for code %d", code))
	}
	return name, nil
}

// Fields returns a snapshot of every registered field definition, for enumeration by
// diagnostic tooling and tests. Callers must not mutate the result's contents.
func (r *Registry) Fields() []FieldDefinition {
	out := make([]FieldDefinition, 0, len(r.fieldsByName))
	for _, def := range r.fieldsByName {
		out = append(out, def)
	}
	return out
}

// Types returns a snapshot of every registered wire type name and code, for enumeration
// by diagnostic tooling and tests.
func (r *Registry) Types() []TypeDefinition {
	out := make([]TypeDefinition, 0, len(r.types))
	for name, code := range r.types {
		out = append(out, TypeDefinition{Name: name, Code: code})
	}
	return out
}
