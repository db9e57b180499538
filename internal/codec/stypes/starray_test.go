package stypes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

func TestSTArray_FromJSON_PreservesOrder(t *testing.T) {
	reg := definitions.Default()
	memosDef, err := reg.FieldByName("Memos")
	require.NoError(t, err)

	raw := []any{
		map[string]any{"Memo": map[string]any{"MemoType": "666f6f"}},
		map[string]any{"Memo": map[string]any{"MemoType": "626172"}},
	}
	val, err := stArrayFromJSON(reg, memosDef, raw)
	require.NoError(t, err)
	arr := val.(STArray)
	require.Len(t, arr.Elements, 2)

	j, err := arr.ToJSON()
	require.NoError(t, err)
	list, ok := j.([]any)
	require.True(t, ok)
	require.Len(t, list, 2)

	first, ok := list[0].(map[string]any)
	require.True(t, ok)
	firstMemo, ok := first["Memo"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "666F6F", firstMemo["MemoType"])
}

func TestSTArray_RoundTrip(t *testing.T) {
	reg := definitions.Default()
	memosDef, err := reg.FieldByName("Memos")
	require.NoError(t, err)
	raw := []any{
		map[string]any{"Memo": map[string]any{"MemoType": "666f6f"}},
	}
	val, err := stArrayFromJSON(reg, memosDef, raw)
	require.NoError(t, err)
	arr := val.(STArray)

	bl := binary.NewBytesList(0)
	err = arr.serializeBody(bl, FullFilter)
	require.NoError(t, err)
	b := bl.Bytes()
	require.Equal(t, binary.ArrayEndMarkerByte, b[len(b)-1])

	p := binary.NewParser(b, reg)
	parsed, err := parseSTArray(p, reg)
	require.NoError(t, err)
	require.True(t, p.End())
	require.Equal(t, arr, parsed)
}

func TestSTArray_ExpectsSingleKeyWrapperObjects(t *testing.T) {
	reg := definitions.Default()
	memosDef, err := reg.FieldByName("Memos")
	require.NoError(t, err)
	raw := []any{
		map[string]any{
			"Memo":    map[string]any{"MemoType": "666f6f"},
			"Signer":  map[string]any{},
		},
	}
	_, err = stArrayFromJSON(reg, memosDef, raw)
	require.Error(t, err)
}

func TestSTArray_ExpectsArrayInput(t *testing.T) {
	reg := definitions.Default()
	memosDef, err := reg.FieldByName("Memos")
	require.NoError(t, err)
	_, err = stArrayFromJSON(reg, memosDef, "not-an-array")
	require.Error(t, err)
}
