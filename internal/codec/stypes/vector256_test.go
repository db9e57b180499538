package stypes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

func TestVector256_RoundTrip(t *testing.T) {
	def := mustField(t, "Indexes")
	arr := []any{
		"0100000000000000000000000000000000000000000000000000000000000000"[:64],
		"0200000000000000000000000000000000000000000000000000000000000000"[:64],
	}
	val, err := vector256FromJSON(arr, def)
	require.NoError(t, err)

	b := val.ToBytes()
	require.Len(t, b, 64)

	p := binary.NewParser(b, definitions.Default())
	parsed, err := parseVector256(p, len(b))
	require.NoError(t, err)
	require.True(t, p.End())
	require.Equal(t, val, parsed)

	j, err := val.ToJSON()
	require.NoError(t, err)
	list, ok := j.([]string)
	require.True(t, ok)
	require.Len(t, list, 2)
}

func TestVector256_MisalignedLength(t *testing.T) {
	p := binary.NewParser(make([]byte, 33), definitions.Default())
	_, err := parseVector256(p, 33)
	require.Error(t, err)
}

func TestVector256_NegativeHintRejected(t *testing.T) {
	p := binary.NewParser(nil, definitions.Default())
	_, err := parseVector256(p, -1)
	require.Error(t, err)
}

func TestVector256_ExpectsArray(t *testing.T) {
	def := mustField(t, "Indexes")
	_, err := vector256FromJSON("not-an-array", def)
	require.Error(t, err)
}
