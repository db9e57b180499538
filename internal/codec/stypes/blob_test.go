package stypes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

func TestBlob_RoundTrip(t *testing.T) {
	def := mustField(t, "MemoData")
	val, err := blobFromJSON("DEADBEEF", def)
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, val.ToBytes())

	p := binary.NewParser(val.ToBytes(), definitions.Default())
	parsed, err := parseBlob(p, 4)
	require.NoError(t, err)
	require.Equal(t, val, parsed)

	j, err := parsed.ToJSON()
	require.NoError(t, err)
	require.Equal(t, "DEADBEEF", j)
}

func TestBlob_EmptyPayload(t *testing.T) {
	def := mustField(t, "MemoData")
	val, err := blobFromJSON("", def)
	require.NoError(t, err)
	require.Empty(t, val.ToBytes())
}

func TestBlob_MissingHintRejected(t *testing.T) {
	p := binary.NewParser([]byte{1, 2, 3}, definitions.Default())
	_, err := parseBlob(p, noHint)
	require.Error(t, err)
}

func TestBlob_InvalidHex(t *testing.T) {
	def := mustField(t, "MemoData")
	_, err := blobFromJSON("zz", def)
	require.Error(t, err)
}
