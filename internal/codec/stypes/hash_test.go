package stypes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

func TestHash256_RoundTrip(t *testing.T) {
	def := mustField(t, "LedgerHash")
	hex := strings.Repeat("AB", 32)
	val, err := hashFromJSON(hex, def, 32)
	require.NoError(t, err)
	require.Len(t, val.ToBytes(), 32)

	p := binary.NewParser(val.ToBytes(), definitions.Default())
	parsed, err := parseHash(p, 32)
	require.NoError(t, err)
	require.Equal(t, val, parsed)

	j, err := parsed.ToJSON()
	require.NoError(t, err)
	require.Equal(t, hex, j)
}

func TestHash_CaseInsensitiveInput(t *testing.T) {
	def := mustField(t, "LedgerHash")
	upper, err := hashFromJSON(strings.Repeat("AB", 32), def, 32)
	require.NoError(t, err)
	lower, err := hashFromJSON(strings.Repeat("ab", 32), def, 32)
	require.NoError(t, err)
	require.Equal(t, upper, lower)
}

func TestHash_WrongLength(t *testing.T) {
	def := mustField(t, "EmailHash")
	_, err := hashFromJSON(strings.Repeat("AB", 20), def, 16)
	require.Error(t, err)
}

func TestHash_InvalidHex(t *testing.T) {
	def := mustField(t, "LedgerHash")
	_, err := hashFromJSON("not-hex", def, 32)
	require.Error(t, err)
}
