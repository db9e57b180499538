package stypes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

func TestPathSet_RoundTrip_MultiplePaths(t *testing.T) {
	def := mustField(t, "Paths")
	acct1 := "rrpDp2dLMs7KyhZhg5RbReRagjWuvH7qB"
	acct2 := "rrrrrrrrrrrrrrrrrrrrrhoLvTp"
	raw := []any{
		[]any{
			map[string]any{"account": acct1},
			map[string]any{"account": acct2},
		},
		[]any{
			map[string]any{"currency": "USD", "issuer": acct1},
			map[string]any{"account": acct2},
			map[string]any{"account": acct1},
		},
	}
	val, err := pathSetFromJSON(raw, def)
	require.NoError(t, err)

	b := val.ToBytes()
	require.Equal(t, byte(pathSeparator), b[countStepBytes(t, 2)])
	require.Equal(t, byte(pathSetEnd), b[len(b)-1])
	require.Equal(t, 1, countOccurrences(b[:len(b)-1], pathSeparator))

	p := binary.NewParser(b, definitions.Default())
	parsed, err := parsePathSet(p)
	require.NoError(t, err)
	require.True(t, p.End())
	require.Equal(t, val, parsed)
}

func TestPathSet_SinglePath(t *testing.T) {
	def := mustField(t, "Paths")
	acct1 := "rrpDp2dLMs7KyhZhg5RbReRagjWuvH7qB"
	raw := []any{
		[]any{
			map[string]any{"account": acct1},
		},
	}
	val, err := pathSetFromJSON(raw, def)
	require.NoError(t, err)
	b := val.ToBytes()
	require.Equal(t, 0, countOccurrences(b[:len(b)-1], pathSeparator))
	require.Equal(t, byte(pathSetEnd), b[len(b)-1])
}

func TestPathSet_StepWithNoFieldsRejected(t *testing.T) {
	// 0x02 is a step flag byte with none of the account/currency/issuer bits set.
	p := binary.NewParser([]byte{0x02, 0x00}, definitions.Default())
	_, err := parsePathSet(p)
	require.Error(t, err)
}

func TestPathSet_JSONStepWithNoFieldsRejected(t *testing.T) {
	def := mustField(t, "Paths")
	raw := []any{
		[]any{
			map[string]any{},
		},
	}
	_, err := pathSetFromJSON(raw, def)
	require.Error(t, err)
}

func countOccurrences(b []byte, target byte) int {
	n := 0
	for _, v := range b {
		if v == target {
			n++
		}
	}
	return n
}

// countStepBytes returns the byte offset of the separator following the first
// path, computed independently of ToBytes to sanity-check the layout of the
// first two-step path (account, account) in TestPathSet_RoundTrip_MultiplePaths.
func countStepBytes(t *testing.T, steps int) int {
	t.Helper()
	// each account-only step: 1 flag byte + 20 account bytes
	return steps * 21
}
