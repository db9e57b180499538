package stypes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

func TestXChainBridge_RoundTrip(t *testing.T) {
	def := mustField(t, "XChainBridge")
	m := map[string]any{
		"LockingChainDoor":  "rrrrrrrrrrrrrrrrrrrrrhoLvTp",
		"LockingChainIssue": "XRP",
		"IssuingChainDoor":  "rrpDp2dLMs7KyhZhg5RbReRagjWuvH7qB",
		"IssuingChainIssue": map[string]any{
			"currency": "USD",
			"issuer":   "rrpDp2dLMs7KyhZhg5RbReRagjWuvH7qB",
		},
	}
	val, err := xChainBridgeFromJSON(m, def)
	require.NoError(t, err)

	b := val.ToBytes()
	// marker(1) + lockingDoor(20) + lockingIssue-XRP(20) + marker(1) + issuingDoor(20) + issuingIssue(40)
	require.Len(t, b, 1+20+20+1+20+40)
	require.Equal(t, byte(0x14), b[0])
	require.Equal(t, byte(0x14), b[41])

	p := binary.NewParser(b, definitions.Default())
	parsed, err := parseXChainBridge(p)
	require.NoError(t, err)
	require.True(t, p.End())
	require.Equal(t, val, parsed)
}

func TestXChainBridge_MissingField(t *testing.T) {
	def := mustField(t, "XChainBridge")
	_, err := xChainBridgeFromJSON(map[string]any{}, def)
	require.Error(t, err)
}
