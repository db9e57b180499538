package stypes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

func TestIssue_XRPString(t *testing.T) {
	def := mustField(t, "Asset")
	val, err := issueFromJSON("XRP", def)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 20), val.ToBytes())

	j, err := val.ToJSON()
	require.NoError(t, err)
	require.Equal(t, "XRP", j)
}

func TestIssue_NonXRPRoundTrip(t *testing.T) {
	def := mustField(t, "Asset")
	m := map[string]any{
		"currency": "USD",
		"issuer":   "rrpDp2dLMs7KyhZhg5RbReRagjWuvH7qB",
	}
	val, err := issueFromJSON(m, def)
	require.NoError(t, err)
	require.Len(t, val.ToBytes(), 40)

	p := binary.NewParser(val.ToBytes(), definitions.Default())
	parsed, err := parseIssue(p)
	require.NoError(t, err)
	require.Equal(t, val, parsed)
}

func TestIssue_ObjectFormXRPCollapses(t *testing.T) {
	def := mustField(t, "Asset")
	m := map[string]any{"currency": "XRP"}
	val, err := issueFromJSON(m, def)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 20), val.ToBytes())
}

func TestIssue_BareStringMustBeXRP(t *testing.T) {
	def := mustField(t, "Asset")
	_, err := issueFromJSON("USD", def)
	require.Error(t, err)
}

func TestIssue_ParseDetectsAllZeroAsXRP(t *testing.T) {
	p := binary.NewParser(make([]byte, 20), definitions.Default())
	val, err := parseIssue(p)
	require.NoError(t, err)
	j, err := val.ToJSON()
	require.NoError(t, err)
	require.Equal(t, "XRP", j)
}
