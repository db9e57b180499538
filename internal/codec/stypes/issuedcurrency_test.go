package stypes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

func TestIssuedCurrency_RoundTrip(t *testing.T) {
	def := mustField(t, "LockingChainIssue")
	m := map[string]any{
		"currency": "USD",
		"issuer":   "rrpDp2dLMs7KyhZhg5RbReRagjWuvH7qB",
	}
	val, err := issuedCurrencyFromJSON(m, def)
	require.NoError(t, err)
	require.Len(t, val.ToBytes(), 40)

	p := binary.NewParser(val.ToBytes(), definitions.Default())
	parsed, err := parseIssuedCurrency(p)
	require.NoError(t, err)
	require.Equal(t, val, parsed)
}

func TestIssuedCurrency_NoXRPCollapse(t *testing.T) {
	def := mustField(t, "LockingChainIssue")
	m := map[string]any{
		"currency": "XRP",
		"issuer":   "rrpDp2dLMs7KyhZhg5RbReRagjWuvH7qB",
	}
	val, err := issuedCurrencyFromJSON(m, def)
	require.NoError(t, err)
	j, err := val.ToJSON()
	require.NoError(t, err)
	m2, ok := j.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "XRP", m2["currency"])
}

func TestIssuedCurrency_MissingFields(t *testing.T) {
	def := mustField(t, "LockingChainIssue")
	_, err := issuedCurrencyFromJSON(map[string]any{"currency": "USD"}, def)
	require.Error(t, err)
}
