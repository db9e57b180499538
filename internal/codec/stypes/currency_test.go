package stypes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

func TestCurrency_XRP(t *testing.T) {
	def := mustField(t, "LimitAmount")
	val, err := currencyFromJSON("XRP", def)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 20), val.ToBytes())

	j, err := val.ToJSON()
	require.NoError(t, err)
	require.Equal(t, "XRP", j)
}

func TestCurrency_StandardCode(t *testing.T) {
	def := mustField(t, "LimitAmount")
	val, err := currencyFromJSON("USD", def)
	require.NoError(t, err)
	b := val.ToBytes()
	require.Equal(t, []byte("USD"), b[12:15])

	j, err := val.ToJSON()
	require.NoError(t, err)
	require.Equal(t, "USD", j)
}

func TestCurrency_NonStandardHex(t *testing.T) {
	def := mustField(t, "LimitAmount")
	hex := "0158415500000000C1F76FF6ECB0BAC600000000"
	val, err := currencyFromJSON(hex, def)
	require.NoError(t, err)

	j, err := val.ToJSON()
	require.NoError(t, err)
	require.Equal(t, hex, j)
}

func TestCurrency_BytesRoundTrip(t *testing.T) {
	def := mustField(t, "LimitAmount")
	val, err := currencyFromJSON("EUR", def)
	require.NoError(t, err)

	p := binary.NewParser(val.ToBytes(), definitions.Default())
	parsed, err := parseCurrency(p)
	require.NoError(t, err)
	require.Equal(t, val, parsed)
}

func TestCurrency_InvalidCode(t *testing.T) {
	def := mustField(t, "LimitAmount")
	_, err := currencyFromJSON("not valid", def)
	require.Error(t, err)
}
