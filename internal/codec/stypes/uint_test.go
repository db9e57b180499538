package stypes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/binarycodec/internal/codec/binary"
	"github.com/ledgerkit/binarycodec/internal/codec/definitions"
)

func TestUInt8_RoundTrip(t *testing.T) {
	def := mustField(t, "TransactionResult")
	val, err := uint8FromJSON(float64(200), def)
	require.NoError(t, err)
	require.Equal(t, []byte{200}, val.ToBytes())

	p := binary.NewParser([]byte{200}, definitions.Default())
	parsed, err := parseUInt8(p)
	require.NoError(t, err)
	require.Equal(t, val, parsed)

	j, err := parsed.ToJSON()
	require.NoError(t, err)
	require.Equal(t, 200, j)
}

func TestUInt8_NamedCode(t *testing.T) {
	def := mustField(t, "TransactionResult")
	reg := definitions.Default()
	val, err := uint8FromNamedCode("tesSUCCESS", def, reg.TransactionResultCode)
	require.NoError(t, err)
	require.Equal(t, UInt8(0), val)

	_, err = uint8FromNamedCode("notAResult", def, reg.TransactionResultCode)
	require.Error(t, err)
}

func TestUInt16_RoundTrip(t *testing.T) {
	def := mustField(t, "SignerWeight")
	val, err := uint16FromJSON(float64(0xBEEF), def)
	require.NoError(t, err)
	require.Equal(t, []byte{0xBE, 0xEF}, val.ToBytes())

	p := binary.NewParser([]byte{0xBE, 0xEF}, definitions.Default())
	parsed, err := parseUInt16(p)
	require.NoError(t, err)
	require.Equal(t, val, parsed)
}

func TestUInt16_NamedCode(t *testing.T) {
	def := mustField(t, "TransactionType")
	reg := definitions.Default()
	val, err := uint16FromNamedCode("Payment", def, reg.TransactionTypeCode)
	require.NoError(t, err)
	require.Equal(t, UInt16(0), val)
}

func TestParseField_TransactionTypeDecodesToName(t *testing.T) {
	def := mustField(t, "TransactionType")
	reg := definitions.Default()

	encoded, err := FromJSONField(reg, def, "Payment")
	require.NoError(t, err)
	p := binary.NewParser(encoded.ToBytes(), reg)
	decoded, err := ParseField(p, reg, def)
	require.NoError(t, err)

	j, err := decoded.ToJSON()
	require.NoError(t, err)
	require.Equal(t, "Payment", j)
}

func TestParseField_LedgerEntryTypeDecodesToName(t *testing.T) {
	def := mustField(t, "LedgerEntryType")
	reg := definitions.Default()

	encoded, err := FromJSONField(reg, def, "AccountRoot")
	require.NoError(t, err)
	p := binary.NewParser(encoded.ToBytes(), reg)
	decoded, err := ParseField(p, reg, def)
	require.NoError(t, err)

	j, err := decoded.ToJSON()
	require.NoError(t, err)
	require.Equal(t, "AccountRoot", j)
}

func TestParseField_TransactionResultDecodesToName(t *testing.T) {
	def := mustField(t, "TransactionResult")
	reg := definitions.Default()

	encoded, err := FromJSONField(reg, def, "tesSUCCESS")
	require.NoError(t, err)
	p := binary.NewParser(encoded.ToBytes(), reg)
	decoded, err := ParseField(p, reg, def)
	require.NoError(t, err)

	j, err := decoded.ToJSON()
	require.NoError(t, err)
	require.Equal(t, "tesSUCCESS", j)
}

func TestParseField_UnknownTransactionTypeCodeFallsBackToNumber(t *testing.T) {
	def := mustField(t, "TransactionType")
	reg := definitions.Default()

	p := binary.NewParser([]byte{0xFF, 0xFF}, reg)
	decoded, err := ParseField(p, reg, def)
	require.NoError(t, err)

	j, err := decoded.ToJSON()
	require.NoError(t, err)
	require.Equal(t, 0xFFFF, j)
}

func TestUInt32_RoundTrip(t *testing.T) {
	def := mustField(t, "Sequence")
	val, err := uint32FromJSON(float64(12345), def)
	require.NoError(t, err)
	b := val.ToBytes()
	require.Len(t, b, 4)

	p := binary.NewParser(b, definitions.Default())
	parsed, err := parseUInt32(p)
	require.NoError(t, err)
	require.Equal(t, val, parsed)

	j, err := parsed.ToJSON()
	require.NoError(t, err)
	require.Equal(t, int64(12345), j)
}

func TestUInt32_OutOfRange(t *testing.T) {
	def := mustField(t, "Sequence")
	_, err := uint32FromJSON(float64(-1), def)
	require.Error(t, err)
}

func TestUInt64_HexJSONRoundTrip(t *testing.T) {
	def := mustField(t, "IndexNext")
	val, err := uint64FromJSON("00000000000003E8", def)
	require.NoError(t, err)
	require.Equal(t, UInt64(1000), val)

	j, err := val.ToJSON()
	require.NoError(t, err)
	require.Equal(t, "00000000000003E8", j)
}

func TestUInt64_DecimalJSON(t *testing.T) {
	def := mustField(t, "IndexNext")
	val, err := uint64FromJSON("1000", def)
	require.NoError(t, err)
	require.Equal(t, UInt64(1000), val)
}

func TestUInt64_BytesRoundTrip(t *testing.T) {
	def := mustField(t, "IndexNext")
	val, err := uint64FromJSON("18446744073709551615", def)
	require.NoError(t, err)
	b := val.ToBytes()
	p := binary.NewParser(b, definitions.Default())
	parsed, err := parseUInt64(p)
	require.NoError(t, err)
	require.Equal(t, val, parsed)
	_ = def
}

func mustField(t *testing.T, name string) definitions.FieldDefinition {
	t.Helper()
	def, err := definitions.Default().FieldByName(name)
	require.NoError(t, err)
	return def
}
