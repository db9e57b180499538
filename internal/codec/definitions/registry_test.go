package definitions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsAndIsSingleton(t *testing.T) {
	r1 := Default()
	r2 := Default()
	require.Same(t, r1, r2)
}

func TestFieldByName(t *testing.T) {
	reg := Default()
	def, err := reg.FieldByName("Account")
	require.NoError(t, err)
	require.Equal(t, "AccountID", def.Type)
	require.True(t, def.IsVLEncoded)
	require.True(t, def.IsSerialized)

	_, err = reg.FieldByName("NoSuchField")
	require.Error(t, err)
}

func TestFieldByHeader(t *testing.T) {
	reg := Default()
	def, err := reg.FieldByName("TransactionType")
	require.NoError(t, err)

	byHeader, err := reg.FieldByHeader(def.TypeCode, def.FieldCode)
	require.NoError(t, err)
	require.Equal(t, def, byHeader)

	_, err = reg.FieldByHeader(999, 999)
	require.Error(t, err)
}

func TestTypeCodeRoundTrip(t *testing.T) {
	reg := Default()
	code, err := reg.TypeCode("AccountID")
	require.NoError(t, err)
	require.Equal(t, 8, code)

	name, err := reg.TypeName(code)
	require.NoError(t, err)
	require.Equal(t, "AccountID", name)

	_, err = reg.TypeCode("NotAType")
	require.Error(t, err)
	_, err = reg.TypeName(-1000)
	require.Error(t, err)
}

func TestTransactionTypeRoundTrip(t *testing.T) {
	reg := Default()
	code, err := reg.TransactionTypeCode("Payment")
	require.NoError(t, err)
	require.Equal(t, 0, code)

	name, err := reg.TransactionTypeName(code)
	require.NoError(t, err)
	require.Equal(t, "Payment", name)
}

func TestTransactionResultRoundTrip(t *testing.T) {
	reg := Default()
	code, err := reg.TransactionResultCode("tesSUCCESS")
	require.NoError(t, err)
	require.Equal(t, 0, code)

	name, err := reg.TransactionResultName(code)
	require.NoError(t, err)
	require.Equal(t, "tesSUCCESS", name)

	code2, err := reg.TransactionResultCode("temMALFORMED")
	require.NoError(t, err)
	require.Equal(t, -299, code2)
}

func TestLedgerEntryTypeRoundTrip(t *testing.T) {
	reg := Default()
	code, err := reg.LedgerEntryTypeCode("AccountRoot")
	require.NoError(t, err)
	require.Equal(t, 97, code)

	name, err := reg.LedgerEntryTypeName(code)
	require.NoError(t, err)
	require.Equal(t, "AccountRoot", name)
}

func TestFieldsAndTypesSnapshots(t *testing.T) {
	reg := Default()
	fields := reg.Fields()
	require.NotEmpty(t, fields)

	types := reg.Types()
	require.NotEmpty(t, types)
	found := false
	for _, td := range types {
		if td.Name == "AccountID" && td.Code == 8 {
			found = true
		}
	}
	require.True(t, found)
}
