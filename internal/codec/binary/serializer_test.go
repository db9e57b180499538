package binary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesList_PutAndBytes(t *testing.T) {
	bl := NewBytesList(0)
	bl.Put([]byte{1, 2, 3})
	bl.PutByte(4)
	require.Equal(t, []byte{1, 2, 3, 4}, bl.Bytes())
	require.Equal(t, 4, bl.Len())
}

func TestBytesList_PutVL(t *testing.T) {
	bl := NewBytesList(0)
	require.NoError(t, bl.PutVL([]byte{0xAA, 0xBB}))
	require.Equal(t, []byte{0x02, 0xAA, 0xBB}, bl.Bytes())
}

func TestBytesList_BytesIsACopy(t *testing.T) {
	bl := NewBytesList(0)
	bl.Put([]byte{1, 2, 3})
	out := bl.Bytes()
	out[0] = 0xFF
	require.Equal(t, []byte{1, 2, 3}, bl.Bytes())
}

func TestBytesList_NegativeSizeHint(t *testing.T) {
	bl := NewBytesList(-5)
	require.Equal(t, 0, bl.Len())
}
