package binary

// BytesList is an append-only byte sink, the serializer side of the codec. Every
// encode call allocates its own BytesList; nothing here is shared across calls, which
// is what keeps the codec safe for concurrent use.
type BytesList struct {
	buf []byte
}

// NewBytesList returns an empty sink with capacity hinted by sizeHint.
func NewBytesList(sizeHint int) *BytesList {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &BytesList{buf: make([]byte, 0, sizeHint)}
}

// Put appends raw bytes verbatim.
func (b *BytesList) Put(p []byte) {
	b.buf = append(b.buf, p...)
}

// PutByte appends a single byte.
func (b *BytesList) PutByte(v byte) {
	b.buf = append(b.buf, v)
}

// PutVL appends the VL-encoded length of p, followed by p itself.
func (b *BytesList) PutVL(p []byte) error {
	prefix, err := EncodeVL(len(p))
	if err != nil {
		return err
	}
	b.buf = append(b.buf, prefix...)
	b.buf = append(b.buf, p...)
	return nil
}

// Bytes returns the accumulated bytes. The caller owns the returned slice.
func (b *BytesList) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

// Len reports the number of bytes accumulated so far.
func (b *BytesList) Len() int {
	return len(b.buf)
}
