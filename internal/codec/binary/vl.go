package binary

import "github.com/ledgerkit/binarycodec/internal/codec/codecerr"

// MaxVLLength is the largest length encodable by the variable-length prefix scheme.
const MaxVLLength = 918744

// EncodeVL encodes a length using the 1/2/3-byte variable-length scheme from the
// binary parser/serializer design.
func EncodeVL(length int) ([]byte, error) {
	switch {
	case length < 0 || length > MaxVLLength:
		return nil, codecerr.Plain(codecerr.MalformedHeader, "length out of encodable range [0, 918744]")
	case length <= 192:
		return []byte{byte(length)}, nil
	case length <= 12480:
		length -= 193
		return []byte{byte(193 + length/256), byte(length % 256)}, nil
	default:
		length -= 12481
		return []byte{byte(241 + length/65536), byte((length / 256) % 256), byte(length % 256)}, nil
	}
}

// decodeVL decodes a variable-length prefix starting at buf[0], returning the decoded
// length and the number of prefix bytes consumed.
func decodeVL(buf []byte, offset int) (length int, consumed int, err error) {
	if len(buf) < 1 {
		return 0, 0, codecerr.AtOffset(codecerr.UnexpectedEnd, offset, "buffer too short for VL prefix")
	}
	b0 := int(buf[0])
	switch {
	case b0 <= 192:
		return b0, 1, nil
	case b0 <= 240:
		if len(buf) < 2 {
			return 0, 0, codecerr.AtOffset(codecerr.UnexpectedEnd, offset, "truncated 2-byte VL prefix")
		}
		return 193 + (b0-193)*256 + int(buf[1]), 2, nil
	case b0 <= 254:
		if len(buf) < 3 {
			return 0, 0, codecerr.AtOffset(codecerr.UnexpectedEnd, offset, "truncated 3-byte VL prefix")
		}
		length = 12481 + (b0-241)*65536 + int(buf[1])*256 + int(buf[2])
		if length > MaxVLLength {
			return 0, 0, codecerr.AtOffset(codecerr.MalformedHeader, offset, "VL prefix decodes past the maximum encodable length")
		}
		return length, 3, nil
	default:
		return 0, 0, codecerr.AtOffset(codecerr.MalformedHeader, offset, "VL prefix byte 255 is invalid")
	}
}
