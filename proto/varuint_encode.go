package proto

import (
	"encoding/binary"
	"fmt"
)

// AppendVarUint appends the minimal CompactSize encoding of n to dst.
func AppendVarUint(dst []byte, n uint64) []byte {
	switch {
	case n < 0xfd:
		return append(dst, byte(n))
	case n <= 0xffff:
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(n))
		return append(append(dst, 0xfd), b[:]...)
	case n <= 0xffff_ffff:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(n))
		return append(append(dst, 0xfe), b[:]...)
	default:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], n)
		return append(append(dst, 0xff), b[:]...)
	}
}

// EncodeVarUint returns the minimal CompactSize encoding of n. For
// append-style usage see AppendVarUint.
func EncodeVarUint(n uint64) []byte {
	return AppendVarUint(nil, n)
}

// DecodeVarUint decodes one CompactSize value from the front of b and
// returns the value and the number of bytes consumed. Non-minimal encodings
// are accepted as-is; this reports exactly what is on the wire. Truncated
// input fails with VARUINT_ERR_TRUNCATED.
func DecodeVarUint(b []byte) (uint64, int, error) {
	if len(b) < 1 {
		return 0, 0, codecErr(VARUINT_ERR_TRUNCATED, "empty buffer", nil)
	}
	switch tag := b[0]; {
	case tag < 0xfd:
		return uint64(tag), 1, nil
	case tag == 0xfd:
		if len(b) < 3 {
			return 0, 0, codecErr(VARUINT_ERR_TRUNCATED, "u16 payload", nil)
		}
		return uint64(binary.LittleEndian.Uint16(b[1:3])), 3, nil
	case tag == 0xfe:
		if len(b) < 5 {
			return 0, 0, codecErr(VARUINT_ERR_TRUNCATED, "u32 payload", nil)
		}
		return uint64(binary.LittleEndian.Uint32(b[1:5])), 5, nil
	case tag == 0xff:
		if len(b) < 9 {
			return 0, 0, codecErr(VARUINT_ERR_TRUNCATED, "u64 payload", nil)
		}
		return binary.LittleEndian.Uint64(b[1:9]), 9, nil
	default:
		// Unreachable while the cases above span the full byte range.
		return 0, 0, codecErr(VARUINT_ERR_PREFIX, fmt.Sprintf("prefix 0x%02x", tag), nil)
	}
}
