package proto

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadFrom parses one VarUint from r. It reads exactly the bytes the prefix
// byte demands and never returns a partially constructed value: any short
// read or underlying I/O failure surfaces as VARUINT_ERR_TRUNCATED with the
// cause attached. Decoded data is not checked for minimality; the VarUint
// keeps the width class it was read with.
func (c *Codec) ReadFrom(r io.Reader) (VarUint, error) {
	var pfx [1]byte
	if _, err := io.ReadFull(r, pfx[:]); err != nil {
		return VarUint{}, codecErr(VARUINT_ERR_TRUNCATED, "prefix byte", err)
	}
	switch tag := pfx[0]; {
	case tag < 0xfd:
		return c.FromU8(tag), nil
	case tag == 0xfd:
		var b [2]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return VarUint{}, codecErr(VARUINT_ERR_TRUNCATED, "u16 payload", err)
		}
		return c.FromU16(binary.LittleEndian.Uint16(b[:])), nil
	case tag == 0xfe:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return VarUint{}, codecErr(VARUINT_ERR_TRUNCATED, "u32 payload", err)
		}
		return c.FromU32(binary.LittleEndian.Uint32(b[:])), nil
	case tag == 0xff:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return VarUint{}, codecErr(VARUINT_ERR_TRUNCATED, "u64 payload", err)
		}
		return c.FromU64(binary.LittleEndian.Uint64(b[:])), nil
	default:
		// Unreachable: the four cases above cover the full byte range.
		// Kept as an explicit failure so a future change to the class
		// boundaries cannot fall through silently.
		return VarUint{}, codecErr(VARUINT_ERR_PREFIX, fmt.Sprintf("prefix 0x%02x", tag), nil)
	}
}
