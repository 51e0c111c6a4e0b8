// Package proto implements the byte-level primitives of the block wire
// format. Its central type is VarUint, the CompactSize variable-length
// integer used for counts and lengths throughout the protocol.
package proto

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ToRaw is implemented by protocol values that serialize to their canonical
// raw byte form.
type ToRaw interface {
	ToBytes() []byte
}

// VarUint is a variable-length unsigned integer, also known as CompactSize.
// Value is the numeric value; the unexported buffer is the owned
// little-endian serialized form (1, 3, 5 or 9 bytes depending on the width
// class). A VarUint is immutable once constructed, so sharing one between
// goroutines needs no locking.
type VarUint struct {
	Value uint64
	buf   []byte
}

// FromU8 builds the one-byte encoding; the prefix byte is the value itself.
func (c *Codec) FromU8(v uint8) VarUint {
	return c.newVarUint(uint64(v), []byte{v})
}

// FromU16 builds the 0xfd-prefixed three-byte encoding.
func (c *Codec) FromU16(v uint16) VarUint {
	buf := make([]byte, 3)
	buf[0] = 0xfd
	binary.LittleEndian.PutUint16(buf[1:], v)
	return c.newVarUint(uint64(v), buf)
}

// FromU32 builds the 0xfe-prefixed five-byte encoding.
func (c *Codec) FromU32(v uint32) VarUint {
	buf := make([]byte, 5)
	buf[0] = 0xfe
	binary.LittleEndian.PutUint32(buf[1:], v)
	return c.newVarUint(uint64(v), buf)
}

// FromU64 builds the 0xff-prefixed nine-byte encoding.
func (c *Codec) FromU64(v uint64) VarUint {
	buf := make([]byte, 9)
	buf[0] = 0xff
	binary.LittleEndian.PutUint64(buf[1:], v)
	return c.newVarUint(uint64(v), buf)
}

// FromUint selects the smallest width class able to hold n, yielding the
// canonical minimal encoding for the value.
func (c *Codec) FromUint(n uint64) VarUint {
	switch {
	case n < 0xfd:
		return c.FromU8(uint8(n))
	case n <= 0xffff:
		return c.FromU16(uint16(n))
	case n <= 0xffff_ffff:
		return c.FromU32(uint32(n))
	default:
		return c.FromU64(n)
	}
}

// ToBytes returns a copy of the serialized form. The copy keeps the internal
// buffer immutable no matter what the caller does with the result.
func (v VarUint) ToBytes() []byte {
	out := make([]byte, len(v.buf))
	copy(out, v.buf)
	return out
}

// Len is the encoded length in bytes: 1, 3, 5 or 9.
func (v VarUint) Len() int {
	return len(v.buf)
}

// WriteTo writes the serialized form to w.
func (v VarUint) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.buf)
	return int64(n), err
}

// String renders only the decimal value, not the encoded bytes.
func (v VarUint) String() string {
	return fmt.Sprintf("%d", v.Value)
}
