package proto

import (
	"fmt"
	"io"
)

// ReadVarBytes reads a VarUint length followed by exactly that many bytes.
// max caps the length before any allocation happens; a length from the wire
// must never size a buffer unchecked.
func (c *Codec) ReadVarBytes(r io.Reader, max uint64) ([]byte, error) {
	n, err := c.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	if n.Value > max {
		return nil, codecErr(VARUINT_ERR_OVERSIZE,
			fmt.Sprintf("length %d exceeds cap %d", n.Value, max), nil)
	}
	if n.Value == 0 {
		return []byte{}, nil
	}
	b := make([]byte, n.Value)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, codecErr(VARUINT_ERR_TRUNCATED, "var bytes payload", err)
	}
	return b, nil
}

// AppendVarBytes appends b to dst prefixed with its minimal VarUint length.
func AppendVarBytes(dst, b []byte) []byte {
	dst = AppendVarUint(dst, uint64(len(b)))
	return append(dst, b...)
}
