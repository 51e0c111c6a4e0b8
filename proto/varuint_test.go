package proto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// quiet builds a codec with diagnostics disabled so large test vectors do
// not spam the log.
func quiet() *Codec {
	return &Codec{}
}

func TestVarUintWidthClasses(t *testing.T) {
	c := quiet()
	cases := []struct {
		name string
		v    VarUint
		val  uint64
		hex  string
	}{
		{"u8_250", c.FromU8(250), 250, "fa"},
		{"u16_4444", c.FromU16(4444), 4444, "fd5c11"},
		{"u16_515", c.FromU16(515), 515, "fd0302"},
		{"u32_3333333333", c.FromU32(3333333333), 3333333333, "fe55a1aec6"},
		{"u64_9e18", c.FromU64(9000000000000000000), 9000000000000000000, "ff000084e2506ce67c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.v.Value != tc.val {
				t.Fatalf("value mismatch: got %d want %d", tc.v.Value, tc.val)
			}
			enc := tc.v.ToBytes()
			if hex.EncodeToString(enc) != tc.hex {
				t.Fatalf("encoding mismatch: got %x want %s", enc, tc.hex)
			}
			if tc.v.Len() != len(enc) {
				t.Fatalf("Len=%d want %d", tc.v.Len(), len(enc))
			}
		})
	}
}

func TestVarUintFromUintMinimal(t *testing.T) {
	c := quiet()
	cases := []struct {
		name string
		val  uint64
		hex  string
	}{
		{"zero", 0, "00"},
		{"max_u8_minimal", 252, "fc"},
		{"u16_boundary", 253, "fdfd00"},
		{"u16_max", 65535, "fdffff"},
		{"u32_boundary", 65536, "fe00000100"},
		{"u32_mid", 0x12345678, "fe78563412"},
		{"u64_boundary", 0x1_0000_0000, "ff0000000001000000"},
		{"u64_high", 0xffff_ffff_ffff_ffff, "ffffffffffffffffff"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := c.FromUint(tc.val)
			if v.Value != tc.val {
				t.Fatalf("value mismatch: got %d want %d", v.Value, tc.val)
			}
			if hex.EncodeToString(v.ToBytes()) != tc.hex {
				t.Fatalf("encoding mismatch: got %x want %s", v.ToBytes(), tc.hex)
			}
		})
	}
}

func TestVarUintToBytesReturnsCopy(t *testing.T) {
	v := quiet().FromU16(515)
	b := v.ToBytes()
	b[0] = 0x00
	if !bytes.Equal(v.ToBytes(), []byte{0xfd, 0x03, 0x02}) {
		t.Fatalf("internal buffer mutated through ToBytes result: %x", v.ToBytes())
	}
}

func TestVarUintWriteTo(t *testing.T) {
	v := quiet().FromU32(3333333333)
	var buf bytes.Buffer
	n, err := v.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != 5 {
		t.Fatalf("WriteTo wrote %d bytes, want 5", n)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0xfe, 0x55, 0xa1, 0xae, 0xc6}) {
		t.Fatalf("WriteTo bytes: %x", buf.Bytes())
	}
}

func TestVarUintString(t *testing.T) {
	v := quiet().FromU16(4444)
	if got := v.String(); got != "4444" {
		t.Fatalf("String=%q want %q", got, "4444")
	}
}

var _ ToRaw = VarUint{}
