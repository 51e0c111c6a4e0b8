package proto

import (
	"encoding/hex"
	"io"
	"log/slog"
)

// DefaultDiagThreshold is the value above which a freshly constructed
// VarUint is reported to the diagnostic logger. Wildly large counts and
// lengths usually mean the reader has lost sync with the stream, so
// flagging them early makes desync bugs much easier to trace.
const DefaultDiagThreshold = 999_999

// Codec constructs VarUints and reports suspiciously large values to an
// injected diagnostic logger.
//
// The zero value is usable: Threshold 0 means DefaultDiagThreshold, and a
// nil Logger disables diagnostics entirely. The diagnostic is advisory
// only; it never blocks or alters construction.
type Codec struct {
	Threshold uint64
	Logger    *slog.Logger
}

// Default is the codec behind the package-level constructors. It warns
// through slog's default logger with the default threshold.
var Default = &Codec{Logger: slog.Default()}

func (c *Codec) threshold() uint64 {
	if c.Threshold == 0 {
		return DefaultDiagThreshold
	}
	return c.Threshold
}

// newVarUint is the single construction point. Every width-class entry
// funnels through it so the large-value diagnostic lives in one place.
func (c *Codec) newVarUint(value uint64, buf []byte) VarUint {
	v := VarUint{Value: value, buf: buf}
	if c.Logger != nil && value > c.threshold() {
		c.Logger.Warn("potential malformed varuint",
			"value", value,
			"len", len(buf),
			"buf", hex.EncodeToString(buf),
		)
	}
	return v
}

// FromU8 builds a VarUint with the Default codec.
func FromU8(v uint8) VarUint { return Default.FromU8(v) }

// FromU16 builds a VarUint with the Default codec.
func FromU16(v uint16) VarUint { return Default.FromU16(v) }

// FromU32 builds a VarUint with the Default codec.
func FromU32(v uint32) VarUint { return Default.FromU32(v) }

// FromU64 builds a VarUint with the Default codec.
func FromU64(v uint64) VarUint { return Default.FromU64(v) }

// FromUint builds a minimally encoded VarUint with the Default codec.
func FromUint(n uint64) VarUint { return Default.FromUint(n) }

// ReadVarUint parses one VarUint from r with the Default codec.
func ReadVarUint(r io.Reader) (VarUint, error) { return Default.ReadFrom(r) }
