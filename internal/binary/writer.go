// Package binary provides type-safe binary primitives for the fixed
// big-endian layout of picture blocks and image headers.
package binary

import (
	"encoding/binary"
	"io"
)

// SafeWriter wraps io.Writer with position tracking.
//
// Picture blocks serialize two kinds of fields: big-endian uint32
// integers and length-prefixed byte payloads. SafeWriter provides one
// method for each and reports the offset reached, so a failed write
// can name the exact position.
type SafeWriter struct {
	w      io.Writer
	offset int64
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	return err
}

// WriteUint32 writes v in big-endian byte order.
func (sw *SafeWriter) WriteUint32(v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return sw.WriteBytes(buf[:])
}

// WritePrefixed writes len(b) as a big-endian uint32 followed by b
// verbatim. The length must fit in uint32; callers validate sizes
// before serializing.
func (sw *SafeWriter) WritePrefixed(b []byte) error {
	if err := sw.WriteUint32(uint32(len(b))); err != nil {
		return err
	}
	return sw.WriteBytes(b)
}

// WritePrefixedString writes s as a length-prefixed byte payload.
func (sw *SafeWriter) WritePrefixedString(s string) error {
	return sw.WritePrefixed([]byte(s))
}
