package binary

import (
	"encoding/binary"
	"fmt"
)

// Reader provides sequential bounds-checked reads over an in-memory buffer.
//
// Image files and picture blocks are small enough to hold fully in
// memory, so all parsing works on byte slices. Every read is bounds
// checked; lengths taken from untrusted data are safe to pass through.
type Reader struct {
	data []byte
	off  int
}

// NewReader creates a new Reader over data, starting at offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return int64(r.off)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// ReadBytes reads n bytes and advances the offset. The returned slice
// aliases the underlying buffer.
func (r *Reader) ReadBytes(n int, what string) ([]byte, error) {
	if n < 0 || n > len(r.data)-r.off {
		return nil, fmt.Errorf("read of %d bytes at offset %d exceeds buffer size %d while reading %s",
			n, r.off, len(r.data), what)
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadString reads a string of the given length and advances the offset.
func (r *Reader) ReadString(n int, what string) (string, error) {
	b, err := r.ReadBytes(n, what)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Skip advances the offset by n bytes with bounds checking.
func (r *Reader) Skip(n int, what string) error {
	_, err := r.ReadBytes(n, what)
	return err
}

// ReadValue reads a big-endian numeric value and advances the offset.
// T must be uint8, uint16, uint32, or uint64.
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	var zero T
	var size int

	// Determine size based on type
	switch any(zero).(type) {
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	case uint64:
		size = 8
	}

	buf, err := r.ReadBytes(size, what)
	if err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(buf))
	case uint32:
		val = T(binary.BigEndian.Uint32(buf))
	case uint64:
		val = T(binary.BigEndian.Uint64(buf))
	}

	return val, nil
}
