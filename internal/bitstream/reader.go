package bitstream

import "io"

// Reader consumes bits MSB-first from a byte slice. It does not take
// ownership of the slice and never modifies it.
type Reader struct {
	data []byte
	pos  int // absolute bit position
}

// NewReader creates a bit reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit returns the next bit (0 or 1). Once the underlying bytes are
// exhausted it returns io.ErrUnexpectedEOF; callers translate that into
// their own malformed-input error.
func (r *Reader) ReadBit() (byte, error) {
	idx := r.pos >> 3
	if idx >= len(r.data) {
		return 0, io.ErrUnexpectedEOF
	}

	bit := (r.data[idx] >> (7 - uint(r.pos&7))) & 1
	r.pos++

	return bit, nil
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return len(r.data)*8 - r.pos
}
