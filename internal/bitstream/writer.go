// Package bitstream provides MSB-first bit-level reading and writing over
// byte buffers. The prefix-code codec packs variable-length codes with it.
package bitstream

import (
	"github.com/Seraph-coder/lab-2-archiver-program/endian"
	"github.com/Seraph-coder/lab-2-archiver-program/internal/pool"
)

var engine = endian.GetBigEndianEngine()

// Writer accumulates bits in a 64-bit buffer and flushes them MSB-first
// into a pooled byte buffer. Bits written first occupy the most significant
// positions of the earliest output bytes.
type Writer struct {
	buf      *pool.ByteBuffer
	bitBuf   uint64 // accumulator, filled from the top bit down
	bitCount int    // number of valid bits in bitBuf
}

// NewWriter creates a bit writer that appends to buf.
func NewWriter(buf *pool.ByteBuffer) *Writer {
	return &Writer{buf: buf}
}

// WriteBit appends a single bit; any nonzero value writes a 1 bit.
func (w *Writer) WriteBit(bit uint64) {
	if bit != 0 {
		bit = 1
	}
	w.WriteBits(bit, 1)
}

// WriteBits appends the low count bits of value, most significant first.
// count must be in [0, 64].
func (w *Writer) WriteBits(value uint64, count int) {
	if count <= 0 {
		return
	}

	// Left-align the payload bits so they can be ORed below existing bits.
	value <<= 64 - uint(count)

	free := 64 - w.bitCount
	if count <= free {
		w.bitBuf |= value >> uint(w.bitCount)
		w.bitCount += count
		if w.bitCount == 64 {
			w.flushAccumulator()
		}

		return
	}

	// Fill the accumulator, flush it, then carry the remainder over.
	w.bitBuf |= value >> uint(w.bitCount)
	w.bitCount = 64
	w.flushAccumulator()

	value <<= uint(free)
	w.bitBuf = value
	w.bitCount = count - free
}

// Flush writes any buffered bits to the byte buffer, zero-padding the final
// partial byte. The writer is reusable afterwards; the pad bits are not
// meaningful and decoders must delimit by symbol count, not bit alignment.
func (w *Writer) Flush() {
	if w.bitCount == 0 {
		return
	}

	nbytes := (w.bitCount + 7) / 8
	var tmp [8]byte
	engine.PutUint64(tmp[:], w.bitBuf)
	w.buf.MustWrite(tmp[:nbytes])

	w.bitBuf = 0
	w.bitCount = 0
}

func (w *Writer) flushAccumulator() {
	var tmp [8]byte
	engine.PutUint64(tmp[:], w.bitBuf)
	w.buf.MustWrite(tmp[:])

	w.bitBuf = 0
	w.bitCount = 0
}
