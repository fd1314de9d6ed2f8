package compress

import (
	"fmt"

	"github.com/Seraph-coder/lab-2-archiver-program/internal/pool"
)

// RLEFlag is the sentinel byte that opens a run token. It is part of the
// wire format.
const RLEFlag byte = 0xFF

// rleMaxRun caps the count byte of a single token; longer runs are split
// into consecutive tokens.
const rleMaxRun = 255

// RLECodec implements run-length encoding over whole byte buffers.
//
// Runs of more than three identical bytes are emitted as a token
// [RLEFlag, value, count]; anything shorter is emitted literally. A literal
// occurrence of RLEFlag itself would be indistinguishable from a token
// start, so runs of RLEFlag are always tokenized regardless of length, even
// a single byte. The decoder therefore never sees a bare RLEFlag.
type RLECodec struct{}

var _ Codec = RLECodec{}

// NewRLECodec creates a new run-length codec.
func NewRLECodec() RLECodec {
	return RLECodec{}
}

// Compress encodes data with run-length encoding. It never fails.
func (c RLECodec) Compress(data []byte) ([]byte, error) {
	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	i := 0
	for i < len(data) {
		b := data[i]

		runLength := 1
		for i+runLength < len(data) && data[i+runLength] == b && runLength < rleMaxRun {
			runLength++
		}

		switch {
		case b == RLEFlag:
			// Escape: flag bytes are always tokenized, whatever the run length.
			buf.MustWrite([]byte{RLEFlag, RLEFlag, byte(runLength)})
			i += runLength
		case runLength > 3:
			buf.MustWrite([]byte{RLEFlag, b, byte(runLength)})
			i += runLength
		default:
			_ = buf.WriteByte(b)
			i++
		}
	}

	return buf.CopyBytes(), nil
}

// Decompress expands a run-length payload back to the original bytes.
//
// A flag byte with fewer than two trailing bytes, or a token with a zero
// count, fails with ErrMalformedPayload: a conforming encoder never
// produces either.
func (c RLECodec) Decompress(data []byte) ([]byte, error) {
	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	i := 0
	for i < len(data) {
		if data[i] != RLEFlag {
			_ = buf.WriteByte(data[i])
			i++

			continue
		}

		if len(data)-i < 3 {
			return nil, fmt.Errorf("run token truncated at offset %d: %w", i, ErrMalformedPayload)
		}

		value := data[i+1]
		count := int(data[i+2])
		if count == 0 {
			return nil, fmt.Errorf("run token with zero count at offset %d: %w", i, ErrMalformedPayload)
		}

		buf.Grow(count)
		for n := 0; n < count; n++ {
			_ = buf.WriteByte(value)
		}
		i += 3
	}

	return buf.CopyBytes(), nil
}
