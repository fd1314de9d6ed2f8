package compress

import (
	"fmt"

	"github.com/Seraph-coder/lab-2-archiver-program/endian"
	"github.com/Seraph-coder/lab-2-archiver-program/internal/pool"
)

// wireEngine is the byte order of every multi-byte field emitted by the
// codecs: LZW codes and the Huffman length fields.
var wireEngine = endian.GetBigEndianEngine()

const (
	// lzwSeedSize is the number of single-byte seed entries.
	lzwSeedSize = 256
	// lzwMaxCodes is the size of the 16-bit code space. When the next code
	// would reach this value, encoder and decoder reset their dictionaries
	// in lockstep instead of inserting.
	lzwMaxCodes = 1 << 16
)

// LZWCodec implements LZW dictionary compression with fixed 16-bit codes,
// serialized big-endian, two bytes per code.
//
// The dictionary is built fresh per call, seeded with the 256 single-byte
// strings, and grows by one entry per emitted code. Dictionary state never
// crosses calls, so a single LZWCodec is safe for concurrent use.
type LZWCodec struct{}

var _ Codec = LZWCodec{}

// NewLZWCodec creates a new LZW codec.
func NewLZWCodec() LZWCodec {
	return LZWCodec{}
}

func newLZWCompressDict() map[string]uint16 {
	dict := make(map[string]uint16, lzwSeedSize*2)
	for i := 0; i < lzwSeedSize; i++ {
		dict[string([]byte{byte(i)})] = uint16(i)
	}

	return dict
}

// Compress encodes data as a sequence of big-endian 16-bit codes. It never
// fails; empty input produces an empty payload.
func (c LZWCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	dict := newLZWCompressDict()
	nextCode := lzwSeedSize

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	// w holds the current prefix plus the byte just read; on a dictionary
	// miss the prefix w[:len(w)-1] is emitted.
	w := make([]byte, 0, 64)
	for _, b := range data {
		w = append(w, b)
		if _, ok := dict[string(w)]; ok {
			continue
		}

		buf.B = wireEngine.AppendUint16(buf.B, dict[string(w[:len(w)-1])])

		if nextCode < lzwMaxCodes {
			dict[string(w)] = uint16(nextCode)
			nextCode++
		} else {
			// Code space exhausted: drop the pending entry and start over.
			// The decoder mirrors this reset at the same position.
			dict = newLZWCompressDict()
			nextCode = lzwSeedSize
		}

		w = w[:0]
		w = append(w, b)
	}

	// The loop always leaves a non-empty prefix behind.
	buf.B = wireEngine.AppendUint16(buf.B, dict[string(w)])

	return buf.CopyBytes(), nil
}

// Decompress rebuilds the original bytes from a code sequence.
//
// Failure modes:
//   - odd payload length: ErrMalformedPayload
//   - first code outside the single-byte seed range: ErrInvalidCode
//   - any code that is neither a known entry nor exactly the next code to
//     be assigned: ErrInvalidCode
func (c LZWCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("odd payload length %d: %w", len(data), ErrMalformedPayload)
	}

	entries := make([][]byte, lzwSeedSize, lzwSeedSize*16)
	for i := 0; i < lzwSeedSize; i++ {
		entries[i] = []byte{byte(i)}
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	first := wireEngine.Uint16(data[:2])
	if int(first) >= lzwSeedSize {
		return nil, fmt.Errorf("first code %d is not a single-byte entry: %w", first, ErrInvalidCode)
	}

	w := entries[first]
	buf.MustWrite(w)

	for i := 2; i < len(data); i += 2 {
		k := wireEngine.Uint16(data[i : i+2])

		var entry []byte
		switch {
		case int(k) < len(entries):
			entry = entries[k]
		case int(k) == len(entries):
			// Self-referential case: the encoder emitted a code it had just
			// assigned, so the entry must be w plus its own first byte.
			entry = make([]byte, len(w)+1)
			copy(entry, w)
			entry[len(w)] = w[0]
		default:
			return nil, fmt.Errorf("code %d at offset %d: %w", k, i, ErrInvalidCode)
		}

		buf.MustWrite(entry)

		if len(entries) < lzwMaxCodes {
			ins := make([]byte, len(w)+1)
			copy(ins, w)
			ins[len(w)] = entry[0]
			entries = append(entries, ins)
		} else {
			// Mirror of the encoder's dictionary reset.
			entries = entries[:lzwSeedSize]
		}

		w = entry
	}

	return buf.CopyBytes(), nil
}
