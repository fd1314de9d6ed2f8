// Package compress provides the three interchangeable whole-buffer codecs
// behind the archive format: run-length, dictionary (LZW) and prefix-code
// (Huffman) encoding.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are selected through the closed format.Method enum, either directly
// via GetCodec/CreateCodec or through the root package's tagged archive API.
//
// # Codecs
//
// **Run-length** (format.MethodRLE)
//
// Runs of more than three identical bytes become a three-byte token
// (flag, value, count). The flag byte 0xFF is always escaped when it occurs
// literally, so any byte value round-trips.
//
// Best for: long runs of repeated bytes (sparse binaries, bitmaps).
//
// **Dictionary / LZW** (format.MethodLZW)
//
// Classic LZW with an adaptive per-call dictionary and fixed 16-bit
// big-endian codes. When the code space fills, both sides reset the
// dictionary in lockstep, so inputs of any size stay decodable.
//
// Best for: text and data with repeated substrings.
//
// **Prefix-code / Huffman** (format.MethodHuffman)
//
// A frequency-weighted prefix tree is built per call and serialized in
// front of the bit-packed payload, so the payload is self-delimiting and
// needs no agreed-on table.
//
// Best for: skewed byte distributions without strong run or substring
// structure.
//
// # Error Handling
//
// Compression is total over all inputs, including empty ones. Decompression
// fails with an error wrapping ErrMalformedPayload or ErrInvalidCode when
// the payload is truncated or inconsistent; it never silently produces
// wrong output.
package compress
