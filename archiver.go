// Package archiver provides a small lossless compression toolkit: three
// interchangeable whole-buffer codecs (run-length, LZW and Huffman) behind a
// self-describing archive format, plus a heuristic that picks a codec from
// input statistics.
//
// # Archive Format
//
// An archive is a single method tag byte followed by the codec payload,
// which extends to the end of the buffer:
//
//	[1 byte: method tag 0|1|2][codec-specific payload]
//
// There is no overall length or checksum field; the payload boundary is
// implicit. Run-length and LZW payloads have no internal framing, while the
// Huffman payload is self-delimiting through its own length fields.
//
// # Basic Usage
//
//	import archiver "github.com/Seraph-coder/lab-2-archiver-program"
//
//	// Pick a codec automatically and build an archive.
//	archive, method, _ := archiver.CompressAuto(data)
//	fmt.Printf("compressed with %s\n", method)
//
//	// Restore; the method is read back from the tag byte.
//	restored, _ := archiver.Decompress(archive)
//
// For a fixed codec use Compress with a format.Method constant. For raw
// payloads without the tag byte, use the compress package directly.
package archiver

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/Seraph-coder/lab-2-archiver-program/compress"
	"github.com/Seraph-coder/lab-2-archiver-program/format"
)

// Compress compresses data with the given method and prepends the one-byte
// method tag, producing a self-describing archive. It fails only for an
// unknown method (wrapping compress.ErrUnsupportedMethod); compression
// itself is total over all inputs including the empty one.
func Compress(data []byte, method format.Method) ([]byte, error) {
	codec, err := compress.GetCodec(method)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("compress %s: %w", method, err)
	}

	archive := make([]byte, 0, len(payload)+1)
	archive = append(archive, byte(method))
	archive = append(archive, payload...)

	return archive, nil
}

// CompressAuto selects a codec with AutoSelect, compresses data with it and
// returns the archive together with the chosen method.
func CompressAuto(data []byte) ([]byte, format.Method, error) {
	method := AutoSelect(data)

	archive, err := Compress(data, method)
	if err != nil {
		return nil, method, err
	}

	return archive, method, nil
}

// Decompress restores the original bytes from an archive produced by
// Compress or CompressAuto. The method tag is read from the first byte; an
// unrecognized tag fails with compress.ErrUnsupportedMethod, an empty
// archive or a corrupt payload with compress.ErrMalformedPayload (or
// compress.ErrInvalidCode for bad LZW codes).
func Decompress(archive []byte) ([]byte, error) {
	if len(archive) == 0 {
		return nil, fmt.Errorf("empty archive: %w", compress.ErrMalformedPayload)
	}

	method := format.Method(archive[0])
	codec, err := compress.GetCodec(method)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(archive[1:])
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", method, err)
	}

	return data, nil
}

// Checksum returns the xxHash64 digest of data. Collaborators use it to
// verify a restored buffer against the original without keeping both in
// memory; the digest is not part of the archive format.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
