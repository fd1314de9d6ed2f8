package compress

import (
	"errors"
	"fmt"

	"github.com/Seraph-coder/lab-2-archiver-program/format"
)

// Codec errors. Decode paths wrap these with fmt.Errorf("...: %w", ...) so
// callers can classify failures with errors.Is.
var (
	// ErrInvalidCode reports an LZW code that is neither a known dictionary
	// entry nor the next code to be assigned.
	ErrInvalidCode = errors.New("invalid dictionary code")

	// ErrMalformedPayload reports a truncated or internally inconsistent
	// compressed payload.
	ErrMalformedPayload = errors.New("malformed compressed payload")

	// ErrUnsupportedMethod reports a method tag that matches no known codec.
	ErrUnsupportedMethod = errors.New("unsupported compression method")
)

// Compressor compresses a whole in-memory byte buffer.
//
// Compress is total: it succeeds for every input including the empty
// sequence. The returned slice is newly allocated and owned by the caller;
// the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores the original bytes from a compressed payload.
//
// The input must have been produced by the matching Compressor. Truncated
// or inconsistent payloads fail with an error wrapping ErrMalformedPayload
// (or ErrInvalidCode for bad LZW codes); decompression never returns a
// wrong-but-successful result.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
//
// All codecs in this package are stateless values: every call allocates its
// own working state (dictionary, frequency table, tree), so a single Codec
// is safe for concurrent use on independent inputs.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the specified
// method.
//
// Parameters:
//   - method: Compression method (RLE, LZW, or Huffman)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified method
//   - error: Wraps ErrUnsupportedMethod for unknown methods
func CreateCodec(method format.Method, target string) (Codec, error) {
	switch method {
	case format.MethodRLE:
		return NewRLECodec(), nil
	case format.MethodLZW:
		return NewLZWCodec(), nil
	case format.MethodHuffman:
		return NewHuffmanCodec(), nil
	default:
		return nil, fmt.Errorf("invalid %s method %d: %w", target, method, ErrUnsupportedMethod)
	}
}

var builtinCodecs = map[format.Method]Codec{
	format.MethodRLE:     NewRLECodec(),
	format.MethodLZW:     NewLZWCodec(),
	format.MethodHuffman: NewHuffmanCodec(),
}

// GetCodec retrieves a shared built-in Codec for the specified method.
func GetCodec(method format.Method) (Codec, error) {
	if codec, ok := builtinCodecs[method]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("method %d: %w", method, ErrUnsupportedMethod)
}
