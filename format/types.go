// Package format defines the wire-level identifiers shared by the archive
// frame and the codec registry.
package format

// Method identifies a compression algorithm. The numeric value doubles as
// the archive method tag byte, so the constants are part of the wire format
// and must never be renumbered.
type Method uint8

const (
	MethodRLE     Method = 0 // MethodRLE is run-length encoding.
	MethodLZW     Method = 1 // MethodLZW is dictionary (LZW) encoding.
	MethodHuffman Method = 2 // MethodHuffman is prefix-code (Huffman) encoding.
)

func (m Method) String() string {
	switch m {
	case MethodRLE:
		return "RLE"
	case MethodLZW:
		return "LZW"
	case MethodHuffman:
		return "Huffman"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the defined methods.
func (m Method) Valid() bool {
	return m <= MethodHuffman
}
