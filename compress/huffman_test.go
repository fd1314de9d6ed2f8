package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHuffman_RoundTrip(t *testing.T) {
	codec := NewHuffmanCodec()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "single_byte", data: []byte{0x42}},
		{name: "two_symbols", data: []byte("abab")},
		{name: "text", data: []byte("the quick brown fox jumps over the lazy dog")},
		{name: "skewed_distribution", data: append(bytes.Repeat([]byte{'e'}, 200), []byte("xyz")...)},
		{name: "single_symbol_degenerate", data: bytes.Repeat([]byte{'q'}, 1000)},
		{name: "all_byte_values", data: func() []byte {
			data := make([]byte, 256)
			for i := range data {
				data[i] = byte(i)
			}

			return data
		}()},
		{name: "pseudo_random", data: func() []byte {
			data := make([]byte, 2048)
			for i := range data {
				data[i] = byte((i*31 + i*i*7) % 256)
			}

			return data
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := codec.Compress(tt.data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, tt.data, decompressed)
		})
	}
}

func TestHuffman_EmptyInputLayout(t *testing.T) {
	codec := NewHuffmanCodec()

	compressed, err := codec.Compress(nil)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 12), compressed, "empty input is the all-zero 12-byte header")
}

func TestHuffman_SingleSymbolLayout(t *testing.T) {
	codec := NewHuffmanCodec()

	compressed, err := codec.Compress([]byte{0x42})
	require.NoError(t, err)

	// Single-leaf tree, one-bit code 0 padded into one byte, one symbol.
	expected := []byte{
		0x00, 0x00, 0x00, 0x02, // tree length
		0x01, 0x42,             // leaf marker + symbol
		0x00, 0x00, 0x00, 0x01, // encoded length
		0x00,                   // one 0 bit, padded
		0x00, 0x00, 0x00, 0x01, // symbol count
	}
	require.Equal(t, expected, compressed)
}

func TestHuffman_DegenerateTreeBitLength(t *testing.T) {
	codec := NewHuffmanCodec()

	// 1000 identical bytes consume exactly one bit each.
	data := bytes.Repeat([]byte{'q'}, 1000)
	compressed, err := codec.Compress(data)
	require.NoError(t, err)

	treeLen := int(wireEngine.Uint32(compressed[:4]))
	require.Equal(t, 2, treeLen)
	encLen := int(wireEngine.Uint32(compressed[4+treeLen : 4+treeLen+4]))
	require.Equal(t, (1000+7)/8, encLen)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestHuffman_Deterministic(t *testing.T) {
	codec := NewHuffmanCodec()

	// Equal-frequency symbols exercise the tie-break; two runs must agree.
	data := []byte("abcdefgABCDEFG1234567")
	first, err := codec.Compress(data)
	require.NoError(t, err)
	second, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestHuffman_MalformedPayload(t *testing.T) {
	codec := NewHuffmanCodec()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "shorter_than_tree_length_field", data: []byte{0x00}},
		{name: "tree_length_exceeds_payload", data: []byte{0x00, 0x00, 0x00, 0x10}},
		{name: "invalid_tree_marker", data: []byte{0x00, 0x00, 0x00, 0x01, 0x02}},
		{name: "leaf_missing_symbol", data: []byte{0x00, 0x00, 0x00, 0x01, 0x01}},
		{name: "internal_missing_right_subtree", data: []byte{0x00, 0x00, 0x00, 0x03, 0x00, 0x01, 'a'}},
		{name: "trailing_bytes_after_tree", data: []byte{0x00, 0x00, 0x00, 0x03, 0x01, 'a', 0x00}},
		{name: "missing_encoded_length", data: []byte{0x00, 0x00, 0x00, 0x02, 0x01, 'a'}},
		{name: "encoded_length_exceeds_payload", data: []byte{
			0x00, 0x00, 0x00, 0x02, 0x01, 'a',
			0x00, 0x00, 0x00, 0xFF,
		}},
		{name: "missing_symbol_count", data: []byte{
			0x00, 0x00, 0x00, 0x02, 0x01, 'a',
			0x00, 0x00, 0x00, 0x01, 0x00,
		}},
		{name: "symbol_count_with_empty_tree", data: []byte{
			0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x05,
		}},
		{name: "bit_stream_too_short_degenerate", data: []byte{
			0x00, 0x00, 0x00, 0x02, 0x01, 'a',
			0x00, 0x00, 0x00, 0x01, 0x00,
			0x00, 0x00, 0x00, 0x09,
		}},
		{name: "bit_stream_too_short", data: []byte{
			0x00, 0x00, 0x00, 0x05, 0x00, 0x01, 'a', 0x01, 'b',
			0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x01,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decompress(tt.data)
			require.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestHuffman_TruncatedPayload(t *testing.T) {
	codec := NewHuffmanCodec()

	compressed, err := codec.Compress([]byte("hello huffman, hello prefix tree"))
	require.NoError(t, err)

	// Cutting the tail must surface as an error, never as silent truncation.
	_, err = codec.Decompress(compressed[:len(compressed)-3])
	require.ErrorIs(t, err, ErrMalformedPayload)
}

func TestHuffman_TrailingGarbage(t *testing.T) {
	codec := NewHuffmanCodec()

	compressed, err := codec.Compress([]byte("abcabc"))
	require.NoError(t, err)

	_, err = codec.Decompress(append(compressed, 0xAA))
	require.ErrorIs(t, err, ErrMalformedPayload)
}

func TestHuffman_DeepFakeTreeRejected(t *testing.T) {
	codec := NewHuffmanCodec()

	// A run of internal markers longer than any real byte-alphabet tree:
	// must be rejected by the depth guard, not recursed into.
	tree := bytes.Repeat([]byte{huffmanInternalMarker}, 1024)
	payload := wireEngine.AppendUint32(nil, uint32(len(tree)))
	payload = append(payload, tree...)

	_, err := codec.Decompress(payload)
	require.ErrorIs(t, err, ErrMalformedPayload)
}
