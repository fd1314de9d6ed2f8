package compress

import (
	"container/heap"
	"fmt"

	"github.com/Seraph-coder/lab-2-archiver-program/internal/bitstream"
	"github.com/Seraph-coder/lab-2-archiver-program/internal/pool"
)

const (
	huffmanLeafMarker     = 0x01
	huffmanInternalMarker = 0x00

	// huffmanMaxDepth bounds tree deserialization. A prefix tree over the
	// 256-symbol byte alphabet is never deeper than 255, so anything deeper
	// is not a tree this encoder could have produced.
	huffmanMaxDepth = 255
)

// HuffmanCodec implements prefix-code compression. Each call builds a
// frequency-weighted binary tree over the byte values present in the input
// and serializes the exact tree in front of the bit-packed payload, so the
// payload is fully self-describing.
//
// Payload layout, all length fields big-endian uint32:
//
//	[treeLen:4][preorder tree][encLen:4][packed bits][symbolCount:4]
//
// Tree grammar (preorder): a leaf is 0x01 followed by the symbol byte; an
// internal node is 0x00 followed by its left then right subtree. Bits are
// packed MSB-first; trailing pad bits in the final byte carry no meaning —
// symbolCount is what delimits decoding.
type HuffmanCodec struct{}

var _ Codec = HuffmanCodec{}

// NewHuffmanCodec creates a new prefix-code codec.
func NewHuffmanCodec() HuffmanCodec {
	return HuffmanCodec{}
}

type huffmanNode struct {
	left   *huffmanNode
	right  *huffmanNode
	freq   int
	seq    int // insertion order, breaks frequency ties deterministically
	symbol byte
}

func (n *huffmanNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// huffmanHeap is a min-heap over node frequency for container/heap.
type huffmanHeap []*huffmanNode

func (h huffmanHeap) Len() int { return len(h) }

func (h huffmanHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}

	return h[i].seq < h[j].seq
}

func (h huffmanHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *huffmanHeap) Push(x any) {
	*h = append(*h, x.(*huffmanNode))
}

func (h *huffmanHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return node
}

// buildHuffmanTree returns the root of the frequency-weighted tree, or nil
// when the input contained no symbols.
func buildHuffmanTree(freq *[256]int) *huffmanNode {
	h := make(huffmanHeap, 0, 256)
	seq := 0
	for sym, f := range freq {
		if f == 0 {
			continue
		}
		h = append(h, &huffmanNode{symbol: byte(sym), freq: f, seq: seq})
		seq++
	}
	if len(h) == 0 {
		return nil
	}

	heap.Init(&h)
	for h.Len() > 1 {
		left := heap.Pop(&h).(*huffmanNode)
		right := heap.Pop(&h).(*huffmanNode)
		heap.Push(&h, &huffmanNode{left: left, right: right, freq: left.freq + right.freq, seq: seq})
		seq++
	}

	return heap.Pop(&h).(*huffmanNode)
}

// assignCodes fills codes with the root-to-leaf path of every symbol,
// 0 for left and 1 for right. A single-leaf tree gets the one-bit code 0;
// a zero-length code would make decoding loop forever.
func assignCodes(root *huffmanNode, codes *[256][]byte) {
	if root.isLeaf() {
		codes[root.symbol] = []byte{0}
		return
	}

	var walk func(n *huffmanNode, path []byte)
	walk = func(n *huffmanNode, path []byte) {
		if n.isLeaf() {
			code := make([]byte, len(path))
			copy(code, path)
			codes[n.symbol] = code

			return
		}
		walk(n.left, append(path, 0))
		walk(n.right, append(path, 1))
	}
	walk(root, make([]byte, 0, 64))
}

func serializeTree(n *huffmanNode, buf *pool.ByteBuffer) {
	if n.isLeaf() {
		_ = buf.WriteByte(huffmanLeafMarker)
		_ = buf.WriteByte(n.symbol)

		return
	}

	_ = buf.WriteByte(huffmanInternalMarker)
	serializeTree(n.left, buf)
	serializeTree(n.right, buf)
}

// deserializeTree parses the preorder grammar starting at *pos and advances
// it. depth guards against corrupt input posing as an absurdly deep tree.
func deserializeTree(tree []byte, pos *int, depth int) (*huffmanNode, error) {
	if depth > huffmanMaxDepth {
		return nil, fmt.Errorf("prefix tree deeper than %d: %w", huffmanMaxDepth, ErrMalformedPayload)
	}
	if *pos >= len(tree) {
		return nil, fmt.Errorf("prefix tree truncated at byte %d: %w", *pos, ErrMalformedPayload)
	}

	marker := tree[*pos]
	*pos++

	switch marker {
	case huffmanLeafMarker:
		if *pos >= len(tree) {
			return nil, fmt.Errorf("prefix tree leaf missing symbol: %w", ErrMalformedPayload)
		}
		sym := tree[*pos]
		*pos++

		return &huffmanNode{symbol: sym}, nil
	case huffmanInternalMarker:
		left, err := deserializeTree(tree, pos, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := deserializeTree(tree, pos, depth+1)
		if err != nil {
			return nil, err
		}

		return &huffmanNode{left: left, right: right}, nil
	default:
		return nil, fmt.Errorf("invalid prefix tree marker 0x%02X: %w", marker, ErrMalformedPayload)
	}
}

// Compress encodes data with a per-call Huffman tree. It never fails; empty
// input produces the 12-byte all-zero header.
func (c HuffmanCodec) Compress(data []byte) ([]byte, error) {
	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	if len(data) == 0 {
		buf.B = wireEngine.AppendUint32(buf.B, 0) // tree length
		buf.B = wireEngine.AppendUint32(buf.B, 0) // encoded length
		buf.B = wireEngine.AppendUint32(buf.B, 0) // symbol count

		return buf.CopyBytes(), nil
	}

	var freq [256]int
	for _, b := range data {
		freq[b]++
	}

	root := buildHuffmanTree(&freq)

	var codes [256][]byte
	assignCodes(root, &codes)

	treeBuf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(treeBuf)
	serializeTree(root, treeBuf)

	encBuf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(encBuf)
	bw := bitstream.NewWriter(encBuf)
	for _, b := range data {
		for _, bit := range codes[b] {
			bw.WriteBit(uint64(bit))
		}
	}
	bw.Flush()

	buf.Grow(4 + treeBuf.Len() + 4 + encBuf.Len() + 4)
	buf.B = wireEngine.AppendUint32(buf.B, uint32(treeBuf.Len()))
	buf.MustWrite(treeBuf.Bytes())
	buf.B = wireEngine.AppendUint32(buf.B, uint32(encBuf.Len()))
	buf.MustWrite(encBuf.Bytes())
	buf.B = wireEngine.AppendUint32(buf.B, uint32(len(data)))

	return buf.CopyBytes(), nil
}

// Decompress restores the original bytes from a Huffman payload. Every
// length field is bounds-checked before use; any inconsistency fails with
// ErrMalformedPayload rather than reading out of range.
func (c HuffmanCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("payload shorter than tree length field: %w", ErrMalformedPayload)
	}

	treeLen := int(wireEngine.Uint32(data[:4]))
	offset := 4
	if treeLen < 0 || treeLen > len(data)-offset {
		return nil, fmt.Errorf("tree length %d exceeds payload: %w", treeLen, ErrMalformedPayload)
	}
	treeBytes := data[offset : offset+treeLen]
	offset += treeLen

	var root *huffmanNode
	if treeLen > 0 {
		pos := 0
		var err error
		root, err = deserializeTree(treeBytes, &pos, 0)
		if err != nil {
			return nil, err
		}
		if pos != treeLen {
			return nil, fmt.Errorf("%d trailing bytes after prefix tree: %w", treeLen-pos, ErrMalformedPayload)
		}
	}

	if len(data)-offset < 4 {
		return nil, fmt.Errorf("payload missing encoded length field: %w", ErrMalformedPayload)
	}
	encLen := int(wireEngine.Uint32(data[offset : offset+4]))
	offset += 4
	if encLen < 0 || encLen > len(data)-offset {
		return nil, fmt.Errorf("encoded length %d exceeds payload: %w", encLen, ErrMalformedPayload)
	}
	encoded := data[offset : offset+encLen]
	offset += encLen

	if len(data)-offset < 4 {
		return nil, fmt.Errorf("payload missing symbol count field: %w", ErrMalformedPayload)
	}
	symbolCount := int(wireEngine.Uint32(data[offset : offset+4]))
	offset += 4
	if offset != len(data) {
		return nil, fmt.Errorf("%d trailing bytes after symbol count: %w", len(data)-offset, ErrMalformedPayload)
	}

	if symbolCount == 0 {
		return []byte{}, nil
	}
	if root == nil {
		return nil, fmt.Errorf("symbol count %d with empty prefix tree: %w", symbolCount, ErrMalformedPayload)
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)
	buf.Grow(symbolCount)

	br := bitstream.NewReader(encoded)

	if root.isLeaf() {
		// Degenerate single-symbol tree: every symbol was written as the
		// one-bit code 0, so consume one bit per symbol.
		for n := 0; n < symbolCount; n++ {
			if _, err := br.ReadBit(); err != nil {
				return nil, fmt.Errorf("bit stream exhausted in single-symbol payload: %w", ErrMalformedPayload)
			}
			_ = buf.WriteByte(root.symbol)
		}

		return buf.CopyBytes(), nil
	}

	node := root
	for emitted := 0; emitted < symbolCount; {
		bit, err := br.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("bit stream exhausted after %d of %d symbols: %w", emitted, symbolCount, ErrMalformedPayload)
		}

		if bit == 0 {
			node = node.left
		} else {
			node = node.right
		}

		if node.isLeaf() {
			_ = buf.WriteByte(node.symbol)
			node = root
			emitted++
		}
	}

	return buf.CopyBytes(), nil
}
