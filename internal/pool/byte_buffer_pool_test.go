package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Basics(t *testing.T) {
	bb := NewByteBuffer(64)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 64, bb.Cap())

	bb.MustWrite([]byte("hello"))
	require.Equal(t, 5, bb.Len())
	require.Equal(t, []byte("hello"), bb.Bytes())

	require.NoError(t, bb.WriteByte('!'))
	require.Equal(t, []byte("hello!"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 64, bb.Cap(), "Reset must retain capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("abcd"))

	bb.Grow(100)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100)
	require.Equal(t, []byte("abcd"), bb.Bytes(), "Grow must preserve contents")

	// Growing within existing capacity is a no-op.
	capBefore := bb.Cap()
	bb.Grow(1)
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_CopyBytes(t *testing.T) {
	bb := NewByteBuffer(16)

	// Empty buffer copies to an empty, non-nil slice.
	out := bb.CopyBytes()
	require.NotNil(t, out)
	require.Empty(t, out)

	bb.MustWrite([]byte{1, 2, 3})
	out = bb.CopyBytes()
	require.Equal(t, []byte{1, 2, 3}, out)

	// The copy must not alias the pooled backing array.
	bb.B[0] = 99
	require.Equal(t, byte(1), out[0])
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("payload"))
	p.Put(bb)

	bb2 := p.Get()
	require.NotNil(t, bb2)
	require.Equal(t, 0, bb2.Len(), "pooled buffer must come back reset")

	// Put of nil must not panic.
	require.NotPanics(t, func() {
		p.Put(nil)
	})
}

func TestByteBufferPool_Threshold(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.Grow(1024) // exceeds the retention threshold
	p.Put(bb)     // should be discarded, not pooled

	bb2 := p.Get()
	require.LessOrEqual(t, bb2.Cap(), 1024)
	require.Equal(t, 0, bb2.Len())
}

func TestDefaultPayloadPool(t *testing.T) {
	bb := GetPayloadBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("archive payload"))
	PutPayloadBuffer(bb)
}
