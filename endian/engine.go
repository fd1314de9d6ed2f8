// Package endian provides byte order utilities for the archive wire format.
//
// The archive format is big-endian end to end: LZW codes and the Huffman
// length fields are all serialized in network byte order. This package
// combines the ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single EndianEngine so the byte order is named in one place and the
// append-style fast path is available to encoders.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.BigEndian and binary.LittleEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine.
//
// This is the byte order of every multi-byte field in the archive format;
// codecs should obtain their engine here rather than referencing
// binary.BigEndian directly.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
//
// No archive field uses little-endian order; this exists for tools that
// need to interoperate with foreign little-endian framing.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
