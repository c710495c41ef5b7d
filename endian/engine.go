// Package endian provides the byte orders used by the lzhuff wire formats.
//
// The two codecs disagree on byte order and the difference is part of their
// formats:
//
//   - LZ77 match tokens carry their length and distance as big-endian uint16.
//   - The Huffman header carries the encoded bit count as a little-endian
//     machine word (fixed at 8 bytes so files move between platforms).
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so token
// writers can append fields without a scratch slice:
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint16(buf, uint16(length))
//
// All functions in this package are safe for concurrent use.
package endian

import "encoding/binary"

const (
	// Uint16Size is the width in bytes of an LZ77 token field.
	Uint16Size = 2
	// WordSize is the width in bytes of the Huffman bit-count header.
	WordSize = 8
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// PutWord writes v into the first WordSize bytes of b using engine.
// It panics if len(b) < WordSize.
func PutWord(engine EndianEngine, b []byte, v uint64) {
	engine.PutUint64(b[:WordSize], v)
}

// Word decodes the first WordSize bytes of b using engine.
// It panics if len(b) < WordSize.
func Word(engine EndianEngine, b []byte) uint64 {
	return engine.Uint64(b[:WordSize])
}
