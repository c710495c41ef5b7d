package lz77

import (
	"errors"

	"github.com/vbroda17/lzhuff/endian"
)

const (
	// Sentinel introduces a match token. A literal 0xFF is written twice.
	Sentinel byte = 0xFF

	// MinMatch is the shortest run worth a match token; shorter runs are
	// written as literals.
	MinMatch = 5

	// MaxMatch is the longest match a single token may carry. It is the
	// largest length whose high byte is not Sentinel: a token starting
	// FF FF would read back as an escaped literal.
	MaxMatch = 0xFEFF

	// MaxWindowSize is the largest window whose distances fit a token, and the
	// default window size.
	MaxWindowSize = 0xFFFF

	matchTokenSize = 1 + 2*endian.Uint16Size
)

var (
	ErrInvalidWindowSize = errors.New("lz77: window size out of range")
	ErrCorrupt           = errors.New("lz77: corrupt stream")
	ErrTruncated         = errors.New("lz77: stream ends inside a token")
)

var tokenEngine = endian.GetBigEndianEngine()

// AppendLiteral appends the literal token for b to dst.
func AppendLiteral(dst []byte, b byte) []byte {
	if b == Sentinel {
		return append(dst, Sentinel, Sentinel)
	}

	return append(dst, b)
}

// AppendMatch appends a match token to dst. The caller guarantees
// MinMatch <= length <= MaxMatch and 1 <= distance <= MaxWindowSize.
func AppendMatch(dst []byte, length, distance int) []byte {
	dst = append(dst, Sentinel)
	dst = tokenEngine.AppendUint16(dst, uint16(length))   //nolint:gosec
	dst = tokenEngine.AppendUint16(dst, uint16(distance)) //nolint:gosec

	return dst
}

// parseMatch decodes the length and distance fields of a match token whose
// sentinel is tok[0].
func parseMatch(tok []byte) (length, distance int) {
	length = int(tokenEngine.Uint16(tok[1:3]))
	distance = int(tokenEngine.Uint16(tok[3:5]))

	return length, distance
}
