package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// maxLZ4Output bounds the decode buffer; block LZ4 does not record the
// decompressed size.
const maxLZ4Output = 128 * 1024 * 1024

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor is an LZ4 block-format baseline. A non-zero level switches
// to the slower high-compression encoder; the block format is unchanged.
type LZ4Compressor struct {
	level lz4.CompressionLevel
}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 compressor using the fast encoder.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{level: lz4.Fast}
}

// NewLZ4CompressorLevel creates an LZ4 compressor. Level 0 is the fast
// encoder; 1-9 select lz4.Level1 through lz4.Level9 of the HC encoder.
func NewLZ4CompressorLevel(level int) LZ4Compressor {
	if level <= 0 {
		return NewLZ4Compressor()
	}

	return LZ4Compressor{level: lz4.CompressionLevel(1 << (8 + min(level, 9)))}
}

// Compress compresses data as a single LZ4 block.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	var (
		n   int
		err error
	)
	if c.level == lz4.Fast {
		lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
		n, err = lc.CompressBlock(data, dst)
		lz4CompressorPool.Put(lc)
	} else {
		hc := lz4.CompressorHC{Level: c.level}
		n, err = hc.CompressBlock(data, dst)
	}
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decodes a single LZ4 block.
//
// The output size is unknown, so decoding starts with a buffer 4x the input
// and doubles it on lz4.ErrInvalidSourceShortBuffer, up to 128MiB.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; size <= maxLZ4Output; size *= 2 {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
	}

	return nil, fmt.Errorf("lz4 decompression failed: %w", lz4.ErrInvalidSourceShortBuffer)
}
