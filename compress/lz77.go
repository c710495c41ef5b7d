package compress

import (
	"bytes"

	"github.com/vbroda17/lzhuff/lz77"
)

// LZ77Compressor adapts the streaming lz77 codec to the byte-slice Codec
// interface at a fixed window size.
type LZ77Compressor struct {
	window int
}

var _ Codec = (*LZ77Compressor)(nil)

// NewLZ77Compressor creates an LZ77 codec with the given search window,
// clamped to [1, lz77.MaxWindowSize].
//
// Both sides of a stream must use the same window: a decoder with a smaller
// window rejects distances beyond it.
func NewLZ77Compressor(window int) LZ77Compressor {
	return LZ77Compressor{window: min(max(window, 1), lz77.MaxWindowSize)}
}

// Window returns the search window size.
func (c LZ77Compressor) Window() int {
	return c.window
}

// Compress encodes data as an LZ77 token stream.
func (c LZ77Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var out bytes.Buffer
	out.Grow(len(data))
	if err := lz77.Compress(bytes.NewReader(data), &out, lz77.WithWindowSize(c.window)); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Decompress decodes an LZ77 token stream.
func (c LZ77Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var out bytes.Buffer
	out.Grow(2 * len(data))
	if err := lz77.Decompress(bytes.NewReader(data), &out, lz77.WithWindowSize(c.window)); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
