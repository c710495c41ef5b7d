package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2 block encoders, fastest to smallest output. All produce the same
// format and decode with s2.Decode.
var s2Encoders = [...]func(dst, src []byte) []byte{
	s2.Encode,
	s2.EncodeBetter,
	s2.EncodeBest,
}

// S2Compressor is an S2 block-format baseline.
type S2Compressor struct {
	mode int // index into s2Encoders
}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 compressor using the default encoder.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// NewS2CompressorLevel maps level 0 or 1 to s2.Encode, 2 to s2.EncodeBetter
// and anything higher to s2.EncodeBest.
func NewS2CompressorLevel(level int) S2Compressor {
	return S2Compressor{mode: min(max(level-1, 0), len(s2Encoders)-1)}
}

// Compress compresses the input data as one S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2Encoders[c.mode](nil, data), nil
}

// Decompress decodes one S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
