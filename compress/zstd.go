package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor is a Zstandard baseline at one encoder speed. Encoders are
// pooled per speed and decoders are shared, since klauspost/compress coders
// run allocation-free once warmed up.
type ZstdCompressor struct {
	level zstd.EncoderLevel
}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd compressor at zstd.SpeedDefault.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{level: zstd.SpeedDefault}
}

// NewZstdCompressorLevel creates a Zstd compressor for a zstd command-line
// level (1-22). Level 0 selects the default speed.
func NewZstdCompressorLevel(level int) ZstdCompressor {
	if level == 0 {
		return NewZstdCompressor()
	}

	return ZstdCompressor{level: zstd.EncoderLevelFromZstd(level)}
}

// Level returns the encoder speed.
func (c ZstdCompressor) Level() zstd.EncoderLevel {
	return c.level
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// zstdEncoderPools holds one *sync.Pool of encoders per zstd.EncoderLevel.
var zstdEncoderPools sync.Map

func zstdEncoderPool(level zstd.EncoderLevel) *sync.Pool {
	if p, ok := zstdEncoderPools.Load(level); ok {
		return p.(*sync.Pool)
	}

	p, _ := zstdEncoderPools.LoadOrStore(level, &sync.Pool{
		New: func() any {
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(level),
				zstd.WithEncoderCRC(false),
			)
			if err != nil {
				panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
			}

			return encoder
		},
	})

	return p.(*sync.Pool)
}

// Compress compresses the input data using Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	level := c.level
	if level == 0 {
		level = zstd.SpeedDefault
	}
	pool := zstdEncoderPool(level)
	encoder := pool.Get().(*zstd.Encoder)
	defer pool.Put(encoder)

	// EncodeAll is stateless, safe with a pooled encoder
	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data. Frames from every level
// decode with the same decoder.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
