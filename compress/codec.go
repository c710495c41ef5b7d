package compress

import (
	"errors"
	"fmt"

	"github.com/vbroda17/lzhuff/format"
	"github.com/vbroda17/lzhuff/internal/options"
	"github.com/vbroda17/lzhuff/lz77"
)

var (
	// ErrUnsupported is returned for compression types that have no Codec.
	ErrUnsupported = errors.New("compress: unsupported compression type")
	// ErrNeedsTree is returned for Huffman-based types. Their decoders need the
	// tree rebuilt from the pre-encode data, which a byte-slice Codec cannot carry.
	ErrNeedsTree = errors.New("compress: compression type needs a huffman tree")
)

// Compressor compresses a whole in-memory payload.
//
// Memory management:
//   - Returned slice is owned by the caller unless the implementation documents otherwise
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Example:
//
//	codec, _ := compress.GetCodec(format.CompressionLZ77)
//	original, err := codec.Decompress(compressed)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Implementations in this package are safe for concurrent use.
type Decompressor interface {
	// Decompress returns an error if data is corrupted or was produced by a
	// different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one measured compress/decompress run.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data
	DecompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
// Values greater than 1.0 indicate expansion, common for LZ77 on random input.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
// It is negative when the output is larger than the input.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression
//   - target: Description of target usage (for error messages)
//   - opts: WithLevel
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: ErrNeedsTree for Huffman and Deflate, ErrUnsupported otherwise
func CreateCodec(compressionType format.CompressionType, target string, opts ...CodecOption) (Codec, error) {
	cfg := &codecConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("invalid %s options: %w", target, err)
	}

	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionLZ77:
		return NewLZ77Compressor(lz77.MaxWindowSize), nil
	case format.CompressionZstd:
		return NewZstdCompressorLevel(cfg.level), nil
	case format.CompressionS2:
		return NewS2CompressorLevel(cfg.level), nil
	case format.CompressionLZ4:
		return NewLZ4CompressorLevel(cfg.level), nil
	case format.CompressionSnappy:
		return NewSnappyCompressor(), nil
	case format.CompressionBrotli:
		if cfg.level == 0 {
			return NewBrotliCompressor(), nil
		}

		return NewBrotliCompressorLevel(cfg.level), nil
	case format.CompressionHuffman, format.CompressionDeflate:
		return nil, fmt.Errorf("%w: %s %s", ErrNeedsTree, target, compressionType)
	default:
		return nil, fmt.Errorf("%w: %s %s", ErrUnsupported, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCompressor(),
	format.CompressionLZ77:   NewLZ77Compressor(lz77.MaxWindowSize),
	format.CompressionZstd:   NewZstdCompressor(),
	format.CompressionS2:     NewS2Compressor(),
	format.CompressionLZ4:    NewLZ4Compressor(),
	format.CompressionSnappy: NewSnappyCompressor(),
	format.CompressionBrotli: NewBrotliCompressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupported, compressionType)
}
