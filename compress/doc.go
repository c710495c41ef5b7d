// Package compress provides byte-slice codecs for lzhuff and the baseline
// algorithms it is measured against.
//
// # Overview
//
// The lz77 and huffman packages are streaming codecs. This package wraps
// the ones that fit a plain byte-slice contract behind three interfaces so
// benchmark code can treat them uniformly:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): pass-through, the ratio 1.0 reference
//   - LZ77 (format.CompressionLZ77): the sentinel-token ring-buffer codec;
//     NewLZ77Compressor selects the window, the registry uses the largest
//   - Zstd (format.CompressionZstd): klauspost/compress, pooled coders
//   - S2 (format.CompressionS2): klauspost/compress block format
//   - LZ4 (format.CompressionLZ4): pierrec/lz4 block format
//   - Snappy (format.CompressionSnappy): golang/snappy block format
//   - Brotli (format.CompressionBrotli): andybalholm/brotli stream
//
// Huffman and Deflate are deliberately absent. Their decoders need a
// huffman.Tree rebuilt from the pre-encode data, which the byte-slice
// contract cannot carry; CreateCodec reports ErrNeedsTree for them. Use the
// lzhuff package for the full pipeline.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	start := time.Now()
//	packed, err := codec.Compress(data)
//	…
//	stats := compress.CompressionStats{
//	    Algorithm:         format.CompressionZstd,
//	    OriginalSize:      int64(len(data)),
//	    CompressedSize:    int64(len(packed)),
//	    CompressionTimeNs: time.Since(start).Nanoseconds(),
//	}
//	fmt.Printf("%.2f%% saved\n", stats.SpaceSavings())
//
// # Thread Safety
//
// Every Codec in this package is a value type without mutable state and is
// safe for concurrent use. Zstd and LZ4 draw their working state from
// sync.Pool.
package compress
