// Package format defines the identifiers shared by the lzhuff codecs and the
// tools built on top of them.
package format

import "strings"

type CompressionType uint8

const (
	CompressionNone    CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionLZ77    CompressionType = 0x2 // CompressionLZ77 represents the sentinel-token LZ77 codec.
	CompressionHuffman CompressionType = 0x3 // CompressionHuffman represents the header-prefixed Huffman codec.
	CompressionDeflate CompressionType = 0x4 // CompressionDeflate represents LZ77 followed by Huffman.
	CompressionZstd    CompressionType = 0x5 // CompressionZstd represents Zstandard compression.
	CompressionS2      CompressionType = 0x6 // CompressionS2 represents S2 compression.
	CompressionLZ4     CompressionType = 0x7 // CompressionLZ4 represents LZ4 block compression.
	CompressionSnappy  CompressionType = 0x8 // CompressionSnappy represents Snappy block compression.
	CompressionBrotli  CompressionType = 0x9 // CompressionBrotli represents Brotli compression.
)

// Baselines lists the reference points measured next to the in-house codecs:
// the pass-through ratio 1.0 row, then the third-party algorithms.
var Baselines = []CompressionType{
	CompressionNone,
	CompressionZstd,
	CompressionS2,
	CompressionLZ4,
	CompressionSnappy,
	CompressionBrotli,
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZ77:
		return "LZ77"
	case CompressionHuffman:
		return "Huffman"
	case CompressionDeflate:
		return "Deflate"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionSnappy:
		return "Snappy"
	case CompressionBrotli:
		return "Brotli"
	default:
		return "Unknown"
	}
}

// Extension returns the file name suffix a stage of the pipeline appends to its
// output, or "" when the type has no on-disk representation of its own.
//
// A deflate artifact is named by chaining the stages: "data.txt.lz77.huff".
func (c CompressionType) Extension() string {
	switch c {
	case CompressionLZ77:
		return ".lz77"
	case CompressionHuffman:
		return ".huff"
	case CompressionDeflate:
		return ".lz77.huff"
	default:
		return ""
	}
}

// ParseCompressionType returns the type whose String matches name, ignoring
// ASCII case.
func ParseCompressionType(name string) (CompressionType, bool) {
	for c := CompressionNone; c <= CompressionBrotli; c++ {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}

	return 0, false
}
