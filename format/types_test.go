package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		name     string
		cType    CompressionType
		expected string
	}{
		{name: "none", cType: CompressionNone, expected: "None"},
		{name: "lz77", cType: CompressionLZ77, expected: "LZ77"},
		{name: "huffman", cType: CompressionHuffman, expected: "Huffman"},
		{name: "deflate", cType: CompressionDeflate, expected: "Deflate"},
		{name: "zstd", cType: CompressionZstd, expected: "Zstd"},
		{name: "s2", cType: CompressionS2, expected: "S2"},
		{name: "lz4", cType: CompressionLZ4, expected: "LZ4"},
		{name: "snappy", cType: CompressionSnappy, expected: "Snappy"},
		{name: "brotli", cType: CompressionBrotli, expected: "Brotli"},
		{name: "unknown", cType: CompressionType(0xFF), expected: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cType.String())
		})
	}
}

func TestCompressionType_Extension(t *testing.T) {
	require.Equal(t, ".lz77", CompressionLZ77.Extension())
	require.Equal(t, ".huff", CompressionHuffman.Extension())
	require.Equal(t, CompressionLZ77.Extension()+CompressionHuffman.Extension(), CompressionDeflate.Extension())
	require.Empty(t, CompressionZstd.Extension())
}

func TestParseCompressionType(t *testing.T) {
	for _, c := range append([]CompressionType{CompressionLZ77, CompressionHuffman, CompressionDeflate}, Baselines...) {
		got, ok := ParseCompressionType(c.String())
		require.True(t, ok, c.String())
		require.Equal(t, c, got)
	}

	got, ok := ParseCompressionType("zSTD")
	require.True(t, ok)
	require.Equal(t, CompressionZstd, got)

	_, ok = ParseCompressionType("gzip")
	require.False(t, ok)
}

func TestBaselines(t *testing.T) {
	require.Equal(t, CompressionNone, Baselines[0], "pass-through row comes first")
	require.NotContains(t, Baselines, CompressionHuffman)
	require.NotContains(t, Baselines, CompressionDeflate)
}
