package lzhuff

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vbroda17/lzhuff/huffman"
	"github.com/vbroda17/lzhuff/internal/pool"
	"github.com/vbroda17/lzhuff/lz77"
)

func sampleInputs() map[string][]byte {
	rng := rand.New(rand.NewPCG(3, 5))
	random := make([]byte, 8*1024)
	for i := range random {
		random[i] = byte(rng.IntN(256))
	}

	return map[string][]byte{
		"empty":    nil,
		"one byte": []byte("q"),
		"run":      bytes.Repeat([]byte("a"), 10),
		"sentinel": bytes.Repeat([]byte{0xFF, 0x00, 0xFF, 0xFF}, 500),
		"text":     []byte(strings.Repeat("How much wood would a woodchuck chuck? ", 300)),
		"random":   random,
	}
}

func roundTrip(t *testing.T, data []byte, opts ...Option) []byte {
	t.Helper()

	packed := pool.NewByteBuffer(0)
	tree, err := Compress(bytes.NewReader(data), packed, opts...)
	require.NoError(t, err)
	require.NotNil(t, tree)

	var out bytes.Buffer
	require.NoError(t, Decompress(bytes.NewReader(packed.Bytes()), &out, tree, opts...))
	require.Equal(t, len(data), out.Len())
	if len(data) > 0 {
		require.Equal(t, data, out.Bytes())
	}

	return packed.Bytes()
}

func TestRoundTrip(t *testing.T) {
	scratchModes := map[string][]Option{
		"temp file": {WithTempDir(t.TempDir())},
		"memory":    {WithInMemoryScratch()},
	}

	for mode, base := range scratchModes {
		for name, data := range sampleInputs() {
			for _, window := range []int{1, 16, 255, 4096} {
				t.Run(fmt.Sprintf("%s/%s/w%d", mode, name, window), func(t *testing.T) {
					roundTrip(t, data, append(base, WithWindowSize(window))...)
				})
			}
		}
	}
}

func TestCompress_Scenarios(t *testing.T) {
	t.Run("empty input is a bare zero header", func(t *testing.T) {
		packed := roundTrip(t, nil, WithInMemoryScratch())
		require.Equal(t, make([]byte, 8), packed)
	})

	t.Run("single byte is a one-leaf tree", func(t *testing.T) {
		packed := pool.NewByteBuffer(0)
		tree, err := Compress(bytes.NewReader([]byte("q")), packed, WithInMemoryScratch())
		require.NoError(t, err)
		require.Equal(t, 1, tree.Leaves())
		require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0, 0}, packed.Bytes())
	})

	t.Run("tree is built over the token stream", func(t *testing.T) {
		packed := pool.NewByteBuffer(0)
		tree, err := Compress(bytes.NewReader(bytes.Repeat([]byte("a"), 10)), packed,
			WithInMemoryScratch(), WithWindowSize(16))
		require.NoError(t, err)

		// tokens: 'a' FF 00 09 00 01
		require.Equal(t, map[byte]uint64{'a': 1, 0xFF: 1, 0x00: 2, 0x09: 1, 0x01: 1}, tree.Frequencies())
	})

	t.Run("text shrinks", func(t *testing.T) {
		data := sampleInputs()["text"]
		packed := roundTrip(t, data, WithInMemoryScratch())
		require.Less(t, len(packed), len(data)/4)
	})
}

func TestScratchIsRemoved(t *testing.T) {
	dir := t.TempDir()
	roundTrip(t, sampleInputs()["text"], WithTempDir(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestOptions(t *testing.T) {
	_, err := Compress(bytes.NewReader(nil), pool.NewByteBuffer(0), WithWindowSize(0))
	require.ErrorIs(t, err, lz77.ErrInvalidWindowSize)

	_, err = Compress(bytes.NewReader(nil), pool.NewByteBuffer(0), WithWindowSize(lz77.MaxWindowSize+1))
	require.ErrorIs(t, err, lz77.ErrInvalidWindowSize)

	_, err = Compress(bytes.NewReader(nil), pool.NewByteBuffer(0), WithTempDir(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)
}

func TestDecompress_Errors(t *testing.T) {
	data := sampleInputs()["text"]
	packed := pool.NewByteBuffer(0)
	tree, err := Compress(bytes.NewReader(data), packed, WithInMemoryScratch())
	require.NoError(t, err)

	var out bytes.Buffer
	require.Error(t, Decompress(bytes.NewReader(packed.Bytes()), &out, nil))

	err = Decompress(bytes.NewReader(packed.Bytes()[:12]), &out, tree, WithInMemoryScratch())
	require.ErrorIs(t, err, huffman.ErrTruncated)

	other, err := huffman.Build(bytes.NewReader([]byte("xyz")))
	require.NoError(t, err)
	out.Reset()
	err = Decompress(bytes.NewReader(packed.Bytes()), &out, other, WithInMemoryScratch())
	if err == nil {
		require.NotEqual(t, data, out.Bytes())
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	data := sampleInputs()["text"]
	input := filepath.Join(dir, "wood.txt")
	require.NoError(t, os.WriteFile(input, data, 0o600))

	paths, err := CompressFile(input, WithWindowSize(1024), WithTempDir(dir))
	require.NoError(t, err)
	require.Equal(t, input+".lz77", paths.LZ77)
	require.Equal(t, input+".lz77.huff", paths.Huffman)

	lz, err := os.ReadFile(paths.LZ77)
	require.NoError(t, err)
	require.Less(t, len(lz), len(data))

	restored := filepath.Join(dir, "wood.restored")
	require.NoError(t, DecompressFile(paths.Huffman, restored, WithWindowSize(1024), WithTempDir(dir)))

	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, data, got)

	// only the input and three artifacts remain
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 4)
}

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := CompressFile(filepath.Join(dir, "absent.txt"))
	require.Error(t, err)

	err = DecompressFile(filepath.Join(dir, "plain.txt"), filepath.Join(dir, "out"))
	require.ErrorIs(t, err, ErrNotCompressed)

	// tree source missing
	err = DecompressFile(filepath.Join(dir, "gone.txt.lz77.huff"), filepath.Join(dir, "out"))
	require.Error(t, err)
}

func TestPaths(t *testing.T) {
	p := PathsFor("dir/a.txt")
	require.Equal(t, Paths{Input: "dir/a.txt", LZ77: "dir/a.txt.lz77", Huffman: "dir/a.txt.lz77.huff"}, p)

	src, err := SourcePath(p.Huffman)
	require.NoError(t, err)
	require.Equal(t, "dir/a.txt", src)

	_, err = SourcePath(".lz77.huff")
	require.ErrorIs(t, err, ErrNotCompressed)
	_, err = SourcePath("a.txt.lz77")
	require.ErrorIs(t, err, ErrNotCompressed)
}
