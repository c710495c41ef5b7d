package lzhuff

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vbroda17/lzhuff/format"
	"github.com/vbroda17/lzhuff/huffman"
	"github.com/vbroda17/lzhuff/lz77"
)

// ErrNotCompressed is returned by DecompressFile for a path without the
// .lz77.huff suffix.
var ErrNotCompressed = errors.New("lzhuff: not a compressed file name")

// Paths names the files of one CompressFile run.
type Paths struct {
	Input   string
	LZ77    string // intermediate token stream, the tree source
	Huffman string // final output
}

// PathsFor returns the artifact names CompressFile derives from input.
func PathsFor(input string) Paths {
	return Paths{
		Input:   input,
		LZ77:    input + format.CompressionLZ77.Extension(),
		Huffman: input + format.CompressionDeflate.Extension(),
	}
}

// SourcePath returns the original input name for a .lz77.huff path.
func SourcePath(huffPath string) (string, error) {
	src, ok := strings.CutSuffix(huffPath, format.CompressionDeflate.Extension())
	if !ok || src == "" {
		return "", fmt.Errorf("%w: %s", ErrNotCompressed, huffPath)
	}

	return src, nil
}

// CompressFile writes path.lz77 and path.lz77.huff next to path.
// Existing files with those names are overwritten.
//
// The .lz77 file is the Huffman tree source and must be kept for
// DecompressFile.
func CompressFile(path string, opts ...Option) (Paths, error) {
	paths := PathsFor(path)

	cfg, err := newConfig(opts)
	if err != nil {
		return paths, err
	}

	in, err := os.Open(path)
	if err != nil {
		return paths, fmt.Errorf("lzhuff: open input: %w", err)
	}
	defer in.Close()

	mid, err := os.Create(paths.LZ77)
	if err != nil {
		return paths, fmt.Errorf("lzhuff: create %s: %w", paths.LZ77, err)
	}
	defer mid.Close()

	if err = lz77.Compress(in, mid, cfg.lz77Options()...); err != nil {
		return paths, err
	}

	out, err := os.Create(paths.Huffman)
	if err != nil {
		return paths, fmt.Errorf("lzhuff: create %s: %w", paths.Huffman, err)
	}

	if _, err = encodeScratch(mid, out); err != nil {
		_ = out.Close()
		return paths, err
	}
	if err = out.Close(); err != nil {
		return paths, fmt.Errorf("lzhuff: close %s: %w", paths.Huffman, err)
	}

	return paths, mid.Close()
}

// LoadTree rebuilds the Huffman tree for huffPath from its .lz77 sibling.
func LoadTree(huffPath string) (*huffman.Tree, error) {
	src, err := SourcePath(huffPath)
	if err != nil {
		return nil, err
	}

	lzPath := PathsFor(src).LZ77
	f, err := os.Open(lzPath)
	if err != nil {
		return nil, fmt.Errorf("lzhuff: open tree source: %w", err)
	}
	defer f.Close()

	return huffman.Build(f)
}

// DecompressFile restores the input of CompressFile from huffPath into
// outPath. The tree is rebuilt from the .lz77 file next to huffPath, and the
// window size must match the one used to compress.
func DecompressFile(huffPath, outPath string, opts ...Option) error {
	tree, err := LoadTree(huffPath)
	if err != nil {
		return err
	}

	in, err := os.Open(huffPath)
	if err != nil {
		return fmt.Errorf("lzhuff: open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("lzhuff: create output: %w", err)
	}

	if err = Decompress(in, out, tree, opts...); err != nil {
		_ = out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("lzhuff: close output: %w", err)
	}

	return nil
}
