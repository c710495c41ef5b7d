// Package lzhuff chains the lz77 and huffman codecs into a deflate-style
// pipeline: LZ77 removes repeated substrings, Huffman then entropy-codes the
// resulting token stream.
//
// # Basic Usage
//
// Streams:
//
//	out, _ := os.Create("data.lz77.huff")
//	tree, err := lzhuff.Compress(in, out, lzhuff.WithWindowSize(4096))
//	…
//	err = lzhuff.Decompress(packed, restored, tree, lzhuff.WithWindowSize(4096))
//
// Files:
//
//	paths, err := lzhuff.CompressFile("data.txt")
//	// paths.LZ77 == "data.txt.lz77", paths.Huffman == "data.txt.lz77.huff"
//	err = lzhuff.DecompressFile(paths.Huffman, "data.restored")
//
// # Tree Transport
//
// The Huffman format does not store its code table. Compress returns the
// tree it built; keep it to decompress in-process. The file API instead
// leaves the intermediate .lz77 file next to the .lz77.huff output, and
// DecompressFile rebuilds the tree from it.
//
// # Scratch Storage
//
// Both directions stage the intermediate LZ77 stream: in a temporary file by
// default (see WithTempDir), or in pooled memory with WithInMemoryScratch.
// Scratch storage is released before the functions return.
package lzhuff

import (
	"fmt"
	"io"

	"github.com/vbroda17/lzhuff/huffman"
	"github.com/vbroda17/lzhuff/lz77"
)

// Compress LZ77-compresses src, builds a Huffman tree over the token stream
// and writes the Huffman encoding of that stream to dst.
//
// Parameters:
//   - src: data to compress, read to EOF
//   - dst: seekable sink for the Huffman header and payload
//   - opts: WithWindowSize, WithTempDir, WithInMemoryScratch
//
// Returns:
//   - *huffman.Tree: the tree Decompress needs
//   - error: option, I/O or codec error
func Compress(src io.Reader, dst io.WriteSeeker, opts ...Option) (*huffman.Tree, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	s, err := newScratch(cfg)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	if err = lz77.Compress(src, s, cfg.lz77Options()...); err != nil {
		return nil, err
	}

	return encodeScratch(s, dst)
}

// encodeScratch builds a tree over the LZ77 stream in s and encodes s to dst.
func encodeScratch(s io.ReadSeeker, dst io.WriteSeeker) (*huffman.Tree, error) {
	if err := rewind(s); err != nil {
		return nil, err
	}
	tree, err := huffman.Build(s)
	if err != nil {
		return nil, err
	}

	if err = rewind(s); err != nil {
		return nil, err
	}
	if err = tree.Encode(s, dst); err != nil {
		return nil, err
	}

	return tree, nil
}

// Decompress reverses Compress. tree must be the tree Compress returned, or
// one rebuilt from the same LZ77 stream, and the window size must match.
func Decompress(src io.Reader, dst io.Writer, tree *huffman.Tree, opts ...Option) error {
	if tree == nil {
		return fmt.Errorf("lzhuff: nil huffman tree")
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	s, err := newScratch(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err = tree.Decode(src, s); err != nil {
		return err
	}
	if err = rewind(s); err != nil {
		return err
	}

	return lz77.Decompress(s, dst, cfg.lz77Options()...)
}
