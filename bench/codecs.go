package bench

import (
	"bytes"

	"github.com/vbroda17/lzhuff"
	"github.com/vbroda17/lzhuff/huffman"
	"github.com/vbroda17/lzhuff/internal/pool"
)

// huffmanCodec encodes with a tree built from the data it compresses and
// keeps that tree for the matching Decompress. Not safe for concurrent use.
type huffmanCodec struct {
	tree *huffman.Tree
}

func (c *huffmanCodec) Compress(data []byte) ([]byte, error) {
	tree, err := huffman.Build(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	c.tree = tree

	return tree.EncodeBytes(data)
}

func (c *huffmanCodec) Decompress(data []byte) ([]byte, error) {
	return c.tree.DecodeBytes(data)
}

// deflateCodec runs the full LZ77+Huffman pipeline in memory. Like
// huffmanCodec it carries the tree from Compress to Decompress.
type deflateCodec struct {
	window int
	tree   *huffman.Tree
}

func (c *deflateCodec) options() []lzhuff.Option {
	return []lzhuff.Option{lzhuff.WithWindowSize(c.window), lzhuff.WithInMemoryScratch()}
}

func (c *deflateCodec) Compress(data []byte) ([]byte, error) {
	buf := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(buf)

	tree, err := lzhuff.Compress(bytes.NewReader(data), buf, c.options()...)
	if err != nil {
		return nil, err
	}
	c.tree = tree

	return bytes.Clone(buf.Bytes()), nil
}

func (c *deflateCodec) Decompress(data []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := lzhuff.Decompress(bytes.NewReader(data), &out, c.tree, c.options()...); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
