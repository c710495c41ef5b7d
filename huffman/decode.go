package huffman

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vbroda17/lzhuff/endian"
)

// Decode reads a header and payload produced by Encode from src and writes
// the decoded bytes to dst. Exactly the number of bits named by the header is
// consumed from the payload; any trailing bytes in src are left unread beyond
// the current chunk.
func (t *Tree) Decode(src io.Reader, dst io.Writer) error {
	var header [endian.WordSize]byte
	if _, err := io.ReadFull(src, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: missing %d-byte header", ErrTruncated, endian.WordSize)
		}

		return fmt.Errorf("huffman: read header: %w", err)
	}

	total := endian.Word(headerEngine, header[:])
	if total == 0 {
		return nil
	}
	if t.root == noChild {
		return fmt.Errorf("%w: %d bits for an empty tree", ErrCorrupt, total)
	}

	d := decoder{tree: t, cur: t.root, w: bufio.NewWriterSize(dst, writeBufferSize)}
	buf := make([]byte, readChunkSize)
	for d.consumed < total {
		n, rerr := src.Read(buf)
		if n > 0 {
			bits := min(uint64(n)*8, total-d.consumed)
			if err := d.walk(buf, bits); err != nil {
				return err
			}
		}
		if d.consumed == total {
			break
		}
		if errors.Is(rerr, io.EOF) {
			return fmt.Errorf("%w: header claims %d bits, stream holds %d", ErrTruncated, total, d.consumed)
		}
		if rerr != nil {
			return fmt.Errorf("huffman: read input: %w", rerr)
		}
	}

	if d.cur != t.root {
		return fmt.Errorf("%w: stream ends inside a code", ErrCorrupt)
	}

	if err := d.w.Flush(); err != nil {
		return fmt.Errorf("huffman: write output: %w", err)
	}

	return nil
}

type decoder struct {
	tree     *Tree
	cur      int32
	consumed uint64
	w        *bufio.Writer
}

// walk follows the first bits bits of p, least significant bit of each byte first.
func (d *decoder) walk(p []byte, bits uint64) error {
	nodes := d.tree.nodes
	root := d.tree.root
	leafRoot := nodes[root].isLeaf()

	for i := range bits {
		bit := p[i>>3] >> (i & 7) & 1

		if leafRoot {
			if bit != 0 {
				return fmt.Errorf("%w: bit 1 at %d for a single-symbol tree", ErrCorrupt, d.consumed+i)
			}
			if err := d.w.WriteByte(nodes[root].symbol); err != nil {
				return fmt.Errorf("huffman: write output: %w", err)
			}

			continue
		}

		next := nodes[d.cur].children[bit]
		if next == noChild {
			return fmt.Errorf("%w: no branch at bit %d", ErrCorrupt, d.consumed+i)
		}
		d.cur = next
		if nodes[next].isLeaf() {
			if err := d.w.WriteByte(nodes[next].symbol); err != nil {
				return fmt.Errorf("huffman: write output: %w", err)
			}
			d.cur = root
		}
	}
	d.consumed += bits

	return nil
}
