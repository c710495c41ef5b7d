package huffman

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vbroda17/lzhuff/endian"
)

var headerEngine = endian.GetLittleEndianEngine()

const writeBufferSize = 32 * 1024

// Encode writes the header and the codes of every byte of src to dst.
//
// dst must be positioned where the encoding should start. On success dst is
// left positioned just after the last payload byte.
//
// Parameters:
//   - src: data to encode; every byte must have a code in t
//   - dst: seekable sink, the header is patched in after the payload
//
// Returns:
//   - error: ErrMissingCode for a byte outside the tree, or an I/O error
func (t *Tree) Encode(src io.Reader, dst io.WriteSeeker) error {
	start, err := dst.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("huffman: locate header: %w", err)
	}
	if _, err = dst.Seek(start+endian.WordSize, io.SeekStart); err != nil {
		return fmt.Errorf("huffman: reserve header: %w", err)
	}

	e := encoder{tree: t, w: bufio.NewWriterSize(dst, writeBufferSize)}
	if err = e.encode(src); err != nil {
		return err
	}

	var header [endian.WordSize]byte
	endian.PutWord(headerEngine, header[:], e.total)
	if _, err = dst.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("huffman: seek header: %w", err)
	}
	if _, err = dst.Write(header[:]); err != nil {
		return fmt.Errorf("huffman: write header: %w", err)
	}
	if _, err = dst.Seek(start+endian.WordSize+e.written, io.SeekStart); err != nil {
		return fmt.Errorf("huffman: seek end: %w", err)
	}

	return nil
}

type encoder struct {
	tree    *Tree
	w       *bufio.Writer
	acc     uint64 // pending bits, first bit in bit 0
	pending uint   // number of valid bits in acc, always < 64
	total   uint64
	written int64
	word    [endian.WordSize]byte
}

func (e *encoder) encode(src io.Reader) error {
	buf := make([]byte, readChunkSize)
	for {
		n, rerr := src.Read(buf)
		for _, b := range buf[:n] {
			if err := e.put(b); err != nil {
				return err
			}
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return fmt.Errorf("huffman: read input: %w", rerr)
		}
	}

	if e.pending > 0 {
		headerEngine.PutUint64(e.word[:], e.acc)
		if err := e.write(e.word[:(e.pending+7)/8]); err != nil {
			return err
		}
	}

	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("huffman: write output: %w", err)
	}

	return nil
}

func (e *encoder) put(b byte) error {
	c := e.tree.codes[b]
	if c.Len == 0 {
		return fmt.Errorf("%w: 0x%02x at bit %d", ErrMissingCode, b, e.total)
	}

	e.acc |= c.Bits << e.pending
	e.pending += uint(c.Len)
	e.total += uint64(c.Len)
	if e.pending < 64 {
		return nil
	}

	headerEngine.PutUint64(e.word[:], e.acc)
	if err := e.write(e.word[:]); err != nil {
		return err
	}
	e.pending -= 64
	// bits of c that did not fit; shifting by 64 yields 0
	e.acc = c.Bits >> (uint(c.Len) - e.pending)

	return nil
}

func (e *encoder) write(p []byte) error {
	n, err := e.w.Write(p)
	e.written += int64(n)
	if err != nil {
		return fmt.Errorf("huffman: write output: %w", err)
	}

	return nil
}
