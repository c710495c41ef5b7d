package lz77

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vbroda17/lzhuff/internal/ringbuf"
)

// copyChunkSize bounds each sub-copy of a match through the dictionary.
const copyChunkSize = 0x2000

// Decompress reads an LZ77 token stream from src and writes the original
// bytes to dst.
//
// The stream is read in fixed-size chunks. A token split across a chunk
// boundary is carried to the front of the buffer and completed by the next
// read, so a token is only parsed once all of its bytes are present.
//
// It returns ErrCorrupt for a match that reaches before the start of the
// output or outside the window, and ErrTruncated when the input ends in the
// middle of a token.
func Decompress(src io.Reader, dst io.Writer, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	d := &decoder{
		dict:  ringbuf.New(cfg.windowSize),
		w:     bufio.NewWriter(dst),
		chunk: make([]byte, copyChunkSize),
	}

	buf := make([]byte, cfg.readChunkSize)
	n := 0
	eof := false
	var offset int64 // input offset of buf[0], for error messages

	for {
		if !eof {
			m, err := io.ReadFull(src, buf[n:])
			n += m
			if err != nil {
				if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
					return fmt.Errorf("lz77: read input: %w", err)
				}
				eof = true
			}
		}
		if n == 0 {
			break
		}

		i, err := d.parse(buf[:n])
		if err != nil {
			return fmt.Errorf("%w at offset %d", err, offset+int64(i))
		}
		if i < n && eof {
			return fmt.Errorf("%w: %d trailing bytes at offset %d", ErrTruncated, n-i, offset+int64(i))
		}

		n = copy(buf, buf[i:n])
		offset += int64(i)
	}

	if err := d.w.Flush(); err != nil {
		return fmt.Errorf("lz77: write output: %w", err)
	}

	return nil
}

type decoder struct {
	dict  *ringbuf.Buffer // most recent output, at most one window
	w     *bufio.Writer
	chunk []byte
}

// parse decodes every complete token in p and returns how many bytes it
// consumed. An incomplete token at the end of p is left unconsumed.
func (d *decoder) parse(p []byte) (int, error) {
	i := 0
	for i < len(p) {
		if p[i] != Sentinel {
			if err := d.literal(p[i]); err != nil {
				return i, err
			}
			i++

			continue
		}

		if len(p)-i < 2 {
			break
		}
		if p[i+1] == Sentinel {
			if err := d.literal(Sentinel); err != nil {
				return i, err
			}
			i += 2

			continue
		}

		if len(p)-i < matchTokenSize {
			break
		}
		length, distance := parseMatch(p[i : i+matchTokenSize])
		if err := d.match(length, distance); err != nil {
			return i, err
		}
		i += matchTokenSize
	}

	return i, nil
}

func (d *decoder) literal(b byte) error {
	_ = d.dict.WriteByte(b)
	if err := d.w.WriteByte(b); err != nil {
		return fmt.Errorf("lz77: write output: %w", err)
	}

	return nil
}

// match copies length bytes from distance bytes back. Each sub-chunk is
// peeked from the dictionary and written back into it before the next one is
// read, so a distance shorter than the length replays the bytes this same
// copy produced.
func (d *decoder) match(length, distance int) error {
	if length < MinMatch || length > MaxMatch {
		return fmt.Errorf("%w: match length %d", ErrCorrupt, length)
	}
	if distance < 1 || distance > d.dict.Len() {
		return fmt.Errorf("%w: match distance %d with %d bytes of history", ErrCorrupt, distance, d.dict.Len())
	}

	pos := d.dict.Len() - distance
	for copied := 0; copied < length; {
		n := d.dict.Peek(d.chunk[:min(length-copied, len(d.chunk))], pos)
		evicted := d.dict.Write(d.chunk[:n])
		pos += n - evicted

		if _, err := d.w.Write(d.chunk[:n]); err != nil {
			return fmt.Errorf("lz77: write output: %w", err)
		}
		copied += n
	}

	return nil
}
