package lz77

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vbroda17/lzhuff/internal/ringbuf"
)

// Compress reads src to EOF and writes its LZ77 token stream to dst.
//
// The input is staged in a ring buffer of three windows: the seen region
// (up to one window) followed by the lookahead. The buffer is topped up
// whenever it holds less than two windows, so the match finder always has at
// least a window of lookahead until the input runs out.
//
// The first byte is always a literal; it seeds the window.
func Compress(src io.Reader, dst io.Writer, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	maxWindow := cfg.windowSize
	in := ringbuf.New(3 * maxWindow)
	w := bufio.NewWriter(dst)

	if _, err := in.Fill(src); err != nil {
		return fmt.Errorf("lz77: read input: %w", err)
	}
	if in.Len() == 0 {
		return nil
	}

	tok := make([]byte, 0, matchTokenSize)
	emitLiteral := func(b byte) error {
		_, err := w.Write(AppendLiteral(tok[:0], b))
		return err
	}

	if err := emitLiteral(in.At(0)); err != nil {
		return fmt.Errorf("lz77: write output: %w", err)
	}

	window := 1
	for in.Len() > window {
		distance, length := FindMatch(in, window)

		if length < MinMatch {
			length = max(length, 1)
			for i := range length {
				if err := emitLiteral(in.At(window + i)); err != nil {
					return fmt.Errorf("lz77: write output: %w", err)
				}
			}
		} else if _, err := w.Write(AppendMatch(tok[:0], length, distance)); err != nil {
			return fmt.Errorf("lz77: write output: %w", err)
		}

		grow := min(maxWindow-window, length)
		window += grow
		in.Discard(length - grow)

		if in.Len() < 2*maxWindow {
			if _, err := in.Fill(src); err != nil {
				return fmt.Errorf("lz77: read input: %w", err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("lz77: write output: %w", err)
	}

	return nil
}
