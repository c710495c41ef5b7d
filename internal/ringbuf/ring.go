// Package ringbuf implements a fixed-capacity circular byte buffer over a
// logically unbounded stream.
//
// A Buffer holds at most Cap() bytes. Positions are relative to the oldest
// retained byte (logical index 0) and wrap modulo the capacity internally.
// Appending to a full buffer evicts the oldest bytes first.
//
// The LZ77 compressor keeps search window and lookahead in one Buffer; the
// decompressor keeps its dictionary of recent output in another.
package ringbuf

import (
	"errors"
	"io"
)

// Buffer is a circular byte buffer. The zero value is unusable; use New.
type Buffer struct {
	buf  []byte
	at   int // physical index of logical byte 0
	size int // number of valid bytes, 0 <= size <= len(buf)
}

// New returns an empty Buffer holding at most capacity bytes.
// It panics if capacity is not positive.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		panic("ringbuf: capacity must be positive")
	}

	return &Buffer{buf: make([]byte, capacity)}
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int {
	return b.size
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// Free returns the number of bytes that can be appended without eviction.
func (b *Buffer) Free() int {
	return len(b.buf) - b.size
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.at = 0
	b.size = 0
}

func (b *Buffer) writePos() int {
	return (b.at + b.size) % len(b.buf)
}

// At returns the byte at logical index i.
// It panics if i is outside [0, Len()).
func (b *Buffer) At(i int) byte {
	if i < 0 || i >= b.size {
		panic("ringbuf: index out of range")
	}

	return b.buf[(b.at+i)%len(b.buf)]
}

// Fill appends bytes read from r until the buffer is full or r is exhausted.
// It never evicts. Reaching the end of r is not an error: Fill returns the
// bytes read and a nil error, and 0, nil once r has nothing left.
func (b *Buffer) Fill(r io.Reader) (int, error) {
	total := 0
	for b.size < len(b.buf) {
		w := b.writePos()
		end := len(b.buf)
		if w < b.at {
			end = b.at
		}

		n, err := io.ReadFull(r, b.buf[w:end])
		b.size += n
		total += n
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return total, nil
			}

			return total, err
		}
	}

	return total, nil
}

// Write appends p, evicting the oldest bytes as needed, and returns how many
// bytes were evicted. When len(p) exceeds the capacity only the last Cap()
// bytes of p are retained.
func (b *Buffer) Write(p []byte) (evicted int) {
	c := len(b.buf)
	if len(p) >= c {
		evicted = b.size + len(p) - c
		copy(b.buf, p[len(p)-c:])
		b.at = 0
		b.size = c

		return evicted
	}

	if over := b.size + len(p) - c; over > 0 {
		evicted = over
		b.at = (b.at + over) % c
		b.size -= over
	}

	w := b.writePos()
	n := copy(b.buf[w:], p)
	copy(b.buf, p[n:])
	b.size += len(p)

	return evicted
}

// WriteByte appends a single byte, evicting the oldest byte when full.
// It always returns nil.
func (b *Buffer) WriteByte(c byte) error {
	b.buf[b.writePos()] = c
	if b.size == len(b.buf) {
		b.at = (b.at + 1) % len(b.buf)
	} else {
		b.size++
	}

	return nil
}

// Peek copies up to len(dst) bytes starting at logical index start into dst
// and returns the number copied. It returns 0 when start is outside
// [0, Len()).
func (b *Buffer) Peek(dst []byte, start int) int {
	if start < 0 || start >= b.size {
		return 0
	}

	n := min(b.size-start, len(dst))
	p := (b.at + start) % len(b.buf)
	m := copy(dst[:n], b.buf[p:])
	copy(dst[m:n], b.buf)

	return n
}

// Discard drops the n oldest bytes and returns how many were dropped.
// Discarding more than Len() empties the buffer.
func (b *Buffer) Discard(n int) int {
	if n <= 0 {
		return 0
	}
	if n >= b.size {
		dropped := b.size
		b.Reset()

		return dropped
	}
	b.at = (b.at + n) % len(b.buf)
	b.size -= n

	return n
}
