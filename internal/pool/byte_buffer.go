// Package pool provides reusable in-memory buffers for the codecs.
//
// ByteBuffer behaves like a small in-memory file: it implements io.Reader,
// io.Writer and io.Seeker over a single position, so it can stand in for an
// *os.File wherever a codec needs random access (the Huffman encoder seeks
// back to patch its header).
package pool

import (
	"errors"
	"io"
	"sync"
)

const (
	ScratchBufferDefaultSize  = 1024 * 64        // 64KiB
	ScratchBufferMaxThreshold = 1024 * 1024 * 16 // 16MiB
)

var errNegativePosition = errors.New("pool: negative position")

type ByteBuffer struct {
	// B is the underlying byte slice.
	B   []byte
	off int // current read/write position
}

var (
	_ io.ReadWriteSeeker = (*ByteBuffer)(nil)
	_ io.WriterTo        = (*ByteBuffer)(nil)
)

// NewByteBuffer creates a new empty ByteBuffer with the specified capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the whole underlying byte slice regardless of position.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and rewinds it, keeping the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
	bb.off = 0
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Pos returns the current read/write position.
func (bb *ByteBuffer) Pos() int {
	return bb.off
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow by ScratchBufferDefaultSize, larger ones by 25% of their
// capacity, and never by less than requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ScratchBufferDefaultSize
	if cap(bb.B) > 4*ScratchBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write writes data at the current position, overwriting existing bytes and
// extending the buffer as needed. A gap left by seeking past the end is
// zero-filled, as with a sparse file.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	end := bb.off + len(data)
	if end > len(bb.B) {
		bb.Grow(end - len(bb.B))
		old := len(bb.B)
		bb.B = bb.B[:end]
		if bb.off > old {
			clear(bb.B[old:bb.off])
		}
	}
	copy(bb.B[bb.off:end], data)
	bb.off = end

	return len(data), nil
}

// Read reads from the current position.
func (bb *ByteBuffer) Read(p []byte) (int, error) {
	if bb.off >= len(bb.B) {
		if len(p) == 0 {
			return 0, nil
		}

		return 0, io.EOF
	}
	n := copy(p, bb.B[bb.off:])
	bb.off += n

	return n, nil
}

// Seek implements io.Seeker. Seeking beyond the end is allowed; the next
// Write fills the gap with zeros.
func (bb *ByteBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(bb.off)
	case io.SeekEnd:
		base = int64(len(bb.B))
	default:
		return 0, errors.New("pool: invalid whence")
	}

	pos := base + offset
	if pos < 0 {
		return 0, errNegativePosition
	}
	bb.off = int(pos)

	return pos, nil
}

// WriteTo writes the unread part of the buffer to w and advances the position.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	if bb.off >= len(bb.B) {
		return 0, nil
	}
	n, err := w.Write(bb.B[bb.off:])
	bb.off += n

	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers whose capacity grew beyond maxThreshold are dropped on Put instead
// of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var scratchPool = NewByteBufferPool(ScratchBufferDefaultSize, ScratchBufferMaxThreshold)

// GetScratchBuffer retrieves a ByteBuffer from the default scratch pool.
func GetScratchBuffer() *ByteBuffer {
	return scratchPool.Get()
}

// PutScratchBuffer returns a ByteBuffer to the default scratch pool.
func PutScratchBuffer(bb *ByteBuffer) {
	scratchPool.Put(bb)
}
