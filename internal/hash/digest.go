// Package hash computes the content digests used to verify codec round trips.
package hash

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest streams r to EOF and returns its xxHash64 and length.
func Digest(r io.Reader) (sum uint64, n int64, err error) {
	d := xxhash.New()
	n, err = io.Copy(d, r)
	if err != nil {
		return 0, n, err
	}

	return d.Sum64(), n, nil
}

// Writer is an io.Writer that hashes everything written through it, so a
// decoder's output can be verified without keeping it in memory.
type Writer struct {
	d *xxhash.Digest
	n int64
}

// NewWriter returns an empty hashing writer.
func NewWriter() *Writer {
	return &Writer{d: xxhash.New()}
}

func (w *Writer) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return w.d.Write(p)
}

// Sum64 returns the digest of the bytes written so far.
func (w *Writer) Sum64() uint64 {
	return w.d.Sum64()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int64 {
	return w.n
}
