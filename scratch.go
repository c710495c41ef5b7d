package lzhuff

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vbroda17/lzhuff/internal/pool"
)

// scratch holds the intermediate LZ77 stream between the two stages.
type scratch interface {
	io.ReadWriteSeeker
	Close() error
}

func newScratch(cfg *config) (scratch, error) {
	if cfg.inMemory {
		return &memScratch{ByteBuffer: pool.GetScratchBuffer()}, nil
	}

	f, err := os.CreateTemp(cfg.tempDir, "lzhuff-*.lz77")
	if err != nil {
		return nil, fmt.Errorf("lzhuff: create scratch: %w", err)
	}

	return &fileScratch{File: f}, nil
}

// rewind seeks s back to its start for the next stage to read.
func rewind(s io.Seeker) error {
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("lzhuff: rewind scratch: %w", err)
	}

	return nil
}

type memScratch struct {
	*pool.ByteBuffer
}

func (m *memScratch) Close() error {
	if m.ByteBuffer != nil {
		pool.PutScratchBuffer(m.ByteBuffer)
		m.ByteBuffer = nil
	}

	return nil
}

// fileScratch removes its file on Close.
type fileScratch struct {
	*os.File
}

func (f *fileScratch) Close() error {
	return errors.Join(f.File.Close(), os.Remove(f.Name()))
}
