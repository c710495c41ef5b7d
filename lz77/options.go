package lz77

import (
	"fmt"

	"github.com/vbroda17/lzhuff/internal/options"
)

const defaultReadChunkSize = 0x2000

type config struct {
	windowSize    int
	readChunkSize int
}

// Option configures Compress and Decompress.
type Option = options.Option[*config]

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		windowSize:    MaxWindowSize,
		readChunkSize: defaultReadChunkSize,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithWindowSize sets the maximum back-reference distance, 1 <= n <= MaxWindowSize.
// The default is MaxWindowSize.
func WithWindowSize(n int) Option {
	return options.New(func(c *config) error {
		if n < 1 || n > MaxWindowSize {
			return fmt.Errorf("%w: %d", ErrInvalidWindowSize, n)
		}
		c.windowSize = n

		return nil
	})
}

// WithReadChunkSize sets the size of the buffer Decompress reads the token
// stream through. Values below the size of a match token are raised to it.
func WithReadChunkSize(n int) Option {
	return options.NoError(func(c *config) {
		c.readChunkSize = max(n, matchTokenSize)
	})
}
