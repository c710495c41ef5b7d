package lzhuff

import (
	"fmt"
	"os"

	"github.com/vbroda17/lzhuff/internal/options"
	"github.com/vbroda17/lzhuff/lz77"
)

type config struct {
	window   int
	tempDir  string
	inMemory bool
}

// Option configures the pipeline functions.
type Option = options.Option[*config]

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		window:  lz77.MaxWindowSize,
		tempDir: os.TempDir(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) lz77Options() []lz77.Option {
	return []lz77.Option{lz77.WithWindowSize(c.window)}
}

// WithWindowSize sets the LZ77 search window, 1 <= n <= lz77.MaxWindowSize.
// Compression and decompression of one stream must use the same value.
func WithWindowSize(n int) Option {
	return options.New(func(c *config) error {
		if n < 1 || n > lz77.MaxWindowSize {
			return fmt.Errorf("%w: %d", lz77.ErrInvalidWindowSize, n)
		}
		c.window = n

		return nil
	})
}

// WithTempDir sets the directory for the intermediate LZ77 scratch file.
// The default is os.TempDir().
func WithTempDir(dir string) Option {
	return options.NoError(func(c *config) {
		c.tempDir = dir
	})
}

// WithInMemoryScratch keeps the intermediate LZ77 stream in a pooled memory
// buffer instead of a temporary file.
func WithInMemoryScratch() Option {
	return options.NoError(func(c *config) {
		c.inMemory = true
	})
}
