package bench

import (
	"fmt"
	"slices"

	"github.com/vbroda17/lzhuff/format"
	"github.com/vbroda17/lzhuff/internal/options"
	"github.com/vbroda17/lzhuff/lz77"
)

// DefaultWindows spans the useful range of LZ77 window sizes.
var DefaultWindows = []int{16, 256, 4096, lz77.MaxWindowSize}

type config struct {
	windows   []int
	baselines []format.CompressionType
	level     int
	repeat    int
}

// Option configures Sweep.
type Option = options.Option[*config]

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		windows:   DefaultWindows,
		baselines: format.Baselines,
		repeat:    1,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithWindows sets the LZ77 window sizes to sweep. Duplicates are dropped
// and the sizes are measured in ascending order.
func WithWindows(windows ...int) Option {
	return options.New(func(c *config) error {
		if len(windows) == 0 {
			return fmt.Errorf("bench: no window sizes")
		}
		for _, w := range windows {
			if w < 1 || w > lz77.MaxWindowSize {
				return fmt.Errorf("bench: %w: %d", lz77.ErrInvalidWindowSize, w)
			}
		}
		ws := slices.Clone(windows)
		slices.Sort(ws)
		c.windows = slices.Compact(ws)

		return nil
	})
}

// WithBaselines sets the registry codecs measured once each next to the
// sweep. With no arguments no baselines are measured.
func WithBaselines(types ...format.CompressionType) Option {
	return options.NoError(func(c *config) {
		c.baselines = types
	})
}

// WithLevel sets the compression level of every baseline codec, on each
// codec's own scale. See compress.WithLevel.
func WithLevel(level int) Option {
	return options.New(func(c *config) error {
		if level < 0 {
			return fmt.Errorf("bench: negative level %d", level)
		}
		c.level = level

		return nil
	})
}

// WithRepeat runs every measurement n times and records mean timings.
func WithRepeat(n int) Option {
	return options.New(func(c *config) error {
		if n < 1 {
			return fmt.Errorf("bench: repeat must be positive, got %d", n)
		}
		c.repeat = n

		return nil
	})
}
