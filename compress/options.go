package compress

import (
	"fmt"

	"github.com/vbroda17/lzhuff/internal/options"
)

type codecConfig struct {
	level int
}

// CodecOption configures CreateCodec.
type CodecOption = options.Option[*codecConfig]

// WithLevel selects a codec-specific compression level. 0 keeps each codec's
// default. The scale is the codec's native one:
//   - Zstd: zstd levels 1-22, mapped onto the klauspost encoder speeds
//   - S2: 1 default, 2 better, 3 and up best
//   - LZ4: 1-9 selects the HC compressor at that level
//   - Brotli: 1-11
//
// Codecs without levels ignore it.
func WithLevel(level int) CodecOption {
	return options.New(func(c *codecConfig) error {
		if level < 0 {
			return fmt.Errorf("compress: negative level %d", level)
		}
		c.level = level

		return nil
	})
}
