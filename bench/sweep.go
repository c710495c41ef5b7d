package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/vbroda17/lzhuff/compress"
	"github.com/vbroda17/lzhuff/format"
	"github.com/vbroda17/lzhuff/internal/hash"
)

// ErrRoundTrip is returned when a codec's output does not decompress back
// to its input.
var ErrRoundTrip = errors.New("bench: round trip mismatch")

// Sweep measures LZ77 and the LZ77+Huffman pipeline at every configured
// window size, Huffman alone once, and each baseline codec once. Every run
// is verified by comparing xxHash digests of the input and the restored
// output.
//
// Parameters:
//   - data: input to compress; it is not modified
//   - opts: WithWindows, WithBaselines, WithLevel, WithRepeat
//
// Returns:
//   - *Recorder: one Result per measurement, in measurement order
//   - error: option error, codec error or ErrRoundTrip
func Sweep(data []byte, opts ...Option) (*Recorder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	m := measurer{data: data, sum: hash.Sum(data), repeat: cfg.repeat}
	rec := NewRecorder()

	for _, w := range cfg.windows {
		res, err := m.measure(format.CompressionLZ77, w, compress.NewLZ77Compressor(w))
		if err != nil {
			return rec, err
		}
		rec.Record(res)

		res, err = m.measure(format.CompressionDeflate, w, &deflateCodec{window: w})
		if err != nil {
			return rec, err
		}
		rec.Record(res)
	}

	res, err := m.measure(format.CompressionHuffman, 0, &huffmanCodec{})
	if err != nil {
		return rec, err
	}
	rec.Record(res)

	for _, typ := range cfg.baselines {
		codec, err := compress.CreateCodec(typ, "baseline", compress.WithLevel(cfg.level))
		if err != nil {
			return rec, err
		}
		res, err := m.measure(typ, 0, codec)
		if err != nil {
			return rec, err
		}
		rec.Record(res)
	}

	return rec, nil
}

type measurer struct {
	data   []byte
	sum    uint64
	repeat int
}

func (m measurer) measure(typ format.CompressionType, window int, codec compress.Codec) (Result, error) {
	res := Result{
		Name:   typ.String(),
		Window: window,
		Stats: compress.CompressionStats{
			Algorithm:    typ,
			OriginalSize: int64(len(m.data)),
		},
	}

	var compressNs, decompressNs int64
	for range m.repeat {
		start := time.Now()
		packed, err := codec.Compress(m.data)
		if err != nil {
			return res, fmt.Errorf("bench: %s: %w", res.Label(), err)
		}
		compressNs += time.Since(start).Nanoseconds()

		start = time.Now()
		restored, err := codec.Decompress(packed)
		if err != nil {
			return res, fmt.Errorf("bench: %s: %w", res.Label(), err)
		}
		decompressNs += time.Since(start).Nanoseconds()

		if len(restored) != len(m.data) || hash.Sum(restored) != m.sum {
			return res, fmt.Errorf("%w: %s restored %d of %d bytes", ErrRoundTrip, res.Label(), len(restored), len(m.data))
		}
		res.Stats.CompressedSize = int64(len(packed))
	}

	res.Stats.CompressionTimeNs = compressNs / int64(m.repeat)
	res.Stats.DecompressionTimeNs = decompressNs / int64(m.repeat)

	return res, nil
}
