// Package lz77 implements a sliding-window LZ77 codec with a byte-aligned,
// sentinel-escaped token stream.
//
// # Wire Format
//
// The compressed stream is a sequence of tokens:
//
//	b            literal byte, b != 0xFF
//	FF FF        literal 0xFF
//	FF LL LL DD DD
//	             match: copy LLLL bytes starting DDDD bytes back in the
//	             output produced so far (both big-endian uint16)
//
// Matches satisfy MinMatch <= length <= MaxMatch and 1 <= distance <= window
// size. MaxMatch (0xFEFF) keeps the first length byte distinct from the
// sentinel, so "FF FF" is never ambiguous.
//
// A distance shorter than the length is legal: the copy replays bytes it has
// just produced, which is how runs are encoded ("aaaaaaaaaa" becomes the
// literal 'a' followed by a match of length 9 at distance 1).
//
// The stream has no header. An empty input compresses to an empty stream.
//
// # Usage
//
//	var compressed bytes.Buffer
//	if err := lz77.Compress(src, &compressed, lz77.WithWindowSize(4096)); err != nil {
//	    return err
//	}
//	err := lz77.Decompress(&compressed, dst, lz77.WithWindowSize(4096))
//
// The window size is not recorded in the stream. The decompressor must be
// given a window at least as large as the one used to compress.
//
// Compress and Decompress keep all state on the stack of the call and are
// safe to run concurrently on different streams.
package lz77
