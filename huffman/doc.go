// Package huffman builds a Huffman prefix code from the byte frequencies of a
// stream and encodes or decodes that stream against it.
//
// # Wire Format
//
//	[0, 8)   total number of encoded bits, little-endian uint64
//	[8, …)   codes packed least-significant-bit first, in input order;
//	         bits after the total in the last byte are padding
//
// The code table is not stored. A decoder must rebuild the identical Tree
// from the same unencoded data the encoder was built from:
//
//	tree, err := huffman.Build(bytes.NewReader(data))
//	if err != nil {
//	    return err
//	}
//	err = tree.Encode(bytes.NewReader(data), file) // file must be seekable
//	…
//	err = tree.Decode(file, out)
//
// Encode reserves the header by seeking past it, streams the payload, then
// seeks back to patch in the bit count, so its destination must be an
// io.WriteSeeker that stays open until Encode returns.
//
// # Tree Shape
//
// Construction repeatedly merges the two least frequent nodes. Equal
// frequencies are ordered by creation order, which makes the tree
// deterministic for a given frequency table but not canonical. Code lengths
// are optimal; the exact codes are specific to this implementation.
//
// A stream with a single distinct byte yields a tree that is one leaf. That
// byte is given the 1-bit code 0 so that every occurrence still costs a bit
// and the decoder can count them.
//
// A Tree is immutable after construction and safe for concurrent use.
package huffman
