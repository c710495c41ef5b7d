package huffman

import (
	"container/heap"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMissingCode is returned when Encode meets a byte the tree has no code for.
	ErrMissingCode = errors.New("huffman: byte has no code")
	// ErrCorrupt is returned when the encoded bits do not describe a path in the tree.
	ErrCorrupt = errors.New("huffman: corrupt stream")
	// ErrTruncated is returned when the stream holds fewer bits than its header claims.
	ErrTruncated = errors.New("huffman: truncated stream")
	// ErrCodeTooLong is returned when a code would not fit in 64 bits.
	ErrCodeTooLong = errors.New("huffman: code longer than 64 bits")
)

// MaxCodeLen is the longest code the encoder's shift buffer can hold.
const MaxCodeLen = 64

const readChunkSize = 4096

// Code is a prefix code. The first bit on the wire is bit 0 of Bits.
type Code struct {
	Bits uint64
	Len  uint8
}

// String renders the code in wire order, first bit leftmost.
func (c Code) String() string {
	out := make([]byte, c.Len)
	for i := range out {
		out[i] = '0' + byte(c.Bits>>i&1)
	}

	return string(out)
}

const noChild = -1

type node struct {
	freq     uint64
	children [2]int32
	symbol   byte
}

func (n *node) isLeaf() bool {
	return n.children[0] == noChild
}

// Tree is a Huffman tree over byte symbols. Nodes live in a flat arena and
// refer to their children by index. Leaves occupy the arena in ascending
// symbol order, followed by internal nodes in merge order.
type Tree struct {
	nodes  []node
	root   int32
	freqs  [256]uint64
	codes  [256]Code
	leaves int
	depth  int
}

// Build counts the bytes of r and builds a tree from the counts.
func Build(r io.Reader) (*Tree, error) {
	var freqs [256]uint64
	buf := make([]byte, readChunkSize)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			freqs[b]++
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("huffman: read input: %w", err)
		}
	}

	return BuildFromFrequencies(freqs)
}

// BuildFromFrequencies builds a tree over every byte with a non-zero count.
//
// With no counted bytes the tree is empty and can only encode empty input.
// With one counted byte the root is that leaf and its code is the single bit 0.
func BuildFromFrequencies(freqs [256]uint64) (*Tree, error) {
	t := &Tree{root: noChild, freqs: freqs}

	for s, f := range freqs {
		if f == 0 {
			continue
		}
		t.nodes = append(t.nodes, node{freq: f, children: [2]int32{noChild, noChild}, symbol: byte(s)})
	}
	t.leaves = len(t.nodes)
	if t.leaves == 0 {
		return t, nil
	}

	t.nodes = append(make([]node, 0, 2*t.leaves-1), t.nodes...)
	h := &nodeHeap{nodes: t.nodes, items: make([]int32, t.leaves)}
	for i := range h.items {
		h.items[i] = int32(i)
	}
	heap.Init(h)

	for h.Len() > 1 {
		a := heap.Pop(h).(int32)
		b := heap.Pop(h).(int32)
		t.nodes = append(t.nodes, node{
			freq:     t.nodes[a].freq + t.nodes[b].freq,
			children: [2]int32{a, b},
		})
		h.nodes = t.nodes
		heap.Push(h, int32(len(t.nodes)-1))
	}
	t.root = heap.Pop(h).(int32)

	if err := t.assignCodes(); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tree) assignCodes() error {
	if t.nodes[t.root].isLeaf() {
		t.codes[t.nodes[t.root].symbol] = Code{Bits: 0, Len: 1}
		t.depth = 1

		return nil
	}

	type frame struct {
		idx   int32
		code  uint64
		depth int
	}
	stack := []frame{{idx: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[f.idx]
		if n.isLeaf() {
			t.codes[n.symbol] = Code{Bits: f.code, Len: uint8(f.depth)}
			t.depth = max(t.depth, f.depth)

			continue
		}
		if f.depth == MaxCodeLen {
			return fmt.Errorf("%w: frequency table of %d symbols", ErrCodeTooLong, t.leaves)
		}
		for bit, child := range n.children {
			stack = append(stack, frame{
				idx:   child,
				code:  f.code | uint64(bit)<<f.depth,
				depth: f.depth + 1,
			})
		}
	}

	return nil
}

// Code returns the code for b and whether b is in the tree.
func (t *Tree) Code(b byte) (Code, bool) {
	c := t.codes[b]

	return c, c.Len > 0
}

// Frequencies returns the count of every byte the tree was built from.
func (t *Tree) Frequencies() map[byte]uint64 {
	m := make(map[byte]uint64, t.leaves)
	for s, f := range t.freqs {
		if f > 0 {
			m[byte(s)] = f
		}
	}

	return m
}

// Leaves returns the number of distinct bytes in the tree.
func (t *Tree) Leaves() int {
	return t.leaves
}

// Size returns the number of nodes, leaves and internal.
func (t *Tree) Size() int {
	return len(t.nodes)
}

// Depth returns the length of the longest code, 0 for an empty tree.
func (t *Tree) Depth() int {
	return t.depth
}

// EncodedBits returns the number of bits Encode produces for the data the
// tree was built from.
func (t *Tree) EncodedBits() uint64 {
	var total uint64
	for s, f := range t.freqs {
		total += f * uint64(t.codes[s].Len)
	}

	return total
}

// Dump writes the tree breadth-first, one line per level. Leaves print as
// (freq:'c') and internal nodes as (freq).
func (t *Tree) Dump(w io.Writer) error {
	if t.root == noChild {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}

	level := []int32{t.root}
	for len(level) > 0 {
		var next []int32
		for i, idx := range level {
			sep := " "
			if i == 0 {
				sep = ""
			}
			n := &t.nodes[idx]
			var err error
			if n.isLeaf() {
				_, err = fmt.Fprintf(w, "%s(%d:%q)", sep, n.freq, n.symbol)
			} else {
				_, err = fmt.Fprintf(w, "%s(%d)", sep, n.freq)
				next = append(next, n.children[0], n.children[1])
			}
			if err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		level = next
	}

	return nil
}
