package bench

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/vbroda17/lzhuff/compress"
)

// Result is one measured compress/decompress run.
type Result struct {
	Stats  compress.CompressionStats
	Name   string
	Window int // LZ77 window size, 0 when the algorithm has none
}

// Label names the result for reports, "LZ77/w4096" or "Zstd".
func (r Result) Label() string {
	if r.Window == 0 {
		return r.Name
	}

	return fmt.Sprintf("%s/w%d", r.Name, r.Window)
}

// Recorder accumulates results. It is not safe for concurrent use.
type Recorder struct {
	results []Result
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends res.
func (r *Recorder) Record(res Result) {
	r.results = append(r.results, res)
}

// Len returns the number of recorded results.
func (r *Recorder) Len() int {
	return len(r.results)
}

// Results returns a copy of the recorded results in recording order.
func (r *Recorder) Results() []Result {
	return slices.Clone(r.results)
}

// Series returns the results named name, ordered by window size.
func (r *Recorder) Series(name string) []Result {
	var out []Result
	for _, res := range r.results {
		if res.Name == name {
			out = append(out, res)
		}
	}
	slices.SortStableFunc(out, func(a, b Result) int {
		return cmp.Compare(a.Window, b.Window)
	})

	return out
}
