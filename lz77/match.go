package lz77

import "github.com/vbroda17/lzhuff/internal/ringbuf"

// FindMatch returns the longest run at logical index windowSize of buf (the
// lookahead) that also starts somewhere in [0, windowSize) (the seen region).
//
// The scan walks the seen region once. A candidate that grows keeps
// consuming positions, and on a mismatch the scan resumes at the mismatching
// position instead of backtracking to just after the candidate's start, so
// the cost stays linear in the window. A candidate may run on into the
// lookahead itself, which yields distances shorter than the match length.
//
// It returns (windowSize-start, length) for the best candidate, or (0, 0)
// when not even one byte matches. length never exceeds MaxMatch or the
// lookahead available in buf.
func FindMatch(buf *ringbuf.Buffer, windowSize int) (distance, length int) {
	var (
		start, matchLen int
		bestStart       int
		bestLen         int
		i               int
	)

	n := buf.Len()
	for matchLen+windowSize < n && matchLen < MaxMatch {
		if buf.At(i) == buf.At(windowSize+matchLen) {
			if matchLen == 0 {
				start = i
			}
			matchLen++
			i++
		} else {
			if matchLen > bestLen {
				bestStart, bestLen = start, matchLen
			} else if matchLen == 0 {
				i++
			}
			matchLen = 0
		}

		if matchLen == 0 && i >= windowSize {
			break
		}
	}
	if matchLen > bestLen {
		bestStart, bestLen = start, matchLen
	}

	if bestLen == 0 {
		return 0, 0
	}

	return windowSize - bestStart, bestLen
}
