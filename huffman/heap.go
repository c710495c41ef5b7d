package huffman

// nodeHeap is a container/heap min-queue of arena indices ordered by
// frequency, then by index so ties resolve in creation order.
type nodeHeap struct {
	nodes []node
	items []int32
}

func (h *nodeHeap) Len() int { return len(h.items) }

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if fa, fb := h.nodes[a].freq, h.nodes[b].freq; fa != fb {
		return fa < fb
	}

	return a < b
}

func (h *nodeHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *nodeHeap) Push(x any) { h.items = append(h.items, x.(int32)) }

func (h *nodeHeap) Pop() any {
	n := len(h.items) - 1
	x := h.items[n]
	h.items = h.items[:n]

	return x
}
