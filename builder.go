package hufftree

import (
	"container/heap"
)

// Build constructs a Huffman tree for the given frequency table.
//
// The table must be non-empty, and every frequency must be non-zero.  If
// not, Build returns an error wrapping ErrInvalidInput.
//
// Build seeds a minheap with one Leaf per Symbol, in ascending Symbol order,
// then repeatedly pops the two lightest trees a and b and pushes
// NewInternal(a, b) until only one tree remains.  Trees of equal weight pop
// in the order they were pushed.
//
// A table with one Symbol yields a lone *Leaf.  A table with N >= 2 Symbols
// yields a tree with N leaves and N-1 *Internal nodes.
//
func Build(freqs Frequencies) (Tree, error) {
	if err := freqs.Validate(); err != nil {
		return nil, err
	}

	symbols := freqs.Symbols()

	// Step 1: build a minheap of leaves.

	h := treeHeap{list: make([]treeAndSeq, 0, len(symbols))}
	for _, symbol := range symbols {
		h.push(NewLeaf(symbol, uint64(freqs[symbol])))
	}
	h.Init()

	// Step 2: process the minheap by popping two trees, combining them
	// into a new Internal node, and pushing the new node back onto the
	// minheap.  Each merge removes one tree from the heap, so this runs
	// exactly len(symbols)-1 times.

	for h.Len() > 1 {
		a := heap.Pop(&h).(treeAndSeq)
		b := heap.Pop(&h).(treeAndSeq)
		heap.Push(&h, h.wrap(NewInternal(a.tree, b.tree)))
	}

	root := heap.Pop(&h).(treeAndSeq)
	return root.tree, nil
}

// Generate builds a Huffman tree for the given frequency table and returns
// its Codebook.  It is equivalent to calling Build followed by Extract.
func Generate(freqs Frequencies) (Codebook, error) {
	tree, err := Build(freqs)
	if err != nil {
		return nil, err
	}
	return Extract(tree), nil
}

// type treeAndSeq + type treeHeap {{{

// treeAndSeq pairs a tree with its insertion sequence number, which breaks
// ties between trees of equal weight.
type treeAndSeq struct {
	tree Tree
	seq  uint64
}

type treeHeap struct {
	list    []treeAndSeq
	nextSeq uint64
}

func (h *treeHeap) wrap(tree Tree) treeAndSeq {
	item := treeAndSeq{tree: tree, seq: h.nextSeq}
	h.nextSeq++
	return item
}

// push appends without restoring the heap invariant; call Init afterward.
func (h *treeHeap) push(tree Tree) {
	h.list = append(h.list, h.wrap(tree))
}

func (h *treeHeap) Init() {
	heap.Init(h)
}

func (h *treeHeap) Len() int {
	return len(h.list)
}

func (h *treeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *treeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.tree.Weight(), b.tree.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (h *treeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(treeAndSeq))
}

func (h *treeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = treeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*treeHeap)(nil)

// }}}
