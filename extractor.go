package hufftree

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/chronos-tachyon/assert"
)

// Row describes one leaf of a Huffman tree: its Symbol, its weight (the
// Symbol's frequency), and its Code.
type Row struct {
	Symbol Symbol
	Weight uint64
	Code   Code
}

// Extract walks a Huffman tree and returns the Code for each Symbol.  The
// Code for a Symbol is the path from the root to its Leaf, with 0 for each
// left branch and 1 for each right branch.
//
// If the tree is a lone Leaf, its Symbol is assigned the one-bit Code "0".
//
func Extract(tree Tree) Codebook {
	codebook := make(Codebook)
	walk(tree, func(leaf *Leaf, hc Code) {
		codebook[leaf.symbol] = hc
	})
	return codebook
}

// Rows walks a Huffman tree and returns one Row per Leaf, in depth-first
// order with left subtrees before right subtrees.  The Codes are the same
// ones Extract would assign.
func Rows(tree Tree) []Row {
	var rows []Row
	walk(tree, func(leaf *Leaf, hc Code) {
		rows = append(rows, Row{Symbol: leaf.symbol, Weight: leaf.weight, Code: hc})
	})
	return rows
}

func walk(tree Tree, fn func(*Leaf, Code)) {
	assert.Assertf(tree != nil, "tree is nil")

	if leaf, ok := tree.(*Leaf); ok {
		fn(leaf, MakeCode(0))
		return
	}

	var path pathBuffer
	path.init()

	var visit func(Tree)
	visit = func(t Tree) {
		switch node := t.(type) {
		case *Leaf:
			fn(node, path.code())
		case *Internal:
			path.push(0)
			visit(node.left)
			path.pop()

			path.push(1)
			visit(node.right)
			path.pop()
		default:
			assert.Assertf(false, "unexpected node type %T", t)
		}
	}
	visit(tree)
}

// pathBuffer holds the bits from the root to the node currently being
// visited.  It belongs to a single walk and is never shared.
type pathBuffer struct {
	bits  *bitset.BitSet
	depth uint
}

func (p *pathBuffer) init() {
	p.bits = bitset.New(64)
	p.depth = 0
}

func (p *pathBuffer) push(bit byte) {
	p.bits.SetTo(p.depth, bit != 0)
	p.depth++
}

func (p *pathBuffer) pop() {
	assert.Assertf(p.depth > 0, "pop from empty path")
	p.depth--
}

// code returns a copy of the current path as a Code.
func (p *pathBuffer) code() Code {
	set := bitset.New(p.depth)
	for i := uint(0); i < p.depth; i++ {
		if p.bits.Test(i) {
			set.Set(i)
		}
	}
	return Code{size: p.depth, bits: set}
}
