package hufftree

import (
	"github.com/chronos-tachyon/assert"
)

// Resolve attempts to find the Symbol whose Code is hc, by walking the tree
// from its root along the bits of hc.
//
// If hc ends exactly at a Leaf, Resolve returns that Leaf's Symbol and true.
// If hc ends at an Internal node (more bits are required), or if hc is longer
// than the path to the Leaf it reaches, Resolve returns InvalidSymbol and
// false.
//
// A tree consisting of a lone Leaf resolves only the Code "0", matching the
// Code that Extract assigns in that case.
//
func Resolve(tree Tree, hc Code) (Symbol, bool) {
	assert.Assertf(tree != nil, "tree is nil")

	if leaf, ok := tree.(*Leaf); ok {
		if hc.Equal(MakeCode(0)) {
			return leaf.symbol, true
		}
		return InvalidSymbol, false
	}

	node := tree
	for i := uint(0); i < hc.Size(); i++ {
		internal, ok := node.(*Internal)
		if !ok {
			return InvalidSymbol, false
		}
		if hc.Bit(i) == 0 {
			node = internal.left
		} else {
			node = internal.right
		}
	}

	if leaf, ok := node.(*Leaf); ok {
		return leaf.symbol, true
	}
	return InvalidSymbol, false
}
