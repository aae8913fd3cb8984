package hufftree

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Tree is a Huffman code tree.  A Tree is either a *Leaf or an *Internal;
// no other implementations exist.
//
// Trees are built bottom-up and never modified afterward, so a finished Tree
// may be read from any number of goroutines.
type Tree interface {
	// Weight returns the total frequency of every symbol in this subtree.
	Weight() uint64

	isTree()
}

// Leaf is a Tree that represents a single Symbol.
type Leaf struct {
	symbol Symbol
	weight uint64
}

// NewLeaf constructs a Leaf.
func NewLeaf(symbol Symbol, weight uint64) *Leaf {
	assert.Assertf(symbol.IsValid(), "symbol %d is not valid", int32(symbol))
	return &Leaf{symbol: symbol, weight: weight}
}

// Symbol returns the Symbol that this Leaf represents.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

// Weight returns the frequency of this Leaf's Symbol.
func (leaf *Leaf) Weight() uint64 {
	return leaf.weight
}

func (*Leaf) isTree() {}

// Internal is a Tree with exactly two children.  Its weight is always the sum
// of its children's weights.
type Internal struct {
	left   Tree
	right  Tree
	weight uint64
}

// NewInternal constructs an Internal node from two subtrees.  The new node
// owns both subtrees; they must not be reused elsewhere.
func NewInternal(left Tree, right Tree) *Internal {
	assert.Assertf(left != nil, "left child is nil")
	assert.Assertf(right != nil, "right child is nil")
	lw, rw := left.Weight(), right.Weight()
	assert.Assertf(lw <= math.MaxUint64-rw, "weight overflow: %d + %d", lw, rw)
	return &Internal{left: left, right: right, weight: lw + rw}
}

// Left returns the subtree reached by a 0 bit.
func (node *Internal) Left() Tree {
	return node.left
}

// Right returns the subtree reached by a 1 bit.
func (node *Internal) Right() Tree {
	return node.right
}

// Weight returns the sum of this node's children's weights.
func (node *Internal) Weight() uint64 {
	return node.weight
}

func (*Internal) isTree() {}

var (
	_ Tree = (*Leaf)(nil)
	_ Tree = (*Internal)(nil)
)

// Validate checks the structural invariants of a Tree: every Internal node's
// weight equals the sum of its children's weights, and every Leaf holds a
// valid Symbol that appears nowhere else in the Tree.
func Validate(tree Tree) error {
	if tree == nil {
		return errors.Wrap(ErrInvalidTree, "nil tree")
	}
	seen := make(map[Symbol]struct{})
	return validate(tree, seen)
}

func validate(tree Tree, seen map[Symbol]struct{}) error {
	switch node := tree.(type) {
	case *Leaf:
		if !node.symbol.IsValid() {
			return errors.Wrapf(ErrInvalidTree, "leaf holds invalid symbol %d", int32(node.symbol))
		}
		if _, found := seen[node.symbol]; found {
			return errors.Wrapf(ErrInvalidTree, "symbol %v appears more than once", node.symbol)
		}
		seen[node.symbol] = struct{}{}
		return nil

	case *Internal:
		if node.left == nil || node.right == nil {
			return errors.Wrap(ErrInvalidTree, "internal node is missing a child")
		}
		if sum := node.left.Weight() + node.right.Weight(); sum != node.weight {
			return errors.Wrapf(ErrInvalidTree, "internal node has weight %d, but children sum to %d", node.weight, sum)
		}
		if err := validate(node.left, seen); err != nil {
			return err
		}
		return validate(node.right, seen)

	default:
		return errors.Wrapf(ErrInvalidTree, "unexpected node type %T", tree)
	}
}

// Stats returns the number of leaves, the number of internal nodes, and the
// length of the longest root-to-leaf path.
func Stats(tree Tree) (leaves int, internals int, depth int) {
	assert.Assertf(tree != nil, "tree is nil")
	var visit func(Tree, int)
	visit = func(t Tree, d int) {
		if d > depth {
			depth = d
		}
		switch node := t.(type) {
		case *Leaf:
			leaves++
		case *Internal:
			internals++
			visit(node.left, d+1)
			visit(node.right, d+1)
		}
	}
	visit(tree, 0)
	return
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func Dump(w io.Writer, tree Tree) (int64, error) {
	assert.Assertf(tree != nil, "tree is nil")
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	dumpNode(&buf, tree, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, tree Tree, depth int) {
	indent := strings.Repeat("\t", depth)
	switch node := tree.(type) {
	case *Leaf:
		fmt.Fprintf(buf, "%sLeaf(%v, %d)\n", indent, node.symbol, node.weight)
	case *Internal:
		fmt.Fprintf(buf, "%sInternal(%d)\n", indent, node.weight)
		dumpNode(buf, node.left, depth+1)
		dumpNode(buf, node.right, depth+1)
	}
}
