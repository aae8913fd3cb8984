package hufftree

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestNewInternal(t *testing.T) {
	node := NewInternal(NewLeaf('a', 3), NewLeaf('b', 4))
	if node.Weight() != 7 {
		t.Errorf("wrong weight:\n\texpect: %d\n\tactual: %d", 7, node.Weight())
	}

	expectPanic(t, "nil left", func() { NewInternal(nil, NewLeaf('b', 1)) })
	expectPanic(t, "nil right", func() { NewInternal(NewLeaf('a', 1), nil) })
	expectPanic(t, "overflow", func() {
		NewInternal(NewLeaf('a', math.MaxUint64), NewLeaf('b', 1))
	})
	expectPanic(t, "invalid symbol", func() { NewLeaf(InvalidSymbol, 1) })
}

func TestValidate(t *testing.T) {
	type testRow struct {
		name  string
		tree  Tree
		valid bool
	}

	testData := [...]testRow{
		{name: "leaf", tree: NewLeaf('a', 1), valid: true},
		{name: "pair", tree: NewInternal(NewLeaf('a', 1), NewLeaf('b', 2)), valid: true},
		{name: "nil", tree: nil, valid: false},
		{
			name:  "bad-weight",
			tree:  &Internal{left: NewLeaf('a', 1), right: NewLeaf('b', 1), weight: 5},
			valid: false,
		},
		{
			name:  "bad-nested-weight",
			tree:  NewInternal(NewLeaf('c', 1), &Internal{left: NewLeaf('a', 1), right: NewLeaf('b', 1), weight: 3}),
			valid: false,
		},
		{
			name:  "duplicate-symbol",
			tree:  NewInternal(NewLeaf('a', 1), NewInternal(NewLeaf('b', 1), NewLeaf('a', 1))),
			valid: false,
		},
		{
			name:  "missing-child",
			tree:  &Internal{left: NewLeaf('a', 1), weight: 1},
			valid: false,
		},
		{
			name:  "invalid-symbol",
			tree:  &Leaf{symbol: -5, weight: 1},
			valid: false,
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			err := Validate(row.tree)
			if row.valid && err != nil {
				t.Errorf("expected valid tree, got %v", err)
			}
			if !row.valid && !errors.Is(err, ErrInvalidTree) {
				t.Errorf("expected ErrInvalidTree, got %v", err)
			}
		})
	}
}

func TestStats(t *testing.T) {
	leaves, internals, depth := Stats(NewLeaf('a', 1))
	if leaves != 1 || internals != 0 || depth != 0 {
		t.Errorf("wrong stats:\n\texpect: (1, 0, 0)\n\tactual: (%d, %d, %d)", leaves, internals, depth)
	}
}

func TestDump_TwoSymbols(t *testing.T) {
	tree, err := Build(Frequencies{'a': 1, 'b': 1})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tInternal(2)\n",
		"\t\tLeaf('a', 1)\n",
		"\t\tLeaf('b', 1)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	n, err := Dump(&buf, tree)
	if err != nil {
		t.Errorf("Dump failed: %v", err)
	}
	if n != int64(len(expectDump)) {
		t.Errorf("wrong byte count:\n\texpect: %d\n\tactual: %d", len(expectDump), n)
	}
	if actual := buf.String(); actual != expectDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actual)
	}
}
