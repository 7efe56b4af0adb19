package llrb

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// makePerfectTree returns a tree holding 1…7, which is a perfectly balanced
// all-black tree with root 4.
func makePerfectTree(t *testing.T) *Tree[int, int, int] {
	t.Helper()
	tree := newSumTree(t)
	for k := 1; k <= 7; k++ {
		_ = tree.Insert(k, k)
	}
	if tree.Paren() != "(((1:1)2:3(3:1))4:7((5:1)6:3(7:1)))" {
		t.Fatalf("unexpected tree shape %s", tree.Paren())
	}
	return tree
}

func TestCheckDetectsCorruption(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tests := []struct {
		name    string
		corrupt func(root *node[int, int, int])
		message string
	}{
		{"red root", func(root *node[int, int, int]) {
			root.color = red
		}, "root is red"},
		{"double red", func(root *node[int, int, int]) {
			root.child[left].color = red
			root.child[left].child[left].color = red
		}, "double red"},
		{"right-leaning red", func(root *node[int, int, int]) {
			root.child[right].color = red
		}, "right-leaning"},
		{"black height", func(root *node[int, int, int]) {
			root.child[left].child[left].color = red
		}, "inconsistent black height"},
		{"key order", func(root *node[int, int, int]) {
			l := root.child[left]
			l.child[left].key, l.child[right].key = l.child[right].key, l.child[left].key
		}, "out of order"},
		{"stale size", func(root *node[int, int, int]) {
			root.child[left].size = 5
		}, "size mismatch"},
		{"stale accumulator", func(root *node[int, int, int]) {
			root.acc++
		}, "stale accumulator"},
		{"shared node", func(root *node[int, int, int]) {
			root.child[right] = root.child[left]
		}, "linked more than once"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := makePerfectTree(t)
			mustCheck(t, tree)
			tt.corrupt(tree.root)
			err := tree.Check()
			if !errors.Is(err, ErrInvariantViolation) {
				t.Fatalf("expected invariant violation, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheckUsesConfiguredAccumulatorEquality(t *testing.T) {
	tree, err := New(Config[int, float64, float64]{
		Compare: Ordered[int](),
		Monoid:  floatSum{},
		EqualAcc: func(a, b float64) bool {
			d := a - b
			return d < 1e-9 && d > -1e-9
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := range 50 {
		_ = tree.Insert(i, 0.1)
	}
	mustCheck(t, tree)
	tree.root.acc += 1e-12
	mustCheck(t, tree)
	tree.root.acc += 1
	if err := tree.Check(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected invariant violation, got %v", err)
	}
}

type floatSum struct{}

func (floatSum) Zero() float64                   { return 0 }
func (floatSum) FromValue(v float64) float64     { return v }
func (floatSum) Add(left, right float64) float64 { return left + right }
