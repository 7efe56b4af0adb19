package llrb

import (
	"cmp"
	"fmt"
)

// Tree is an ordered map from keys K to values V, implemented as a
// left-leaning red-black tree. Every subtree caches its size and the fold of
// its values under the configured monoid, with accumulator type A.
//
// A Tree is owned by a single goroutine; it performs no locking.
type Tree[K, V, A any] struct {
	cfg  Config[K, V, A]
	root *node[K, V, A]
}

// Entry is a key/value pair as returned by Collect.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// New creates an empty tree with validated configuration.
func New[K, V, A any](cfg Config[K, V, A]) (*Tree[K, V, A], error) {
	if err := cfg.validate(); err != nil {
		tracer().Errorf("llrb: %v", err)
		return nil, err
	}
	return &Tree[K, V, A]{cfg: cfg.normalized()}, nil
}

// NewOrdered creates an empty tree for a naturally ordered key type, folding
// values with m. Duplicate keys replace existing values.
func NewOrdered[K cmp.Ordered, V, A any](m Monoid[V, A]) *Tree[K, V, A] {
	t, err := New(Config[K, V, A]{
		Compare: cmp.Compare[K],
		Monoid:  m,
	})
	assert(err == nil, "NewOrdered: monoid is required")
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V, A]) Config() Config[K, V, A] {
	return t.cfg
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V, A]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V, A]) Len() int {
	if t == nil {
		return 0
	}
	return sizeOf(t.root)
}

// Fold returns the fold of all values in key order, or Zero() for an
// empty tree.
func (t *Tree[K, V, A]) Fold() A {
	return t.accOf(t.root)
}

// Clear removes all entries.
func (t *Tree[K, V, A]) Clear() {
	t.root = nil
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An LLRB tree with n entries has height at most 2·log2(n+1).
func (t *Tree[K, V, A]) Height() int {
	var height func(*node[K, V, A]) int
	height = func(n *node[K, V, A]) int {
		if n == nil {
			return 0
		}
		return 1 + max(height(n.child[left]), height(n.child[right]))
	}
	return height(t.root)
}

// Get returns the value stored for key. If duplicates are allowed, any one
// of the values stored for key is returned.
func (t *Tree[K, V, A]) Get(key K) (V, bool) {
	if n := t.search(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Tree[K, V, A]) Contains(key K) bool {
	return t.search(key) != nil
}

func (t *Tree[K, V, A]) search(key K) *node[K, V, A] {
	n := t.root
	for n != nil {
		c := t.cfg.Compare(key, n.key)
		switch {
		case c < 0:
			n = n.child[left]
		case c > 0:
			n = n.child[right]
		default:
			return n
		}
	}
	return nil
}

// Min returns the entry with the smallest key.
func (t *Tree[K, V, A]) Min() (K, V, bool) {
	return t.extreme(left)
}

// Max returns the entry with the largest key.
func (t *Tree[K, V, A]) Max() (K, V, bool) {
	return t.extreme(right)
}

func (t *Tree[K, V, A]) extreme(i int) (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := t.root
	for n.child[i] != nil {
		n = n.child[i]
	}
	return n.key, n.value, true
}

// String returns the parenthesized form of the tree, see Paren.
func (t *Tree[K, V, A]) String() string {
	return fmt.Sprintf("LLRB(%s)", t.Paren())
}
