package llrb

import "iter"

// All returns an iterator over all entries in key order.
//
// The tree must not be modified during iteration.
func (t *Tree[K, V, A]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil || t.root == nil {
			return
		}
		t.eachNode(t.root, yield)
	}
}

func (t *Tree[K, V, A]) eachNode(n *node[K, V, A], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return t.eachNode(n.child[left], yield) &&
		yield(n.key, n.value) &&
		t.eachNode(n.child[right], yield)
}

// Collect returns all entries in key order.
func (t *Tree[K, V, A]) Collect() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, t.Len())
	for k, v := range t.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}
