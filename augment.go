package llrb

import "fmt"

// RankSelect returns the entry at sorted position i, counting from 0.
//
// i must be in [0, Len()); RankSelect panics otherwise. Use At for a
// variant reporting an error instead.
func (t *Tree[K, V, A]) RankSelect(i int) (K, V) {
	assert(i >= 0 && i < t.Len(), "RankSelect: index out of range")
	n := t.root
	for {
		ls := sizeOf(n.child[left])
		switch {
		case i < ls:
			n = n.child[left]
		case i == ls:
			return n.key, n.value
		default:
			i -= ls + 1
			n = n.child[right]
		}
	}
}

// At returns the entry at sorted position i, or ErrIndexOutOfBounds.
func (t *Tree[K, V, A]) At(i int) (K, V, error) {
	if i < 0 || i >= t.Len() {
		var k K
		var v V
		return k, v, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, i, t.Len())
	}
	k, v := t.RankSelect(i)
	return k, v, nil
}

// Rank returns the number of entries with keys strictly smaller than key.
// If key is present (and unique), it is the sorted position of key.
func (t *Tree[K, V, A]) Rank(key K) int {
	rank := 0
	n := t.root
	for n != nil {
		if t.cfg.Compare(key, n.key) <= 0 {
			n = n.child[left]
		} else {
			rank += sizeOf(n.child[left]) + 1
			n = n.child[right]
		}
	}
	return rank
}

// RangeFold returns the fold of the values with sorted positions in [l, r).
// For l == r the result is the monoid's Zero().
//
// Bounds must satisfy 0 ≤ l ≤ r ≤ Len(); RangeFold panics otherwise.
func (t *Tree[K, V, A]) RangeFold(l, r int) A {
	assert(l >= 0 && l <= r && r <= t.Len(), "RangeFold: invalid range")
	return t.foldRange(t.root, l, r)
}

// FoldRange is like RangeFold, but reports ErrInvalidRange for invalid
// bounds.
func (t *Tree[K, V, A]) FoldRange(l, r int) (A, error) {
	if l < 0 || l > r || r > t.Len() {
		return t.cfg.Monoid.Zero(), fmt.Errorf("%w: [%d,%d) with length %d", ErrInvalidRange, l, r, t.Len())
	}
	return t.foldRange(t.root, l, r), nil
}

// foldRange folds positions [l, r) of the subtree rooted at n, with positions
// relative to n. Subtrees covered completely contribute their cached
// accumulator, so only the two boundary paths are descended.
func (t *Tree[K, V, A]) foldRange(n *node[K, V, A], l, r int) A {
	m := t.cfg.Monoid
	if n == nil || l >= r {
		return m.Zero()
	}
	if l == 0 && r == n.size {
		return n.acc
	}
	ls := sizeOf(n.child[left])
	acc := t.foldRange(n.child[left], min(l, ls), min(r, ls))
	if l <= ls && ls < r {
		acc = m.Add(acc, m.FromValue(n.value))
	}
	return m.Add(acc, t.foldRange(n.child[right], max(l-ls-1, 0), max(r-ls-1, 0)))
}

// FoldKeys returns the fold of the values with keys in [lo, hi).
func (t *Tree[K, V, A]) FoldKeys(lo, hi K) A {
	if t.cfg.Compare(lo, hi) >= 0 {
		return t.cfg.Monoid.Zero()
	}
	return t.foldRange(t.root, t.Rank(lo), t.Rank(hi))
}

// Seek finds the first sorted position i where the fold over [0, i] reaches
// a target, as decided by reached. It returns i together with that prefix
// fold. reached must be monotone: once true for a prefix, it is true for all
// longer prefixes.
//
// If reached(Zero()) holds, Seek returns 0 and Zero(). If the target is never
// reached, Seek returns Len() and the fold of the whole tree.
func (t *Tree[K, V, A]) Seek(reached func(acc A) bool) (int, A) {
	m := t.cfg.Monoid
	acc := m.Zero()
	if reached(acc) {
		return 0, acc
	}
	index := 0
	n := t.root
	for n != nil {
		withLeft := m.Add(acc, t.accOf(n.child[left]))
		if reached(withLeft) {
			n = n.child[left]
			continue
		}
		withSelf := m.Add(withLeft, m.FromValue(n.value))
		if reached(withSelf) {
			return index + sizeOf(n.child[left]), withSelf
		}
		acc = withSelf
		index += sizeOf(n.child[left]) + 1
		n = n.child[right]
	}
	return index, acc
}
