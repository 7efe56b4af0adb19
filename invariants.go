package llrb

import "fmt"

// Check validates the structural tree invariants:
//
//   - the root is black,
//   - no red node has a red child,
//   - red links lean left,
//   - all paths from a node to its nil links contain the same number of
//     black nodes,
//   - an in-order walk yields keys in increasing order (strictly increasing
//     unless duplicates are allowed),
//   - every node caches the correct subtree size and accumulator,
//   - no node is reachable through more than one link.
//
// Check walks the whole tree and is meant for tests and debugging.
func (t *Tree[K, V, A]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		return nil
	}
	if isRed(t.root) {
		return t.violation("root is red")
	}
	c := checker[K, V, A]{
		tree: t,
		seen: make(map[*node[K, V, A]]struct{}, t.root.size),
	}
	_, _, err := c.checkNode(t.root)
	return err
}

type checker[K, V, A any] struct {
	tree    *Tree[K, V, A]
	seen    map[*node[K, V, A]]struct{}
	prev    K // key of the previous node in order
	hasPrev bool
}

// checkNode validates the subtree at n and returns its size and black height.
func (c *checker[K, V, A]) checkNode(n *node[K, V, A]) (size int, blackHeight int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	t := c.tree
	if _, ok := c.seen[n]; ok {
		return 0, 0, t.violation("node %v is linked more than once", n.key)
	}
	c.seen[n] = struct{}{}
	l, r := n.child[left], n.child[right]
	if isRed(n) && (isRed(l) || isRed(r)) {
		return 0, 0, t.violation("double red at node %v", n.key)
	}
	if isRed(r) {
		return 0, 0, t.violation("right-leaning red link at node %v", n.key)
	}
	lsize, lheight, err := c.checkNode(l)
	if err != nil {
		return 0, 0, err
	}
	if c.hasPrev && !t.ordered(c.prev, n.key) {
		return 0, 0, t.violation("key %v out of order after %v", n.key, c.prev)
	}
	c.prev, c.hasPrev = n.key, true
	rsize, rheight, err := c.checkNode(r)
	if err != nil {
		return 0, 0, err
	}
	if lheight != rheight {
		return 0, 0, t.violation("inconsistent black height at node %v (%d != %d)", n.key, lheight, rheight)
	}
	if n.size != 1+lsize+rsize {
		return 0, 0, t.violation("size mismatch at node %v (%d != %d)", n.key, n.size, 1+lsize+rsize)
	}
	m := t.cfg.Monoid
	want := m.Add(m.Add(t.accOf(l), m.FromValue(n.value)), t.accOf(r))
	if !t.cfg.EqualAcc(n.acc, want) {
		return 0, 0, t.violation("stale accumulator at node %v (%v != %v)", n.key, n.acc, want)
	}
	if n.color == black {
		lheight++
	}
	return n.size, lheight, nil
}

// ordered reports whether key a may precede key b in order.
func (t *Tree[K, V, A]) ordered(a, b K) bool {
	c := t.cfg.Compare(a, b)
	if t.cfg.Duplicates == AllowDuplicates {
		return c <= 0
	}
	return c < 0
}

func (t *Tree[K, V, A]) violation(format string, args ...any) error {
	err := fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
	tracer().Errorf("llrb: %v", err)
	return err
}
