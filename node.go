package llrb

import "reflect"

type color uint8

const (
	black color = iota // nil links count as black
	red
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// Child slot indices. rotate(n, left) lifts the left child.
const (
	left  = 0
	right = 1
)

// node is a tree node. Each node exclusively owns its two children;
// there are no parent links.
type node[K, V, A any] struct {
	child [2]*node[K, V, A]
	key   K
	value V
	// acc == Add(Add(left.acc, FromValue(value)), right.acc)
	acc A
	// size == 1 + left.size + right.size
	size  int
	color color
}

func isRed[K, V, A any](n *node[K, V, A]) bool {
	return n != nil && n.color == red
}

func isBlack[K, V, A any](n *node[K, V, A]) bool {
	return !isRed(n)
}

// isTwoNode reports whether n is a black node without red children, i.e. a
// 2-node of the corresponding 2-3 tree.
func isTwoNode[K, V, A any](n *node[K, V, A]) bool {
	return n != nil && isBlack(n) && isBlack(n.child[left]) && isBlack(n.child[right])
}

func sizeOf[K, V, A any](n *node[K, V, A]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// takeChild detaches the child at slot i, leaving the slot empty.
func (n *node[K, V, A]) takeChild(i int) *node[K, V, A] {
	c := n.child[i]
	n.child[i] = nil
	return c
}

// initChild places c into the empty slot i.
func (n *node[K, V, A]) initChild(i int, c *node[K, V, A]) {
	assert(n.child[i] == nil, "child slot is not isolated")
	n.child[i] = c
}

// mergeNode pushes the red link of n down to both of its children, joining
// them with n into a temporary 4-node.
func mergeNode[K, V, A any](n *node[K, V, A]) {
	assert(isRed(n), "mergeNode called on black node")
	assert(isBlack(n.child[left]) && isBlack(n.child[right]), "mergeNode requires black children")
	n.color = black
	n.child[left].color = red
	n.child[right].color = red
}

// splitNode splits a 4-node, passing the red link up to the parent.
func splitNode[K, V, A any](n *node[K, V, A]) {
	assert(isBlack(n), "splitNode called on red node")
	assert(isRed(n.child[left]) && isRed(n.child[right]), "splitNode requires red children")
	n.color = red
	n.child[left].color = black
	n.child[right].color = black
}

// --- Operations depending on the tree's monoid -----------------------------

func (t *Tree[K, V, A]) newNode(key K, value V) *node[K, V, A] {
	return &node[K, V, A]{
		key:   key,
		value: value,
		acc:   t.cfg.Monoid.FromValue(value),
		size:  1,
		color: red,
	}
}

func (t *Tree[K, V, A]) accOf(n *node[K, V, A]) A {
	if n == nil {
		return t.cfg.Monoid.Zero()
	}
	return n.acc
}

// update re-derives size and accumulator of n from its children.
// It must be called whenever the children of n change.
func (t *Tree[K, V, A]) update(n *node[K, V, A]) {
	if n == nil {
		return
	}
	l, r := n.child[left], n.child[right]
	n.size = 1 + sizeOf(l) + sizeOf(r)
	m := t.cfg.Monoid
	n.acc = m.Add(m.Add(t.accOf(l), m.FromValue(n.value)), t.accOf(r))
}

// rotate lifts the red child at slot i into the position of x and returns the
// new subtree root. The lifted child inherits the color of x, x turns red.
//
//	rotate(x, left):           x            y
//	                          / \          / \
//	                         y   c   =>   a   x
//	                        / \              / \
//	                       a   b            b   c
func (t *Tree[K, V, A]) rotate(x *node[K, V, A], i int) *node[K, V, A] {
	y := x.takeChild(i)
	assert(isRed(y), "rotate requires a red child")
	y.color = x.color
	x.color = red
	z := y.takeChild(1 - i)
	x.initChild(i, z)
	t.update(x)
	y.initChild(1-i, x)
	t.update(y)
	return y
}

func deepEqual[A any](a, b A) bool {
	return reflect.DeepEqual(a, b)
}
