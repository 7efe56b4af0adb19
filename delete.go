package llrb

// Delete removes the entry for key and returns it. If key is not present,
// the tree is left unchanged and ok is false. If duplicates are allowed,
// exactly one of the entries stored for key is removed.
func (t *Tree[K, V, A]) Delete(key K) (k K, v V, ok bool) {
	removed := t.deleteAtRoot(func(n *node[K, V, A]) (*node[K, V, A], *node[K, V, A]) {
		return t.delete(n, key)
	})
	if removed == nil {
		tracer().Debugf("llrb: delete %v: key not found", key)
		return k, v, false
	}
	return removed.key, removed.value, true
}

// DeleteMin removes the entry with the smallest key.
func (t *Tree[K, V, A]) DeleteMin() (k K, v V, ok bool) {
	removed := t.deleteAtRoot(t.deleteMin)
	if removed == nil {
		return k, v, false
	}
	return removed.key, removed.value, true
}

// DeleteMax removes the entry with the largest key.
func (t *Tree[K, V, A]) DeleteMax() (k K, v V, ok bool) {
	removed := t.deleteAtRoot(t.deleteMax)
	if removed == nil {
		return k, v, false
	}
	return removed.key, removed.value, true
}

// deleteAtRoot runs a recursive delete from the root and returns the removed
// node, or nil.
//
// The recursive deletes expect the node they are called on to be red or to
// have a red left child. The root has no parent to borrow a red link from, so
// a root 2-node is colored red for the duration of the call.
func (t *Tree[K, V, A]) deleteAtRoot(del func(*node[K, V, A]) (*node[K, V, A], *node[K, V, A])) *node[K, V, A] {
	if t.root == nil {
		return nil
	}
	if isTwoNode(t.root) {
		t.root.color = red
	}
	root, removed := del(t.root)
	t.root = root
	if t.root != nil {
		t.root.color = black
	}
	if removed != nil {
		assert(removed.child[left] == nil && removed.child[right] == nil,
			"deleted node still owns children")
	}
	return removed
}

// delete removes key from the subtree rooted at n. It returns the new subtree
// root and the detached node, which is nil if key is absent.
func (t *Tree[K, V, A]) delete(n *node[K, V, A], key K) (*node[K, V, A], *node[K, V, A]) {
	if n == nil {
		return nil, nil
	}
	var removed *node[K, V, A]
	c := t.cfg.Compare(key, n.key)
	if c < 0 {
		if isTwoNode(n.child[left]) {
			n = t.moveLeft(n)
		}
		var l *node[K, V, A]
		l, removed = t.delete(n.takeChild(left), key)
		n.initChild(left, l)
		return t.fixup(n), removed
	}
	if isRed(n.child[left]) {
		n = t.rotate(n, left)
	}
	if c == 0 && n.child[right] == nil {
		// n is a red leaf here
		assert(n.child[left] == nil, "delete: node without right child has a left child")
		return nil, n
	}
	if isTwoNode(n.child[right]) {
		n = t.moveRight(n)
	}
	if t.cfg.Compare(key, n.key) == 0 {
		// Replace n by the minimum of its right subtree, which takes over
		// n's children and color.
		r, successor := t.deleteMin(n.takeChild(right))
		assert(successor != nil, "delete: empty right subtree")
		successor.initChild(left, n.takeChild(left))
		successor.initChild(right, r)
		successor.color = n.color
		removed, n = n, successor
		return t.fixup(n), removed
	}
	var r *node[K, V, A]
	r, removed = t.delete(n.takeChild(right), key)
	n.initChild(right, r)
	return t.fixup(n), removed
}

// deleteMin removes the leftmost node of the subtree rooted at n.
func (t *Tree[K, V, A]) deleteMin(n *node[K, V, A]) (*node[K, V, A], *node[K, V, A]) {
	if n == nil {
		return nil, nil
	}
	if n.child[left] == nil {
		assert(n.child[right] == nil, "deleteMin: leftmost node has a right child")
		return nil, n
	}
	if isTwoNode(n.child[left]) {
		n = t.moveLeft(n)
	}
	l, removed := t.deleteMin(n.takeChild(left))
	n.initChild(left, l)
	return t.fixup(n), removed
}

// deleteMax removes the rightmost node of the subtree rooted at n.
func (t *Tree[K, V, A]) deleteMax(n *node[K, V, A]) (*node[K, V, A], *node[K, V, A]) {
	if n == nil {
		return nil, nil
	}
	if isRed(n.child[left]) {
		n = t.rotate(n, left)
	}
	if n.child[right] == nil {
		assert(n.child[left] == nil, "deleteMax: rightmost node has a left child")
		return nil, n
	}
	if isTwoNode(n.child[right]) {
		n = t.moveRight(n)
	}
	r, removed := t.deleteMax(n.takeChild(right))
	n.initChild(right, r)
	return t.fixup(n), removed
}

// moveLeft makes sure the left child of the red node n is not a 2-node,
// either by borrowing from its right sibling or by merging both children with
// n into a 4-node.
func (t *Tree[K, V, A]) moveLeft(n *node[K, V, A]) *node[K, V, A] {
	assert(isRed(n), "moveLeft called on black node")
	assert(isTwoNode(n.child[left]), "moveLeft requires a left 2-node")
	mergeNode(n)
	if isRed(n.child[right].child[left]) {
		n.initChild(right, t.rotate(n.takeChild(right), left))
		n = t.rotate(n, right)
		splitNode(n)
	}
	return n
}

// moveRight is the mirror image of moveLeft for the right child of n.
func (t *Tree[K, V, A]) moveRight(n *node[K, V, A]) *node[K, V, A] {
	assert(isRed(n), "moveRight called on black node")
	assert(isTwoNode(n.child[right]), "moveRight requires a right 2-node")
	mergeNode(n)
	if isRed(n.child[left].child[left]) {
		n = t.rotate(n, left)
		n.initChild(right, t.rotate(n.takeChild(right), right))
		splitNode(n)
	}
	return n
}
