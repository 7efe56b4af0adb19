package llrb

// Insert stores value for key.
//
// If key is already present, the outcome depends on the duplicate policy
// of the tree: the value is replaced (default), Insert fails with
// ErrDuplicateKey, or a second entry is added after the existing ones.
func (t *Tree[K, V, A]) Insert(key K, value V) error {
	root, err := t.insert(t.root, key, value)
	t.root = root
	t.root.color = black
	if err != nil {
		tracer().Debugf("llrb: insert %v: %v", key, err)
	}
	return err
}

// insert adds key to the subtree rooted at n and returns the new subtree root.
func (t *Tree[K, V, A]) insert(n *node[K, V, A], key K, value V) (*node[K, V, A], error) {
	if n == nil {
		return t.newNode(key, value), nil
	}
	i := right
	if c := t.cfg.Compare(key, n.key); c < 0 {
		i = left
	} else if c == 0 {
		switch t.cfg.Duplicates {
		case ReplaceDuplicates:
			n.value = value
			t.update(n)
			return n, nil
		case RejectDuplicates:
			return n, ErrDuplicateKey
		}
	}
	c, err := t.insert(n.takeChild(i), key, value)
	n.initChild(i, c)
	return t.fixup(n), err
}

// fixup restores the LLRB shape at n on the way back up and re-derives the
// augmented fields. The three checks must run in this order.
func (t *Tree[K, V, A]) fixup(n *node[K, V, A]) *node[K, V, A] {
	// right-leaning red
	if isBlack(n.child[left]) && isRed(n.child[right]) {
		n = t.rotate(n, right)
	}
	// two reds in a row on the left
	if isRed(n.child[left]) && isRed(n.child[left].child[left]) {
		n = t.rotate(n, left)
	}
	// 4-node
	if isRed(n.child[left]) && isRed(n.child[right]) {
		splitNode(n)
	}
	t.update(n)
	return n
}
