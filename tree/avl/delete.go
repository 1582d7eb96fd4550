package avl

// Delete removes the node at r from the tree.
// r must be a node of this tree, normally found with Search;
// Delete panics otherwise.
//
// If r has two children, r keeps its place in the tree and takes over
// the index and value of its in-order successor, whose own node is
// removed instead. In that case r is still valid afterwards and names
// the successor's payload. In every other case r becomes invalid.
func (t *Tree) Delete(r Ref) {
	t.mustBeLive(r)

	n := t.nodes[r]

	if n.HasBothChildren() {
		t.deleteWithChildren(r)
		return
	}

	if r == t.root {
		t.deleteRoot(r)
		return
	}

	// not the root, so p is not Nil
	p := n.parent
	switch {
	case n.HasNoChild():
		t.replaceChild(p, r, Nil)
	case n.HasOnlyLeftChild():
		t.replaceChild(p, r, n.left)
	default:
		t.replaceChild(p, r, n.right)
	}
	t.release(r)

	t.nodes.setHeight(p)
	t.updateBalance(p, false)
}

// deleteRoot removes the root, which has at most one child.
func (t *Tree) deleteRoot(r Ref) {
	n := t.nodes[r]
	switch {
	case n.HasNoChild():
		t.root = Nil
	case n.HasOnlyLeftChild():
		t.replaceChild(Nil, r, n.left)
	default:
		t.replaceChild(Nil, r, n.right)
	}
	t.release(r)
}

// deleteWithChildren replaces the payload of r with its in-order
// successor's and deletes the successor. The successor has no left
// child, so the recursion happens at most once.
func (t *Tree) deleteWithChildren(r Ref) {
	succ := t.Minimum(t.nodes[r].right)
	t.nodes[r].index = t.nodes[succ].index
	t.nodes[r].value = t.nodes[succ].value
	t.Delete(succ)
}

// DeleteValue deletes the first node found by Search(value).
// It returns false if no node holds value.
func (t *Tree) DeleteValue(value int64) bool {
	r, ok := t.Search(value)
	if !ok {
		return false
	}
	t.Delete(r)
	return true
}
