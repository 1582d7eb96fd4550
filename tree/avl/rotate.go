package avl

// LeftRotate rotates the node x to the left.
// For example, this is the result of calling LeftRotate(n):
//
//	  -> n            p
//	    / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
//
// p takes n's place under n's old parent, or becomes the root.
// The ordering m <= n <= o <= p <= q is always preserved and the
// heights of p's ancestors are refreshed, but the rotation alone may
// leave the tree unbalanced; Insert and Delete only rotate where that
// restores balance.
//
// LeftRotate panics if x has no right child.
func (t *Tree) LeftRotate(x Ref) {
	t.mustBeLive(x)
	t.leftRotate(x)
	t.refreshHeights(t.nodes[t.nodes[x].parent].parent)
}

// RightRotate rotates the node x to the right.
// For example, this is the result of calling RightRotate(n):
//
//	  -> n            l
//	    / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
//
// It is the mirror image of LeftRotate and panics if x has
// no left child.
func (t *Tree) RightRotate(x Ref) {
	t.mustBeLive(x)
	t.rightRotate(x)
	t.refreshHeights(t.nodes[t.nodes[x].parent].parent)
}

// refreshHeights recomputes heights from r up to the root.
func (t *Tree) refreshHeights(r Ref) {
	for ; r != Nil; r = t.nodes[r].parent {
		t.nodes.setHeight(r)
	}
}

func (t *Tree) leftRotate(x Ref) {
	p := t.nodes[x].right
	if p == Nil {
		panic("avl: cannot LeftRotate with nil right")
	}

	o := t.nodes[p].left
	t.nodes[x].right = o
	if o != Nil {
		t.nodes[o].parent = x
	}

	t.replaceChild(t.nodes[x].parent, x, p)

	t.nodes[p].left = x
	t.nodes[x].parent = p

	// x is now below p, so x first
	t.nodes.setHeight(x)
	t.nodes.setHeight(p)
}

func (t *Tree) rightRotate(x Ref) {
	l := t.nodes[x].left
	if l == Nil {
		panic("avl: cannot RightRotate with nil left")
	}

	m := t.nodes[l].right
	t.nodes[x].left = m
	if m != Nil {
		t.nodes[m].parent = x
	}

	t.replaceChild(t.nodes[x].parent, x, l)

	t.nodes[l].right = x
	t.nodes[x].parent = l

	t.nodes.setHeight(x)
	t.nodes.setHeight(l)
}

// replaceChild points whichever child slot of p holds old at repl
// instead, and sets repl's parent to p. If p is Nil, old was the
// root and repl becomes the new root.
// repl may be Nil. Heights are left to the caller.
func (t *Tree) replaceChild(p, old, repl Ref) {
	switch {
	case p == Nil:
		t.root = repl
	case t.nodes[p].left == old:
		t.nodes[p].left = repl
	default:
		t.nodes[p].right = repl
	}

	if repl != Nil {
		t.nodes[repl].parent = p
	}
}

// rebalance restores the balance of r, which must have a
// balance factor outside [-1, 1].
func (t *Tree) rebalance(r Ref) {
	if t.nodes.balanceFactor(r) > 0 {
		right := t.nodes[r].right
		if t.nodes.balanceFactor(right) < 0 {
			// right-left
			t.rightRotate(right)
		}
		t.leftRotate(r)
	} else {
		left := t.nodes[r].left
		if t.nodes.balanceFactor(left) > 0 {
			// left-right
			t.leftRotate(left)
		}
		t.rightRotate(r)
	}
}
