// Package avl implements an AVL tree of (index, value) pairs
// ordered by value.
//
// Nodes live in an arena owned by the Tree and are addressed by Ref.
// Every structural change goes through Tree methods, which keep child
// links, parent links and cached heights consistent with each other.
package avl

import (
	"fmt"

	"go.lepak.sg/avltree/tree"
	"go.lepak.sg/avltree/tree/iterator"
)

var _ iterator.Tree[Ref, int64] = (*Tree)(nil)

// Tree is an AVL tree. It is not safe for concurrent use.
//
// Invariants, after every exported method returns:
//   - At any node N, values in the subtree at N.Left are <= N.Value,
//     and values in the subtree at N.Right are >= N.Value.
//     Equal values are inserted to the right.
//   - At any node N, the heights of N.Left and N.Right differ by at most 1.
//   - Every node's height is 1 + the larger of its children's heights.
//   - A node's parent link points at the node whose child link points
//     at it, and the root has no parent.
//
// The zero Tree may be used immediately.
type Tree struct {
	nodes arena
	free  []Ref
	root  Ref
	count int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{
		nodes: make(arena, 1),
	}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return t.count
}

// Height returns the height of the tree. An empty tree has height 0.
func (t *Tree) Height() int {
	return t.nodes.height(t.root)
}

// Root returns the root node, or Nil if the tree is empty.
func (t *Tree) Root() Ref {
	return t.root
}

// Node returns a copy of the node at r.
// It panics if r is not a node of this tree.
func (t *Tree) Node(r Ref) Node {
	t.mustBeLive(r)
	return t.nodes[r]
}

// Left, Right, Parent and Value read single fields of the node at r.
// Left, Right and Parent return Nil for a missing link.

func (t *Tree) Left(r Ref) Ref {
	return t.nodes[r].left
}

func (t *Tree) Right(r Ref) Ref {
	return t.nodes[r].right
}

func (t *Tree) Parent(r Ref) Ref {
	return t.nodes[r].parent
}

func (t *Tree) Value(r Ref) int64 {
	return t.nodes[r].value
}

// BalanceFactor returns height(right) - height(left) for the node at r.
func (t *Tree) BalanceFactor(r Ref) int {
	t.mustBeLive(r)
	return t.nodes.balanceFactor(r)
}

// IsLeftChild reports whether r is the left child of its parent.
// The root also reports true; use Root to tell the root apart.
func (t *Tree) IsLeftChild(r Ref) bool {
	t.mustBeLive(r)
	return t.nodes.isLeftChild(r)
}

// IsRightChild is the negation of IsLeftChild.
func (t *Tree) IsRightChild(r Ref) bool {
	return !t.IsLeftChild(r)
}

func (t *Tree) live(r Ref) bool {
	return r != Nil && int(r) < len(t.nodes) && t.nodes[r].height > 0
}

func (t *Tree) mustBeLive(r Ref) {
	if !t.live(r) {
		panic(fmt.Sprintf("avl: ref %d is not a node of this tree", r))
	}
}

// alloc stores n in a free slot and returns its Ref.
func (t *Tree) alloc(n Node) Ref {
	if len(t.nodes) == 0 {
		// zero Tree: reserve the Nil slot first
		t.nodes = make(arena, 1)
	}

	t.count++
	if k := len(t.free); k > 0 {
		r := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[r] = n
		return r
	}
	t.nodes = append(t.nodes, n)
	return Ref(len(t.nodes) - 1)
}

// release clears the slot at r and makes it available to alloc.
func (t *Tree) release(r Ref) {
	t.count--
	t.nodes[r] = Node{}
	t.free = append(t.free, r)
}

// Insert adds a node holding index and value and returns its Ref.
// Duplicate values are allowed; they go to the right of equal values.
func (t *Tree) Insert(index, value int64) Ref {
	n := newNode(index, value)

	if t.root == Nil {
		t.root = t.alloc(n)
		return t.root
	}

	p := t.insertionParent(value)
	n.parent = p
	r := t.alloc(n)

	if tree.Compare(value, t.nodes[p].value) == tree.Less {
		t.nodes[p].left = r
	} else {
		t.nodes[p].right = r
	}
	t.nodes.setHeight(p)

	t.updateBalance(p, true)

	return r
}

// insertionParent finds the node that a new node with value
// will be attached to. The tree must not be empty.
func (t *Tree) insertionParent(value int64) Ref {
	n := t.root
	for {
		var next Ref
		switch tree.Compare(value, t.nodes[n].value) {
		case tree.Less:
			next = t.nodes[n].left
		case tree.Equal, tree.Greater:
			next = t.nodes[n].right
		default:
			panic("unreachable")
		}
		if next == Nil {
			return n
		}
		n = next
	}
}

// updateBalance walks from r up to the root, rebalancing every node
// whose balance factor left [-1, 1] and refreshing heights on the way.
//
// After an insertion an unchanged height means nothing above can have
// changed, so the walk may stop there (stopEarly). Deletion always
// walks to the root.
func (t *Tree) updateBalance(r Ref, stopEarly bool) {
	for r != Nil {
		p := t.nodes[r].parent

		if bf := t.nodes.balanceFactor(r); bf < -1 || bf > 1 {
			t.rebalance(r)
		}

		if p == Nil {
			return
		}

		old := t.nodes[p].height
		t.nodes.setHeight(p)
		if stopEarly && old == t.nodes[p].height {
			return
		}

		r = p
	}
}

// Search returns the first node found with the given value.
// ok is false if there is no such node.
func (t *Tree) Search(value int64) (r Ref, ok bool) {
	n := t.root

	for n != Nil {
		switch tree.Compare(value, t.nodes[n].value) {
		case tree.Less:
			n = t.nodes[n].left
		case tree.Greater:
			n = t.nodes[n].right
		case tree.Equal:
			return n, true
		default:
			panic("unreachable")
		}
	}

	return Nil, false
}

// Contains reports whether some node holds value.
func (t *Tree) Contains(value int64) bool {
	_, ok := t.Search(value)
	return ok
}

// Minimum returns the node with the smallest value in the
// subtree rooted at r. Minimum(Nil) is Nil.
func (t *Tree) Minimum(r Ref) Ref {
	if r == Nil {
		return Nil
	}
	for t.nodes[r].left != Nil {
		r = t.nodes[r].left
	}
	return r
}

// Maximum returns the node with the largest value in the
// subtree rooted at r. Maximum(Nil) is Nil.
func (t *Tree) Maximum(r Ref) Ref {
	if r == Nil {
		return Nil
	}
	for t.nodes[r].right != Nil {
		r = t.nodes[r].right
	}
	return r
}

// Min returns the node with the smallest value in the tree.
// ok is false if the tree is empty.
func (t *Tree) Min() (r Ref, ok bool) {
	r = t.Minimum(t.root)
	return r, r != Nil
}

// Max returns the node with the largest value in the tree.
// ok is false if the tree is empty.
func (t *Tree) Max() (r Ref, ok bool) {
	r = t.Maximum(t.root)
	return r, r != Nil
}
