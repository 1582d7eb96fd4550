package avl

// Ref identifies a node in a Tree's node arena.
// Refs stay valid until the node they name is deleted;
// after that the slot may be reused by a later Insert.
type Ref uint32

// Nil is the absent node.
const Nil Ref = 0

// Node is a single vertex of the tree.
// The tree is ordered by Value; Index is an extra payload
// that travels with the value.
//
// Node values handed out by Tree.Node are copies: changing
// the tree afterwards does not update them.
type Node struct {
	index, value int64

	// height of the subtree rooted here; a leaf is 1.
	// 0 marks a free arena slot.
	height int

	left, right Ref
	// parent never owns the node, it only lets us walk upwards.
	parent Ref
}

func newNode(index, value int64) Node {
	return Node{
		index:  index,
		value:  value,
		height: 1,
	}
}

func (n Node) Index() int64 { return n.index }
func (n Node) Value() int64 { return n.value }
func (n Node) Height() int  { return n.height }
func (n Node) Left() Ref    { return n.left }
func (n Node) Right() Ref   { return n.right }
func (n Node) Parent() Ref  { return n.parent }

func (n Node) HasNoChild() bool {
	return n.left == Nil && n.right == Nil
}

func (n Node) HasOnlyLeftChild() bool {
	return n.left != Nil && n.right == Nil
}

func (n Node) HasOnlyRightChild() bool {
	return n.left == Nil && n.right != Nil
}

func (n Node) HasBothChildren() bool {
	return n.left != Nil && n.right != Nil
}

// arena stores every node of a tree. Slot 0 is never used so that
// the zero Ref can stand for "no node".
type arena []Node

func (a arena) height(r Ref) int {
	if r == Nil {
		return 0
	}
	return a[r].height
}

func (a arena) balanceFactor(r Ref) int {
	return a.height(a[r].right) - a.height(a[r].left)
}

// setHeight recomputes the height of r from its children.
// It does not touch any ancestor.
func (a arena) setHeight(r Ref) {
	l, rt := a.height(a[r].left), a.height(a[r].right)
	if l > rt {
		a[r].height = l + 1
	} else {
		a[r].height = rt + 1
	}
}

// isLeftChild compares r against its parent's left slot.
// A node without a parent counts as a left child; it is up to the
// caller to check for the root separately.
func (a arena) isLeftChild(r Ref) bool {
	p := a[r].parent
	if p == Nil {
		return true
	}
	return a[p].left == r
}
