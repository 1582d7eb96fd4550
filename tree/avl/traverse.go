package avl

import (
	"fmt"
	"strings"

	"go.lepak.sg/avltree/tree/iterator"
)

// LevelOrder returns the values of the tree breadth-first,
// left child before right child. It is nil for an empty tree.
func (t *Tree) LevelOrder() []int64 {
	var out []int64
	i := iterator.NewLevelOrder[Ref, int64](t)
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}

// InOrder applies f to each node in the tree in-order.
// If f returns false, the iteration is stopped early.
// f must not modify the tree.
func (t *Tree) InOrder(f func(n Node) bool) {
	t.visitInOrder(t.root, f)
}

func (t *Tree) visitInOrder(r Ref, f func(n Node) bool) bool {
	if r == Nil {
		return true
	}
	return t.visitInOrder(t.nodes[r].left, f) &&
		f(t.nodes[r]) &&
		t.visitInOrder(t.nodes[r].right, f)
}

// Values returns every value in ascending order.
func (t *Tree) Values() []int64 {
	out := make([]int64, 0, t.count)
	t.InOrder(func(n Node) bool {
		out = append(out, n.value)
		return true
	})
	return out
}

// InOrderIterator returns an iterator that yields values in ascending order.
func (t *Tree) InOrderIterator() *iterator.InOrder[Ref, int64] {
	return iterator.NewInOrder[Ref, int64](t)
}

// InOrderReverseIterator returns an iterator that yields values in
// descending order.
func (t *Tree) InOrderReverseIterator() *iterator.InOrderReverse[Ref, int64] {
	return iterator.NewInOrderReverse[Ref, int64](t)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// See iterator.CoIterate for usage. The tree must not be modified
// while the coroutine is running.
func (t *Tree) InOrderCoroutine() iterator.CoIterator[int64] {
	return iterator.CoIterate[int64](t.InOrderIterator())
}

// String returns a string representation of the tree.
// A complete tree with height 3 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree) String() string {
	var sb strings.Builder

	if t.root == Nil {
		return ""
	}

	t.printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func (t *Tree) printvisit(
	sb *strings.Builder, r Ref, prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	n := t.nodes[r]
	sb.WriteString(fmt.Sprint(n.value))
	sb.WriteRune('\n')

	if n.left != Nil {
		t.printvisit(sb, n.left, prefix, treeLeftBranch, false, n.right != Nil)
	}

	if n.right != Nil {
		t.printvisit(sb, n.right, prefix, treeRightBranch, false, false)
	}
}
