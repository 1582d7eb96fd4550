package iterator

var _ Iterator[int] = (*InOrder[uint32, int])(nil)

// InOrder is an iterator object over a binary tree.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[R comparable, T any] struct {
	t  Tree[R, T]
	at R
}

// NewInOrder returns a new InOrder iterator over t.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[R comparable, T any](t Tree[R, T]) *InOrder[R, T] {
	return &InOrder[R, T]{
		t: t,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[R, T]) Next() bool {
	// https://www.cs.odu.edu/~zeil/cs361/latest/Public/treetraversal/index.html
	var none R
	if i == nil || i.t == nil {
		return false
	}

	if i.at == none {
		// If Next returned false, calling Next again will
		// start over from the first key.
		i.at = i.t.Root()
		if i.at == none {
			return false
		}

		for l := i.t.Left(i.at); l != none; l = i.t.Left(i.at) {
			i.at = l
		}
		return true
	}

	if r := i.t.Right(i.at); r != none {
		i.at = r

		for l := i.t.Left(i.at); l != none; l = i.t.Left(i.at) {
			i.at = l
		}

		return true
	}

	// climb until we come up from a left child
	var child R
	for i.at != none {
		i.at, child = i.t.Parent(i.at), i.at
		if i.at != none && i.t.Left(i.at) == child {
			return true
		}
	}

	return false
}

// Item returns the current key of the iterator.
func (i *InOrder[R, T]) Item() T {
	return i.t.Value(i.at)
}

// Ref returns the reference of the current node.
func (i *InOrder[R, T]) Ref() R {
	return i.at
}
