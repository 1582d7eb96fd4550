package iterator

var _ Iterator[int] = (*InOrderReverse[uint32, int])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[R comparable, T any] struct {
	t  Tree[R, T]
	at R
}

// NewInOrderReverse returns a new InOrderReverse iterator over t.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[R comparable, T any](t Tree[R, T]) *InOrderReverse[R, T] {
	return &InOrderReverse[R, T]{
		t: t,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[R, T]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	var none R
	if i == nil || i.t == nil {
		return false
	}

	if i.at == none {
		i.at = i.t.Root()
		if i.at == none {
			return false
		}

		for r := i.t.Right(i.at); r != none; r = i.t.Right(i.at) {
			i.at = r
		}
		return true
	}

	if l := i.t.Left(i.at); l != none {
		i.at = l

		for r := i.t.Right(i.at); r != none; r = i.t.Right(i.at) {
			i.at = r
		}

		return true
	}

	var child R
	for i.at != none {
		i.at, child = i.t.Parent(i.at), i.at
		if i.at != none && i.t.Right(i.at) == child {
			return true
		}
	}

	return false
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[R, T]) Item() T {
	return i.t.Value(i.at)
}
