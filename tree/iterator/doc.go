// Package iterator provides tree iterators for use
// by tree implementations.
//
// The iterators work on any binary tree whose nodes are addressed
// by a comparable reference, such as an index into a node arena.
// The zero reference always means "no node".
package iterator

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Next may be called any number of times.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.Iterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Tree is the view of a binary tree that the iterators need.
// Left, Right and Parent return the zero R when there is no such node.
// Root returns the zero R for an empty tree.
type Tree[R comparable, T any] interface {
	Root() R
	Left(R) R
	Right(R) R
	Parent(R) R
	Value(R) T
}
