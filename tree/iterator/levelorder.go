package iterator

var _ Iterator[int] = (*LevelOrder[uint32, int])(nil)

// LevelOrder is a breadth-first iterator over a binary tree.
// Within a level, nodes are yielded left to right.
// It does not use parent links; instead it keeps a queue
// that holds at most one level of the tree.
type LevelOrder[R comparable, T any] struct {
	t       Tree[R, T]
	queue   []R
	at      R
	started bool
}

// NewLevelOrder returns a new LevelOrder iterator over t.
func NewLevelOrder[R comparable, T any](t Tree[R, T]) *LevelOrder[R, T] {
	return &LevelOrder[R, T]{
		t: t,
	}
}

func (i *LevelOrder[R, T]) Next() bool {
	var none R
	if i == nil || i.t == nil {
		return false
	}

	if !i.started {
		i.started = true
		if root := i.t.Root(); root != none {
			i.queue = append(i.queue, root)
		}
	}

	if len(i.queue) == 0 {
		return false
	}

	i.at, i.queue = i.queue[0], i.queue[1:]

	if l := i.t.Left(i.at); l != none {
		i.queue = append(i.queue, l)
	}
	if r := i.t.Right(i.at); r != none {
		i.queue = append(i.queue, r)
	}

	return true
}

func (i *LevelOrder[R, T]) Item() T {
	return i.t.Value(i.at)
}
