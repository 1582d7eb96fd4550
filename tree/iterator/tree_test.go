package iterator

// arena is a minimal index-linked tree used by the tests.
// Slot 0 is the absent node.
type arena struct {
	root  uint32
	nodes []arenaNode
}

type arenaNode struct {
	key                 int
	left, right, parent uint32
}

var _ Tree[uint32, int] = (*arena)(nil)

func (a *arena) Root() uint32 { return a.root }
func (a *arena) Left(r uint32) uint32 { return a.nodes[r].left }
func (a *arena) Right(r uint32) uint32 { return a.nodes[r].right }
func (a *arena) Parent(r uint32) uint32 { return a.nodes[r].parent }
func (a *arena) Value(r uint32) int { return a.nodes[r].key }

func newEmptyTree() *arena {
	return &arena{nodes: make([]arenaNode, 1)}
}

func newSingleTree() *arena {
	return &arena{
		root: 1,
		nodes: []arenaNode{
			{},
			{key: 1},
		},
	}
}

// newCompleteTree_2Tall builds
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func newCompleteTree_2Tall() *arena {
	return &arena{
		root: 4,
		nodes: []arenaNode{
			{},
			{key: 1, parent: 2},
			{key: 2, left: 1, right: 3, parent: 4},
			{key: 3, parent: 2},
			{key: 4, left: 2, right: 6},
			{key: 5, parent: 6},
			{key: 6, left: 5, right: 7, parent: 4},
			{key: 7, parent: 6},
		},
	}
}

// newDoglegTree builds
//
//	8
//	├─L─5
//	│   ├─L─1
//	│   └─R─7
//	│       └─L─6
//	└─R─9
func newDoglegTree() *arena {
	return &arena{
		root: 5,
		nodes: []arenaNode{
			{},
			{key: 1, parent: 2},
			{key: 5, left: 1, right: 3, parent: 5},
			{key: 7, left: 4, parent: 2},
			{key: 6, parent: 3},
			{key: 8, left: 2, right: 6},
			{key: 9, parent: 5},
		},
	}
}

func drain[T any](i Iterator[T]) []T {
	var out []T
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}
