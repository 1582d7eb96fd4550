package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNode(t *testing.T) {
	n := newNode(3, 42)

	assert.Equal(t, int64(3), n.Index())
	assert.Equal(t, int64(42), n.Value())
	assert.Equal(t, 1, n.Height())
	assert.Equal(t, Nil, n.Left())
	assert.Equal(t, Nil, n.Right())
	assert.Equal(t, Nil, n.Parent())
	assert.True(t, n.HasNoChild())
}

func TestNode_Children(t *testing.T) {
	tests := []struct {
		name                            string
		n                               Node
		none, onlyLeft, onlyRight, both bool
	}{
		{name: "leaf", n: Node{height: 1}, none: true},
		{name: "left", n: Node{height: 2, left: 2}, onlyLeft: true},
		{name: "right", n: Node{height: 2, right: 3}, onlyRight: true},
		{name: "both", n: Node{height: 2, left: 2, right: 3}, both: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.none, tt.n.HasNoChild())
			assert.Equal(t, tt.onlyLeft, tt.n.HasOnlyLeftChild())
			assert.Equal(t, tt.onlyRight, tt.n.HasOnlyRightChild())
			assert.Equal(t, tt.both, tt.n.HasBothChildren())
		})
	}
}

func TestTree_BalanceFactorAndHeight(t *testing.T) {
	tr := BuildFromValues([]int64{10, 5, 15, 20})
	// 10
	// ├─L─5
	// └─R─15
	//     └─R─20

	root := tr.Root()
	assert.Equal(t, 1, tr.BalanceFactor(root))
	assert.Equal(t, 3, tr.Node(root).Height())
	assert.Equal(t, 0, tr.BalanceFactor(mustSearch(t, tr, 5)))
	assert.Equal(t, 1, tr.BalanceFactor(mustSearch(t, tr, 15)))
	assert.Equal(t, 0, tr.BalanceFactor(mustSearch(t, tr, 20)))

	assert.Equal(t, 0, tr.nodes.height(Nil))
}

func TestTree_IsLeftChild(t *testing.T) {
	tr := BuildFromValues([]int64{10, 5, 15})

	root := tr.Root()
	five, fifteen := mustSearch(t, tr, 5), mustSearch(t, tr, 15)

	// by convention
	assert.True(t, tr.IsLeftChild(root))
	assert.False(t, tr.IsRightChild(root))

	assert.True(t, tr.IsLeftChild(five))
	assert.False(t, tr.IsRightChild(five))
	assert.False(t, tr.IsLeftChild(fifteen))
	assert.True(t, tr.IsRightChild(fifteen))
}

func TestTree_IsLeftChild_SamePayload(t *testing.T) {
	// Both children of the root carry the same index and value;
	// they must still be told apart.
	tr := BuildFromValues([]int64{5, 5, 5})
	root := tr.Root()
	l, r := tr.Left(root), tr.Right(root)

	assert.Equal(t, tr.Node(l).Value(), tr.Node(r).Value())
	assert.True(t, tr.IsLeftChild(l))
	assert.True(t, tr.IsRightChild(r))
}
