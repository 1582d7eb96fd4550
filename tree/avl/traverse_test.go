package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelOrder(t *testing.T) {
	assert.Nil(t, New().LevelOrder())
	assert.Equal(t, []int64{4, 2, 6, 1, 3, 5, 7}, newCompleteTree_2Tall().LevelOrder())
}

func TestInOrder(t *testing.T) {
	tr := newCompleteTree_2Tall()

	var got []int64
	tr.InOrder(func(n Node) bool {
		got = append(got, n.Value())
		return n.Value() < 5
	})
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, got)

	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7}, tr.Values())
	assert.Empty(t, New().Values())
}

func TestIterators(t *testing.T) {
	tr := BuildFromValues([]int64{5, 3, 8, 1, 4, 7, 9, 2, 6})

	var fwd, rev []int64
	for i := tr.InOrderIterator(); i.Next(); {
		fwd = append(fwd, i.Item())
	}
	for i := tr.InOrderReverseIterator(); i.Next(); {
		rev = append(rev, i.Item())
	}

	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, fwd)
	assert.Equal(t, []int64{9, 8, 7, 6, 5, 4, 3, 2, 1}, rev)
}

func TestInOrderCoroutine(t *testing.T) {
	tr := BuildFromValues([]int64{5, 3, 8, 1, 4, 7, 9, 2, 6})

	var got []int64
	co := tr.InOrderCoroutine()
	for v := range co.Items() {
		got = append(got, v)
		if v == 4 {
			co.Stop()
			break
		}
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, got)

	got = got[:0]
	for v := range tr.InOrderCoroutine().Items() {
		got = append(got, v)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestTree_String(t *testing.T) {
	assert.Equal(t, "", New().String())

	want := `4
├─L─2
│   ├─L─1
│   └─R─3
└─R─6
    ├─L─5
    └─R─7
`
	assert.Equal(t, want, newCompleteTree_2Tall().String())

	want = `10
└─R─15
`
	assert.Equal(t, want, BuildFromValues([]int64{10, 15}).String())
}
