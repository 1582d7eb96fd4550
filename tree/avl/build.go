package avl

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrLengthMismatch is returned when the value and index lists
// given to BuildFromIndexAndValues have different lengths.
var ErrLengthMismatch = errors.New("index and value lists have different lengths")

// BuildFromValues builds a tree by inserting values in order.
// Every node gets index 0.
func BuildFromValues(values []int64) *Tree {
	t := New()
	for _, v := range values {
		t.Insert(0, v)
	}
	return t
}

// BuildFromIndexAndValues builds a tree by inserting the pairs
// (indices[i], values[i]) in order.
func BuildFromIndexAndValues(values, indices []int64) (*Tree, error) {
	if len(values) != len(indices) {
		return nil, fmt.Errorf("%w: %d values, %d indices",
			ErrLengthMismatch, len(values), len(indices))
	}

	t := New()
	for i, v := range values {
		t.Insert(indices[i], v)
	}
	return t, nil
}

// MustBuildFromIndexAndValues is like BuildFromIndexAndValues
// but panics if the lists have different lengths.
func MustBuildFromIndexAndValues(values, indices []int64) *Tree {
	t, err := BuildFromIndexAndValues(values, indices)
	if err != nil {
		panic(err)
	}
	return t
}

// BuildRandom builds a tree with num nodes.
// Values are in the range [0, num) and are inserted in a random order;
// each node's index is its insertion position.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree {
	rd := rand.New(rand.NewSource(seed))

	values := make([]int64, num)
	for i := range values {
		values[i] = int64(i)
	}

	rd.Shuffle(num, func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	t := New()
	for i, v := range values {
		t.Insert(int64(i), v)
	}

	return t
}
