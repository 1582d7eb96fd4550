package avl

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvariant is wrapped by every error returned from Validate.
var ErrInvariant = errors.New("avl invariant violated")

// Validate walks the whole tree and checks ordering, balance,
// cached heights, parent links and the node count.
// It returns nil if the tree is a valid AVL tree.
func (t *Tree) Validate() error {
	if t.root != Nil && t.nodes[t.root].parent != Nil {
		return fmt.Errorf("%w: root %d has parent %d",
			ErrInvariant, t.root, t.nodes[t.root].parent)
	}

	seen := 0
	if _, err := t.validate(t.root, Nil, math.MinInt64, math.MaxInt64, &seen); err != nil {
		return err
	}

	if seen != t.count {
		return fmt.Errorf("%w: reached %d nodes, count is %d", ErrInvariant, seen, t.count)
	}

	return nil
}

// validate checks the subtree at r, whose values must lie in [lo, hi],
// and returns its true height.
func (t *Tree) validate(r, parent Ref, lo, hi int64, seen *int) (int, error) {
	if r == Nil {
		return 0, nil
	}

	if !t.live(r) {
		return 0, fmt.Errorf("%w: ref %d under %d is not a live node", ErrInvariant, r, parent)
	}

	*seen++
	if *seen > t.count {
		return 0, fmt.Errorf("%w: more nodes reachable than the %d stored", ErrInvariant, t.count)
	}

	n := t.nodes[r]
	if n.parent != parent {
		return 0, fmt.Errorf("%w: node %d has parent %d, reached from %d",
			ErrInvariant, r, n.parent, parent)
	}

	if n.value < lo || n.value > hi {
		return 0, fmt.Errorf("%w: node %d value %d outside [%d, %d]",
			ErrInvariant, r, n.value, lo, hi)
	}

	lh, err := t.validate(n.left, r, lo, n.value, seen)
	if err != nil {
		return 0, err
	}
	rh, err := t.validate(n.right, r, n.value, hi, seen)
	if err != nil {
		return 0, err
	}

	if bf := rh - lh; bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: node %d (value %d) has balance factor %d",
			ErrInvariant, r, n.value, bf)
	}

	h := lh + 1
	if rh > lh {
		h = rh + 1
	}
	if n.height != h {
		return 0, fmt.Errorf("%w: node %d cached height %d, actual %d",
			ErrInvariant, r, n.height, h)
	}

	return h, nil
}
