package btrees

import (
	"fmt"

	"btrees/internal/algo"
)

// keyRange holds the exclusive bounds a subtree's keys must fall between.
// A nil bound is unbounded.
type keyRange struct {
	lo, hi *int
}

func (r keyRange) contains(key int) bool {
	return (r.lo == nil || key > *r.lo) && (r.hi == nil || key < *r.hi)
}

// IsValid reports whether the tree satisfies every b-tree invariant. An empty
// tree is valid. Intended for tests and assertions.
func (bt *BTree) IsValid() bool {
	return bt.Check() == nil
}

// Check validates the tree structure and returns the first violation found,
// wrapped in ErrInvalidTree.
func (bt *BTree) Check() error {
	if bt.root == nil {
		if bt.size != 0 {
			return fmt.Errorf("%w: empty tree reports %d keys", ErrInvalidTree, bt.size)
		}
		return nil
	}

	leafDepth := -1
	count, err := bt.checkNode(bt.root, true, 0, keyRange{}, &leafDepth)
	if err != nil {
		return err
	}
	if count != bt.size {
		return fmt.Errorf("%w: tree holds %d keys but reports %d", ErrInvalidTree, count, bt.size)
	}
	return nil
}

// checkNode recursively validates the subtree rooted at n and returns the
// number of keys it holds.
func (bt *BTree) checkNode(n *Node, isRoot bool, depth int, bounds keyRange, leafDepth *int) (int, error) {
	numKeys := len(n.keys)

	minKeys := bt.MinKeys()
	if isRoot {
		minKeys = 1
	}
	if numKeys < minKeys || numKeys > bt.MaxKeys() {
		return 0, fmt.Errorf("%w: node at depth %d has %d keys, want [%d, %d]",
			ErrInvalidTree, depth, numKeys, minKeys, bt.MaxKeys())
	}

	if !algo.IsStrictlyAscending(n.keys) {
		return 0, fmt.Errorf("%w: keys %v at depth %d are not strictly increasing", ErrInvalidTree, n.keys, depth)
	}

	for _, key := range n.keys {
		if !bounds.contains(key) {
			return 0, fmt.Errorf("%w: key %d at depth %d is outside its separator range", ErrInvalidTree, key, depth)
		}
	}

	if n.leaf {
		if len(n.children) != 0 {
			return 0, fmt.Errorf("%w: leaf at depth %d has %d children", ErrInvalidTree, depth, len(n.children))
		}
		if *leafDepth == -1 {
			*leafDepth = depth
		} else if *leafDepth != depth {
			return 0, fmt.Errorf("%w: leaf at depth %d, other leaves at depth %d", ErrInvalidTree, depth, *leafDepth)
		}
		return numKeys, nil
	}

	if len(n.children) != numKeys+1 {
		return 0, fmt.Errorf("%w: branch at depth %d has %d keys and %d children",
			ErrInvalidTree, depth, numKeys, len(n.children))
	}

	total := numKeys
	for i, child := range n.children {
		if child == nil {
			return 0, fmt.Errorf("%w: nil child %d at depth %d", ErrInvalidTree, i, depth)
		}

		childBounds := bounds
		if i > 0 {
			childBounds.lo = &n.keys[i-1]
		}
		if i < numKeys {
			childBounds.hi = &n.keys[i]
		}

		count, err := bt.checkNode(child, false, depth+1, childBounds, leafDepth)
		if err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}
