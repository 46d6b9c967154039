package btrees

import (
	"slices"

	"btrees/internal/algo"
)

// Node is a single b-tree node. It is handed out by Search as a read-only
// handle; callers must not hold on to it across mutations.
type Node struct {
	keys     []int   // Strictly increasing
	children []*Node // len(keys)+1 for branch nodes, empty for leaves
	leaf     bool
}

// newLeaf creates a leaf holding a copy of keys
func newLeaf(keys ...int) *Node {
	return &Node{
		keys: slices.Clone(keys),
		leaf: true,
	}
}

// Keys returns a copy of the node's keys
func (n *Node) Keys() []int {
	return slices.Clone(n.keys)
}

// NumKeys returns the number of keys held by the node
func (n *Node) NumKeys() int {
	return len(n.keys)
}

// IsLeaf reports whether the node has no children
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Contains reports whether key is stored in this node (not its subtree)
func (n *Node) Contains(key int) bool {
	_, found := algo.FindKeyIndex(n.keys, key)
	return found
}

// search recursively searches for a key in the subtree rooted at n
func (n *Node) search(key int) *Node {
	i, found := algo.FindKeyIndex(n.keys, key)
	if found {
		return n
	}
	if n.leaf {
		return nil
	}
	return n.children[i].search(key)
}

// minKey returns the smallest key of the subtree (leftmost leaf, first key)
func (n *Node) minKey() int {
	for !n.leaf {
		n = n.children[0]
	}
	return n.keys[0]
}

// maxKey returns the largest key of the subtree (rightmost leaf, last key)
func (n *Node) maxKey() int {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1]
}

// insertKeyAt inserts key at pos, shifting the following keys right
func (n *Node) insertKeyAt(pos, key int) {
	n.keys = slices.Insert(n.keys, pos, key)
}

// insertChildAt inserts child at pos, shifting the following children right
func (n *Node) insertChildAt(pos int, child *Node) {
	n.children = slices.Insert(n.children, pos, child)
}

// removeKeyAt removes the key at pos
func (n *Node) removeKeyAt(pos int) int {
	key := n.keys[pos]
	n.keys = slices.Delete(n.keys, pos, pos+1)
	return key
}

// removeChildAt removes the child at pos
func (n *Node) removeChildAt(pos int) *Node {
	child := n.children[pos]
	n.children = slices.Delete(n.children, pos, pos+1)
	return child
}

// split moves everything after the median at mid into a new right sibling.
// It returns the median key, which the caller must place in the parent, and
// the sibling. n keeps keys[:mid] and children[:mid+1].
func (n *Node) split(mid int) (int, *Node) {
	median := n.keys[mid]

	sibling := &Node{leaf: n.leaf}
	sibling.keys = slices.Clone(n.keys[mid+1:])
	if !n.leaf {
		sibling.children = slices.Clone(n.children[mid+1:])
		clear(n.children[mid+1:])
		n.children = n.children[:mid+1]
	}
	n.keys = n.keys[:mid]

	return median, sibling
}
