package btrees

import "iter"

// frame represents one level in the cursor's navigation path from root to
// the current key.
// For ancestor frames: index is which child we descended to.
// For the top frame: index is which key we're currently at.
type frame struct {
	node  *Node
	index int
}

// Cursor provides ordered iteration over the tree's keys in both directions.
// A cursor is invalidated by any Insert or Delete on its tree.
type Cursor struct {
	tree  *BTree
	stack []frame // Navigation path from root to current key
	valid bool    // Is cursor positioned on valid key?
}

// Cursor creates a new cursor for this tree.
// Cursor starts in invalid state - call First or Last to position it.
func (bt *BTree) Cursor() *Cursor {
	return &Cursor{tree: bt}
}

// First positions cursor at the smallest key.
// Returns false if the tree is empty.
func (c *Cursor) First() (int, bool) {
	c.stack = c.stack[:0]
	c.valid = false

	if c.tree.root == nil {
		return 0, false
	}
	c.descendLeftmost(c.tree.root)
	return c.Key(), c.valid
}

// Last positions cursor at the largest key.
// Returns false if the tree is empty.
func (c *Cursor) Last() (int, bool) {
	c.stack = c.stack[:0]
	c.valid = false

	if c.tree.root == nil {
		return 0, false
	}
	c.descendRightmost(c.tree.root)
	return c.Key(), c.valid
}

// Next advances cursor to the next larger key.
// Returns false once the cursor moves past the last key.
func (c *Cursor) Next() (int, bool) {
	if !c.valid {
		return 0, false
	}

	top := &c.stack[len(c.stack)-1]

	// The successor of a branch key is the leftmost key of its right subtree
	if !top.node.leaf {
		top.index++
		c.descendLeftmost(top.node.children[top.index])
		return c.Key(), true
	}

	// Try to move within current leaf
	top.index++
	if top.index < len(top.node.keys) {
		return c.Key(), true
	}

	// Exhausted current leaf, climb to the first ancestor with a key to the
	// right of the subtree we came from
	for {
		c.stack = c.stack[:len(c.stack)-1]
		if len(c.stack) == 0 {
			c.valid = false
			return 0, false
		}
		parent := &c.stack[len(c.stack)-1]
		if parent.index < len(parent.node.keys) {
			return c.Key(), true
		}
	}
}

// Prev moves cursor to the next smaller key.
// Returns false once the cursor moves before the first key.
func (c *Cursor) Prev() (int, bool) {
	if !c.valid {
		return 0, false
	}

	top := &c.stack[len(c.stack)-1]

	// The predecessor of a branch key is the rightmost key of its left subtree
	if !top.node.leaf {
		c.descendRightmost(top.node.children[top.index])
		return c.Key(), true
	}

	top.index--
	if top.index >= 0 {
		return c.Key(), true
	}

	for {
		c.stack = c.stack[:len(c.stack)-1]
		if len(c.stack) == 0 {
			c.valid = false
			return 0, false
		}
		parent := &c.stack[len(c.stack)-1]
		if parent.index > 0 {
			parent.index--
			return c.Key(), true
		}
	}
}

// Key returns the key under the cursor, or 0 if the cursor is invalid
func (c *Cursor) Key() int {
	if !c.valid {
		return 0
	}
	top := c.stack[len(c.stack)-1]
	return top.node.keys[top.index]
}

// Valid reports whether the cursor is positioned on a key
func (c *Cursor) Valid() bool {
	return c.valid
}

func (c *Cursor) descendLeftmost(n *Node) {
	for !n.leaf {
		c.stack = append(c.stack, frame{node: n, index: 0})
		n = n.children[0]
	}
	c.stack = append(c.stack, frame{node: n, index: 0})
	c.valid = len(n.keys) > 0
}

func (c *Cursor) descendRightmost(n *Node) {
	for !n.leaf {
		c.stack = append(c.stack, frame{node: n, index: len(n.children) - 1})
		n = n.children[len(n.children)-1]
	}
	c.stack = append(c.stack, frame{node: n, index: len(n.keys) - 1})
	c.valid = len(n.keys) > 0
}

// Traverse returns the tree's keys in ascending order. The sequence is lazy
// and may be ranged over any number of times; each pass starts from the
// smallest key.
func (bt *BTree) Traverse() iter.Seq[int] {
	return func(yield func(int) bool) {
		c := bt.Cursor()
		for key, ok := c.First(); ok; key, ok = c.Next() {
			if !yield(key) {
				return
			}
		}
	}
}

// Backward returns the tree's keys in descending order.
func (bt *BTree) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		c := bt.Cursor()
		for key, ok := c.Last(); ok; key, ok = c.Prev() {
			if !yield(key) {
				return
			}
		}
	}
}

// Keys collects every key in ascending order
func (bt *BTree) Keys() []int {
	keys := make([]int, 0, bt.size)
	for key := range bt.Traverse() {
		keys = append(keys, key)
	}
	return keys
}

// Walk visits every node in pre-order together with its depth (root is 0).
// Returning false from fn skips the node's children.
func (bt *BTree) Walk(fn func(depth int, n *Node) bool) {
	if bt.root != nil {
		walk(bt.root, 0, fn)
	}
}

func walk(n *Node, depth int, fn func(int, *Node) bool) {
	if !fn(depth, n) || n.leaf {
		return
	}
	for _, child := range n.children {
		walk(child, depth+1, fn)
	}
}
