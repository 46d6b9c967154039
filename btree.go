package btrees

import (
	"btrees/internal/algo"
	"btrees/internal/cache"
)

// BTree is the main structure. The zero value is not usable; create trees
// with New or a BulkLoader.
//
// A BTree is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
type BTree struct {
	order int
	root  *Node // nil when the tree is empty
	size  int   // Number of keys stored

	log   Logger
	cache *cache.Cache[*Node] // Memoized Search results, nil when disabled
}

// New creates an empty BTree in which every node has at most order children.
func New(order int, opts ...Option) (*BTree, error) {
	if order < 3 {
		return nil, ErrInvalidOrder
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	bt := &BTree{
		order: order,
		log:   options.logger,
	}

	if options.searchCacheSize > 0 {
		c, err := cache.NewCache[*Node](options.searchCacheSize)
		if err != nil {
			return nil, err
		}
		bt.cache = c
	}

	return bt, nil
}

// Order returns the maximum number of children per node
func (bt *BTree) Order() int {
	return bt.order
}

// MaxKeys returns the maximum number of keys per node: order - 1
func (bt *BTree) MaxKeys() int {
	return bt.order - 1
}

// MinKeys returns the minimum number of keys per non-root node: ceil(order/2) - 1
func (bt *BTree) MinKeys() int {
	return (bt.order+1)/2 - 1
}

// Len returns the number of keys in the tree
func (bt *BTree) Len() int {
	return bt.size
}

// Root returns the root node, or nil for an empty tree
func (bt *BTree) Root() *Node {
	return bt.root
}

// Height returns the number of levels; 0 for an empty tree
func (bt *BTree) Height() int {
	h := 0
	for n := bt.root; n != nil; h++ {
		if n.leaf {
			return h + 1
		}
		n = n.children[0]
	}
	return h
}

// Search returns the node holding key, or nil if key is not in the tree.
// Treat the result as a found/not-found answer; its keys are only valid
// until the next mutation.
func (bt *BTree) Search(key int) *Node {
	if bt.root == nil {
		return nil
	}

	if bt.cache != nil {
		if n, hit := bt.cache.Get(key); hit {
			return n
		}
	}

	n := bt.root.search(key)

	if bt.cache != nil {
		bt.cache.Put(key, n)
	}
	return n
}

// Contains reports whether key is in the tree
func (bt *BTree) Contains(key int) bool {
	return bt.Search(key) != nil
}

// CacheStats returns Search cache statistics. All zero when the cache is
// disabled.
func (bt *BTree) CacheStats() cache.Stats {
	if bt.cache == nil {
		return cache.Stats{}
	}
	return bt.cache.Stats()
}

// mutated invalidates everything derived from the current tree shape
func (bt *BTree) mutated() {
	if bt.cache != nil {
		bt.cache.Purge()
	}
}

// Insert adds key to the tree. Inserting a key that is already present is a
// no-op.
func (bt *BTree) Insert(key int) {
	// The tree is empty, so initialize a new root leaf.
	if bt.root == nil {
		bt.root = newLeaf(key)
		bt.size++
		bt.mutated()
		return
	}

	if !bt.insert(bt.root, key) {
		return
	}
	bt.size++
	bt.mutated()

	// The root overflowed, grow the tree by one level.
	if len(bt.root.keys) > bt.MaxKeys() {
		bt.splitRoot()
	}
}

// splitRoot creates a new root node.
// The existing root then becomes the new root's left child.
// The new node created after splitting the existing root becomes the new
// root's right child.
func (bt *BTree) splitRoot() {
	newRoot := &Node{children: []*Node{bt.root}}
	bt.splitChild(newRoot, 0)
	bt.root = newRoot
	bt.log.Info("b-tree grew", "height", bt.Height(), "rootKey", newRoot.keys[0])
}

// insert places key in the subtree rooted at n. Returns false if the key
// already exists. A child that overflows during the recursive call is split
// here, on the way back up, so the caller frame always plays the role of the
// parent and no parent lookup is needed.
func (bt *BTree) insert(n *Node, key int) bool {
	if n.Contains(key) {
		return false
	}

	pos := algo.FindInsertPosition(n.keys, key)

	// Leaf node: insert directly, the parent fixes any overflow
	if n.leaf {
		n.insertKeyAt(pos, key)
		return true
	}

	if !bt.insert(n.children[pos], key) {
		return false
	}

	if len(n.children[pos].keys) > bt.MaxKeys() {
		bt.splitChild(n, pos)
	}
	return true
}

// splitChild splits parent.children[i] at the median index order/2 and
// promotes the median key into parent immediately before the new sibling.
func (bt *BTree) splitChild(parent *Node, i int) {
	child := parent.children[i]
	if len(child.keys) <= bt.order/2 {
		panic("btrees: split of a node that is not over-full")
	}

	median, sibling := child.split(bt.order / 2)
	parent.insertKeyAt(i, median)
	parent.insertChildAt(i+1, sibling)
}

// Delete removes key from the tree. It returns ErrTreeEmpty when the tree has
// no keys and ErrKeyNotFound when key is absent; in both cases the tree is
// left untouched and callers may carry on.
func (bt *BTree) Delete(key int) error {
	if bt.root == nil {
		bt.log.Info("delete skipped", "key", key, "reason", ErrTreeEmpty)
		return ErrTreeEmpty
	}

	if !bt.delete(bt.root, key) {
		bt.log.Info("delete skipped", "key", key, "reason", ErrKeyNotFound)
		return ErrKeyNotFound
	}
	bt.size--
	bt.mutated()

	// If the root node has no keys, update the root
	if len(bt.root.keys) == 0 {
		if bt.root.leaf {
			bt.root = nil
		} else {
			bt.root = bt.root.children[0]
		}
		bt.log.Info("b-tree shrank", "height", bt.Height())
	}
	return nil
}

// delete recursively deletes a key from the subtree rooted at n. Returns
// false, with the subtree unchanged, when the key is absent. Underflow or
// overflow of the child the recursion went through is repaired by this frame
// after the call returns, which propagates fixes upward one level at a time.
func (bt *BTree) delete(n *Node, key int) bool {
	idx, found := algo.FindKeyIndex(n.keys, key)

	if found {
		if n.leaf {
			n.removeKeyAt(idx)
		} else {
			bt.deleteFromNonLeaf(n, idx)
		}
		return true
	}

	if n.leaf {
		return false
	}

	if !bt.delete(n.children[idx], key) {
		return false
	}
	bt.rebalance(n, idx)
	return true
}

// deleteFromNonLeaf deletes n.keys[idx] from a branch node.
func (bt *BTree) deleteFromNonLeaf(n *Node, idx int) {
	left, right := n.children[idx], n.children[idx+1]

	switch {
	case len(left.keys) > bt.MinKeys():
		// Replace with predecessor and delete it from the left subtree
		pred := left.maxKey()
		n.keys[idx] = pred
		bt.delete(left, pred)
		bt.rebalance(n, idx)

	case len(right.keys) > bt.MinKeys():
		// Replace with successor and delete it from the right subtree
		succ := right.minKey()
		n.keys[idx] = succ
		bt.delete(right, succ)
		bt.rebalance(n, idx+1)

	default:
		// Both children have minimum keys, merge them around the key and
		// delete it from the merged node
		key := n.keys[idx]
		bt.merge(n, idx)
		bt.delete(n.children[idx], key)
		bt.rebalance(n, idx)
	}
}

// rebalance restores child idx of n to [MinKeys, MaxKeys] keys.
//
// Overflow only happens to a branch child produced by merging two minimal
// children in a tree of odd order: the merged node holds order keys and may
// keep all of them if the deleted key was replaced by a predecessor or
// successor further down.
func (bt *BTree) rebalance(n *Node, idx int) {
	child := n.children[idx]
	switch {
	case len(child.keys) > bt.MaxKeys():
		bt.splitChild(n, idx)
	case len(child.keys) < bt.MinKeys():
		bt.fill(n, idx)
	}
}

// fill tops up child idx of n, which holds fewer than MinKeys keys.
func (bt *BTree) fill(n *Node, idx int) {
	if len(n.children) < 2 {
		panic("btrees: fill on a node without siblings")
	}

	switch {
	case idx > 0 && len(n.children[idx-1].keys) > bt.MinKeys():
		bt.borrowFromPrev(n, idx)
	case idx < len(n.children)-1 && len(n.children[idx+1].keys) > bt.MinKeys():
		bt.borrowFromNext(n, idx)
	case idx > 0:
		bt.merge(n, idx-1)
	default:
		bt.merge(n, idx)
	}
}

// borrowFromPrev rotates the last key of child idx-1 up into n and the
// separator n.keys[idx-1] down to the front of child idx.
func (bt *BTree) borrowFromPrev(n *Node, idx int) {
	child, sibling := n.children[idx], n.children[idx-1]

	child.insertKeyAt(0, n.keys[idx-1])
	n.keys[idx-1] = sibling.removeKeyAt(len(sibling.keys) - 1)

	// Move the last child pointer too
	if !child.leaf {
		child.insertChildAt(0, sibling.removeChildAt(len(sibling.children)-1))
	}
}

// borrowFromNext rotates the first key of child idx+1 up into n and the
// separator n.keys[idx] down to the end of child idx.
func (bt *BTree) borrowFromNext(n *Node, idx int) {
	child, sibling := n.children[idx], n.children[idx+1]

	child.keys = append(child.keys, n.keys[idx])
	n.keys[idx] = sibling.removeKeyAt(0)

	// Move the first child pointer too
	if !child.leaf {
		child.children = append(child.children, sibling.removeChildAt(0))
	}
}

// merge folds child idx+1 and separator n.keys[idx] into child idx. The
// absorbed sibling is dropped.
func (bt *BTree) merge(n *Node, idx int) {
	left, right := n.children[idx], n.children[idx+1]

	left.keys = append(left.keys, n.removeKeyAt(idx))
	left.keys = append(left.keys, right.keys...)
	if !left.leaf {
		left.children = append(left.children, right.children...)
	}

	n.removeChildAt(idx + 1)
}
