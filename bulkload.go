package btrees

import (
	"slices"

	"btrees/internal/algo"
)

// BulkLoader builds a tree bottom-up from keys supplied in strictly ascending
// order. It is considerably cheaper than repeated Insert calls and yields
// evenly filled nodes.
type BulkLoader struct {
	order int
	opts  []Option

	keys []int
	done bool
}

// BulkLoaderStats reports bulk loader progress
type BulkLoaderStats struct {
	KeysAdded int
	Finished  bool
}

// NewBulkLoader creates a loader for a tree of the given order. The options
// are applied to the tree returned by Finish.
func NewBulkLoader(order int, opts ...Option) (*BulkLoader, error) {
	if order < 3 {
		return nil, ErrInvalidOrder
	}
	return &BulkLoader{order: order, opts: opts}, nil
}

// Load builds a tree from keys, which must be strictly ascending.
//
//goland:noinspection GoUnusedExportedFunction
func Load(order int, keys []int, opts ...Option) (*BTree, error) {
	if !algo.IsStrictlyAscending(keys) {
		return nil, ErrKeysUnsorted
	}

	l, err := NewBulkLoader(order, opts...)
	if err != nil {
		return nil, err
	}
	l.keys = slices.Clone(keys)
	return l.Finish()
}

// Add appends a key to the loader.
// Keys MUST be added in strictly ascending sorted order.
func (l *BulkLoader) Add(key int) error {
	if l.done {
		return ErrBulkLoaderDone
	}

	// Enforce sorted order
	if n := len(l.keys); n > 0 && key <= l.keys[n-1] {
		return ErrKeysUnsorted
	}

	l.keys = append(l.keys, key)
	return nil
}

// Stats returns loader progress
func (l *BulkLoader) Stats() BulkLoaderStats {
	return BulkLoaderStats{
		KeysAdded: len(l.keys),
		Finished:  l.done,
	}
}

// Finish builds the tree. The loader cannot be used afterwards.
func (l *BulkLoader) Finish() (*BTree, error) {
	if l.done {
		return nil, ErrBulkLoaderDone
	}

	bt, err := New(l.order, l.opts...)
	if err != nil {
		return nil, err
	}
	l.done = true

	bt.root = bt.build(l.keys)
	bt.size = len(l.keys)
	l.keys = nil

	bt.log.Info("bulk load finished", "keys", bt.size, "height", bt.Height())
	return bt, nil
}

// build assembles the tree one level at a time, leaves first. Each level's
// entries are split into as few nodes as fit, with one separator between
// neighbours promoted to the level above.
func (bt *BTree) build(keys []int) *Node {
	if len(keys) == 0 {
		return nil
	}

	entries := keys
	var children []*Node // nil while building the leaf level

	for {
		nodes, separators := bt.buildLevel(entries, children)
		if len(nodes) == 1 {
			return nodes[0]
		}
		entries, children = separators, nodes
	}
}

// buildLevel groups entries into nodes. When children is non-nil it holds
// len(entries)+1 nodes of the level below, handed out in order.
//
// With g = ceil((m+1)/(MaxKeys+1)) groups for m entries, m-(g-1) keys remain
// after taking g-1 separators, and spreading them evenly keeps every node
// within [MinKeys, MaxKeys].
func (bt *BTree) buildLevel(entries []int, children []*Node) ([]*Node, []int) {
	m := len(entries)
	groups := (m + bt.MaxKeys() + 1) / (bt.MaxKeys() + 1)

	nodes := make([]*Node, 0, groups)
	separators := make([]int, 0, groups-1)

	pos, childPos := 0, 0
	for g, size := range algo.SplitSizes(m-(groups-1), groups) {
		n := &Node{
			keys: slices.Clone(entries[pos : pos+size]),
			leaf: children == nil,
		}
		pos += size

		if children != nil {
			n.children = slices.Clone(children[childPos : childPos+size+1])
			childPos += size + 1
		}
		nodes = append(nodes, n)

		if g < groups-1 {
			separators = append(separators, entries[pos])
			pos++
		}
	}

	return nodes, separators
}
