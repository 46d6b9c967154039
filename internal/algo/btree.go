// Package algo contains algorithms used for locating keys inside a b-tree node.
package algo

import "sort"

const searchThreshold = 32

// FindKeyIndex returns the index of the first key >= key and whether that key
// is an exact match. When not found the index is also the child to descend
// into.
func FindKeyIndex(keys []int, key int) (int, bool) {
	var i int
	if len(keys) < searchThreshold {
		for i < len(keys) && keys[i] < key {
			i++
		}
	} else {
		i = sort.SearchInts(keys, key)
	}
	return i, i < len(keys) && keys[i] == key
}

// FindInsertPosition returns the index of the first key > key
func FindInsertPosition(keys []int, key int) int {
	if len(keys) < searchThreshold {
		pos := 0
		for pos < len(keys) && keys[pos] <= key {
			pos++
		}
		return pos
	}

	return sort.Search(len(keys), func(i int) bool {
		return keys[i] > key
	})
}

// IsStrictlyAscending reports whether every key is greater than the one before.
func IsStrictlyAscending(keys []int) bool {
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			return false
		}
	}
	return true
}

// SplitSizes distributes total keys over groups nodes as evenly as possible.
// The first total%groups nodes receive one extra key.
func SplitSizes(total, groups int) []int {
	if groups <= 0 {
		return nil
	}
	sizes := make([]int, groups)
	base, extra := total/groups, total%groups
	for i := range sizes {
		sizes[i] = base
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}
