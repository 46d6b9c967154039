package btrees

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

const (
	leafMarker   = 'L'
	branchMarker = 'B'
)

// Fingerprint hashes the tree's shape and keys. Two trees with equal
// fingerprints have (with overwhelming probability) the same nodes holding the
// same keys, which makes it a cheap way to assert that an operation left the
// structure untouched. The order and options are not part of the hash.
func (bt *BTree) Fingerprint() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 16)

	bt.Walk(func(depth int, n *Node) bool {
		buf = buf[:0]
		if n.leaf {
			buf = append(buf, leafMarker)
		} else {
			buf = append(buf, branchMarker)
		}
		buf = binary.LittleEndian.AppendUint32(buf, uint32(depth))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(n.keys)))
		_, _ = d.Write(buf)

		for _, key := range n.keys {
			buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(key))
			_, _ = d.Write(buf)
		}
		return true
	})

	return d.Sum64()
}
