package btrees

import "errors"

//goland:noinspection GoUnusedGlobalVariable
var (
	ErrInvalidOrder = errors.New("order must be at least 3")
	ErrTreeEmpty    = errors.New("tree is empty")
	ErrKeyNotFound  = errors.New("key not present")
	ErrInvalidTree  = errors.New("b-tree invariant violated")

	ErrKeysUnsorted   = errors.New("keys must be added in strictly ascending order")
	ErrBulkLoaderDone = errors.New("bulk loader already finished")
)
