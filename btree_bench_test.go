package btrees

import (
	"fmt"
	"testing"
)

func populated(b *testing.B, order, numKeys int, opts ...Option) *BTree {
	b.Helper()

	bt, err := New(order, opts...)
	if err != nil {
		b.Fatalf("Failed to create tree: %v", err)
	}
	for i := 0; i < numKeys; i++ {
		bt.Insert((i * 7919) % numKeys)
	}
	return bt
}

func BenchmarkSearch(b *testing.B) {
	for _, order := range []int{5, 32, 128} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			numKeys := 10000
			bt := populated(b, order, numKeys)

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if bt.Search((i*7)%numKeys) == nil {
					b.Errorf("key %d missing", (i*7)%numKeys)
				}
			}
		})
	}
}

func BenchmarkSearchCached(b *testing.B) {
	numKeys := 10000
	bt := populated(b, 5, numKeys, WithSearchCache(1024))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bt.Search(i % 512)
	}
}

func BenchmarkInsert(b *testing.B) {
	for _, order := range []int{5, 32, 128} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			bt, err := New(order)
			if err != nil {
				b.Fatalf("Failed to create tree: %v", err)
			}

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				bt.Insert(i)
			}
		})
	}
}

func BenchmarkInsertDelete(b *testing.B) {
	numKeys := 10000
	bt := populated(b, 16, numKeys)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		key := (i * 7) % numKeys
		if err := bt.Delete(key); err != nil {
			b.Errorf("delete failed: %v", err)
		}
		bt.Insert(key)
	}
}

func BenchmarkBulkLoad(b *testing.B) {
	keys := make([]int, 100000)
	for i := range keys {
		keys[i] = i
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Load(64, keys); err != nil {
			b.Fatalf("load failed: %v", err)
		}
	}
}
