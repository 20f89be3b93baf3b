package chain_test

import (
	"testing"

	"github.com/katalvlaran/lvlist/chain"
)

// BenchmarkPushPop measures head push followed by pop on a list that stays
// at constant length.
func BenchmarkPushPop(b *testing.B) {
	l := chain.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Push(i)
		_ = l.Pop()
	}
}

// BenchmarkInsertMiddle_1000 measures a positional insert and delete at the
// middle of a 1000-node chain, so each iteration walks ~500 links twice.
func BenchmarkInsertMiddle_1000(b *testing.B) {
	l := chain.New[int]()
	for i := 0; i < 1000; i++ {
		l.Push(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Insert(500, i)
		l.Delete(500)
	}
}
