package sentinel_test

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlist/sentinel"
	"github.com/katalvlaran/lvlist/seq"
	"github.com/katalvlaran/lvlist/seq/seqtest"
)

// fiveNodes returns a sentinel list holding 1..5.
func fiveNodes() *sentinel.Node[int] {
	head := sentinel.New[int]()
	for _, v := range lo.RangeFrom(1, 5) {
		head.Push(v)
	}

	return head
}

func TestNew_IsBareSentinel(t *testing.T) {
	head := sentinel.New[int]()
	assert.True(t, head.Data.IsAbsent())
	assert.Nil(t, head.Next)
	assert.Equal(t, 0, head.Len())
	assert.True(t, head.IsEmpty())
}

func TestPush_Length(t *testing.T) {
	head := fiveNodes()
	assert.True(t, head.Data.IsAbsent(), "sentinel keeps no value")
	require.NotNil(t, head.Next)
	assert.Equal(t, mo.Some(1), head.Next.Data)
	assert.Equal(t, 5, head.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, head.Values())
}

func TestRemove_ShiftsPositions(t *testing.T) {
	head := fiveNodes()
	require.True(t, head.Remove(1))
	assert.Equal(t, 4, head.Len())
	for i, want := range []int{2, 3, 4, 5} {
		assert.Equal(t, mo.Some(want), head.Elem(i+1), "position %d", i+1)
	}
}

func TestGet(t *testing.T) {
	head := fiveNodes()

	zero, ok := head.Get(0).Get()
	require.True(t, ok)
	assert.Same(t, head, zero, "Get(0) is the sentinel")
	assert.True(t, zero.Data.IsAbsent())

	first := head.Get(1).MustGet()
	assert.Equal(t, mo.Some(1), first.Data)
	second := head.Get(2).MustGet()
	assert.Equal(t, mo.Some(2), second.Data)

	assert.True(t, head.Get(5).IsPresent())
	assert.True(t, head.Get(6).IsAbsent())
	assert.True(t, head.Get(-1).IsAbsent())
}

func TestGet_Mutates(t *testing.T) {
	head := fiveNodes()
	node := head.Get(3).MustGet()
	node.Data = mo.Some(30)
	assert.Equal(t, []int{1, 2, 30, 4, 5}, head.Values())
}

func TestAll_SkipsClearedData(t *testing.T) {
	head := fiveNodes()
	head.Get(2).MustGet().Data = mo.None[int]()

	assert.Equal(t, []int{1, 3, 4, 5}, head.Values(), "no zero value in place of the cleared node")
	assert.Equal(t, 5, head.Len(), "the node itself stays linked")
	assert.True(t, head.Elem(2).IsAbsent())
	assert.Equal(t, seq.NotFound, head.Locate(0), "cleared node yields no zero value")
	assert.Equal(t, mo.Some(1), head.PriorOf(3))
}

func TestPopTail(t *testing.T) {
	head := sentinel.New[int]()
	assert.True(t, head.PopTail().IsAbsent(), "bare sentinel")
	assert.Equal(t, 0, head.Len())

	head.Push(1)
	head.Push(2)
	assert.Equal(t, mo.Some(2), head.PopTail())
	assert.Equal(t, 1, head.Len())
	assert.Equal(t, mo.Some(1), head.PopTail())
	assert.True(t, head.IsEmpty())
}

func TestInsert(t *testing.T) {
	head := sentinel.New[int]()
	head.Push(1)
	head.Push(3)
	require.True(t, head.Insert(1, 0))
	require.True(t, head.Insert(3, 2))
	require.True(t, head.Insert(5, 4), "append")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, head.Values())
}

func TestInsertRemove_Rejects(t *testing.T) {
	head := fiveNodes()
	assert.False(t, head.Insert(0, 9))
	assert.False(t, head.Insert(7, 9))
	assert.False(t, head.Remove(0))
	assert.False(t, head.Remove(6))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, head.Values())
}

func TestEmpty_EveryPositionAbsent(t *testing.T) {
	head := sentinel.New[int]()
	for i := 1; i < 4; i++ {
		assert.False(t, head.Remove(i))
		assert.True(t, head.Get(i).IsAbsent())
		assert.True(t, head.Elem(i).IsAbsent())
	}
}

func TestMustInsert_Unreachable(t *testing.T) {
	head := sentinel.New[int]()
	assert.PanicsWithError(t, seq.IndexError(3).Error(), func() { head.MustInsert(3, 1) })
	assert.NotPanics(t, func() { head.MustInsert(1, 1) })
	assert.Equal(t, []int{1}, head.Values())
}

func TestMustRemove_Unreachable(t *testing.T) {
	head := fiveNodes()
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "panic value is an error")
		assert.True(t, errors.Is(err, seq.ErrIndex))
		assert.Equal(t, 5, head.Len())
	}()
	head.MustRemove(6)
}

func TestInsertRemove_RoundTrip(t *testing.T) {
	for i := 1; i <= 6; i++ {
		head := fiveNodes()
		head.MustInsert(i, 99)
		head.MustRemove(i)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, head.Values(), "position %d", i)
	}
}

func TestClear(t *testing.T) {
	head := fiveNodes()
	head.Clear()
	assert.True(t, head.IsEmpty())
	assert.True(t, head.Data.IsAbsent())
}

func TestSequenceContract(t *testing.T) {
	suite.Run(t, seqtest.New(func() seq.Sequence[int] { return sentinel.New[int]() }))
}
