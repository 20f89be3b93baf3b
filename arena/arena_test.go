package arena_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/arena"
)

// panicErr runs fn and returns the error it panicked with.
func panicErr(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()

	return nil
}

func TestAllocFree(t *testing.T) {
	a := arena.New[string]()
	i := a.Alloc("x")
	j := a.Alloc("y")
	assert.NotEqual(t, i, j)
	assert.Equal(t, "x", a.Get(i))
	assert.Equal(t, arena.Nil, a.Next(i))
	assert.Equal(t, 2, a.Live())

	assert.Equal(t, "x", a.Free(i))
	assert.False(t, a.Valid(i))
	assert.True(t, a.Valid(j))
	assert.Equal(t, arena.Stats{Allocs: 2, Frees: 1}, a.Stats())
}

func TestAlloc_ReusesFreedSlot(t *testing.T) {
	a := arena.New[int](arena.WithCapacity(4))
	i := a.Alloc(1)
	a.Free(i)
	k := a.Alloc(2)
	assert.Equal(t, i, k, "freed slot reused")
	assert.Equal(t, 2, a.Get(k))
	assert.Equal(t, arena.Nil, a.Next(k), "reused slot starts unlinked")
	assert.Equal(t, 1, a.Stats().Reuses)
	assert.Equal(t, 1, a.Live())
}

func TestFree_Double(t *testing.T) {
	a := arena.New[int]()
	i := a.Alloc(1)
	a.Free(i)
	err := panicErr(t, func() { a.Free(i) })
	assert.True(t, errors.Is(err, arena.ErrDoubleFree))
	assert.Equal(t, 1, a.Stats().Frees, "double free not counted")
}

func TestBadIndex(t *testing.T) {
	a := arena.New[int]()
	i := a.Alloc(1)
	cases := map[string]func(){
		"free out of range": func() { a.Free(5) },
		"free Nil":          func() { a.Free(arena.Nil) },
		"get Nil":           func() { a.Get(arena.Nil) },
		"next out of range": func() { a.Next(9) },
		"link to dead slot": func() { a.SetNext(i, 3) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, panicErr(t, fn), arena.ErrBadIndex)
		})
	}

	a.Free(i)
	assert.ErrorIs(t, panicErr(t, func() { a.Get(i) }), arena.ErrBadIndex, "access after free")
}

func TestSetNextAndSwap(t *testing.T) {
	a := arena.New[int]()
	i, j := a.Alloc(1), a.Alloc(2)
	a.SetNext(i, j)
	assert.Equal(t, j, a.Next(i))

	a.Swap(i, j)
	assert.Equal(t, 2, a.Get(i))
	assert.Equal(t, 1, a.Get(j))
	assert.Equal(t, j, a.Next(i), "links stay in place")
}

func TestUpdate(t *testing.T) {
	a := arena.New[int]()
	i := a.Alloc(1)
	a.Update(i, func(p *int) { *p += 41 })
	assert.Equal(t, 42, a.Get(i))

	a.Free(i)
	assert.ErrorIs(t, panicErr(t, func() { a.Update(i, func(*int) {}) }), arena.ErrBadIndex)
}

func TestFreeChain(t *testing.T) {
	a := arena.New[int]()
	head := a.Alloc(0)
	prev := head
	for v := 1; v < 100; v++ {
		n := a.Alloc(v)
		a.SetNext(prev, n)
		prev = n
	}
	keep := a.Alloc(-1)

	assert.Equal(t, 100, a.FreeChain(head))
	assert.Equal(t, 1, a.Live())
	assert.True(t, a.Valid(keep))
	assert.Equal(t, 0, a.FreeChain(arena.Nil))
}

func TestWithLogger_Traces(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	a := arena.New[int](arena.WithLogger(logrus.NewEntry(logger)))

	i := a.Alloc(1)
	a.Free(i)
	a.Alloc(2)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "arena: alloc", entries[0].Message)
	assert.Equal(t, "arena: free", entries[1].Message)
	assert.Equal(t, "arena: reuse", entries[2].Message)
	assert.Equal(t, int(i), entries[2].Data["slot"])
}

func TestWithLogger_NilIgnored(t *testing.T) {
	a := arena.New[int](arena.WithLogger(nil), arena.WithCapacity(-1))
	assert.NotPanics(t, func() { a.Free(a.Alloc(1)) })
}
