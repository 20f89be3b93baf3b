// Package seqtest provides a reusable testify suite that checks any
// seq.Sequence[int] implementation against the shared contract.
//
// Usage from a package test:
//
//	func TestSequenceContract(t *testing.T) {
//		suite.Run(t, seqtest.New(func() seq.Sequence[int] { return chain.New[int]() }))
//	}
package seqtest

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlist/seq"
)

// Factory builds a fresh, empty sequence.
type Factory func() seq.Sequence[int]

// ContractSuite runs the common sequence properties against a Factory.
type ContractSuite struct {
	suite.Suite
	factory Factory
	s       seq.Sequence[int]
}

// New returns a suite bound to factory.
func New(factory Factory) *ContractSuite {
	return &ContractSuite{factory: factory}
}

func (cs *ContractSuite) SetupTest() {
	cs.s = cs.factory()
}

func (cs *ContractSuite) TearDownTest() {
	cs.s.Destroy()
}

// fill appends vals in order through InsertAt.
func (cs *ContractSuite) fill(vals ...int) {
	for _, v := range vals {
		cs.Require().NoError(cs.s.InsertAt(cs.s.Len()+1, v))
	}
}

func (cs *ContractSuite) values() []int {
	return seq.Collect(cs.s.All())
}

func (cs *ContractSuite) TestEmpty() {
	cs.True(cs.s.IsEmpty())
	cs.Equal(0, cs.s.Len())
	cs.Empty(cs.values())
	for _, i := range []int{-1, 0, 1, 2} {
		cs.True(cs.s.Elem(i).IsAbsent(), "Elem(%d) on empty", i)
		cs.ErrorIs(cs.s.DeleteAt(i), seq.ErrIndex, "DeleteAt(%d) on empty", i)
	}
	cs.Equal(seq.NotFound, cs.s.Locate(1))
}

func (cs *ContractSuite) TestInsertAppendAndElem() {
	cs.fill(10, 20, 30)
	cs.False(cs.s.IsEmpty())
	cs.Equal(3, cs.s.Len())
	cs.Equal([]int{10, 20, 30}, cs.values())
	cs.Equal(mo.Some(10), cs.s.Elem(1))
	cs.Equal(mo.Some(30), cs.s.Elem(3))
	cs.True(cs.s.Elem(4).IsAbsent())
}

func (cs *ContractSuite) TestInsertHeadAndMiddle() {
	cs.fill(20, 40)
	cs.Require().NoError(cs.s.InsertAt(1, 10))
	cs.Require().NoError(cs.s.InsertAt(3, 30))
	cs.Equal([]int{10, 20, 30, 40}, cs.values())
}

func (cs *ContractSuite) TestInsertInvalidDoesNotMutate() {
	cs.fill(1, 2, 3)
	for _, i := range []int{-3, 0, 5, 100} {
		err := cs.s.InsertAt(i, 99)
		cs.ErrorIs(err, seq.ErrIndex, "InsertAt(%d)", i)
	}
	cs.Equal([]int{1, 2, 3}, cs.values())
}

func (cs *ContractSuite) TestDeleteInvalidDoesNotMutate() {
	cs.fill(1, 2, 3)
	for _, i := range []int{-1, 0, 4, 100} {
		cs.ErrorIs(cs.s.DeleteAt(i), seq.ErrIndex, "DeleteAt(%d)", i)
	}
	cs.Equal([]int{1, 2, 3}, cs.values())
}

func (cs *ContractSuite) TestDeleteEveryPosition() {
	base := []int{1, 2, 3, 4, 5}
	for i := 1; i <= len(base); i++ {
		cs.s.Clear()
		cs.fill(base...)
		cs.Require().NoError(cs.s.DeleteAt(i))
		want := append(append([]int{}, base[:i-1]...), base[i:]...)
		cs.Equal(want, cs.values(), "after DeleteAt(%d)", i)
	}
}

func (cs *ContractSuite) TestInsertDeleteRoundTrip() {
	base := lo.Range(4)
	for i := 1; i <= len(base)+1; i++ {
		cs.s.Clear()
		cs.fill(base...)
		cs.Require().NoError(cs.s.InsertAt(i, 99))
		cs.Equal(mo.Some(99), cs.s.Elem(i))
		cs.Require().NoError(cs.s.DeleteAt(i))
		cs.Equal(base, cs.values(), "round trip at %d", i)
	}
}

func (cs *ContractSuite) TestLocatePriorNext() {
	cs.fill(5, 6, 7, 6)
	cs.Equal(2, cs.s.Locate(6))
	cs.Equal(seq.NotFound, cs.s.Locate(8))
	cs.Equal(mo.Some(5), cs.s.PriorOf(6))
	cs.True(cs.s.PriorOf(5).IsAbsent())
	cs.Equal(mo.Some(7), cs.s.NextOf(6))
	cs.True(cs.s.NextOf(8).IsAbsent())
}

func (cs *ContractSuite) TestClear() {
	cs.fill(1, 2, 3)
	cs.s.Clear()
	cs.True(cs.s.IsEmpty())
	cs.Equal(0, cs.s.Len())
	cs.fill(4)
	cs.Equal([]int{4}, cs.values(), "usable after Clear")
}

func (cs *ContractSuite) TestAllStopsEarly() {
	cs.fill(1, 2, 3, 4)
	var seen []int
	for v := range cs.s.All() {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	cs.Equal([]int{1, 2}, seen)
}
