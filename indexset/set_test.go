package indexset

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hupe1980/index"
	"github.com/hupe1980/index/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(vs ...uint32) []index.U32 {
	out := make([]index.U32, 0, len(vs))
	for _, v := range vs {
		out = append(out, index.New(v))
	}
	return out
}

var cmpIndex = cmp.Comparer(func(a, b index.U32) bool { return a == b })

func TestSetBasic(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, uint64(0), s.Cardinality())

	s.Add(index.New[uint32](5))
	s.Add(index.New[uint32](1))
	s.Add(index.New[uint32](5))

	assert.False(t, s.IsEmpty())
	assert.Equal(t, uint64(2), s.Cardinality())
	assert.True(t, s.Contains(index.New[uint32](1)))
	assert.False(t, s.Contains(index.New[uint32](2)))

	s.Remove(index.New[uint32](1))
	assert.False(t, s.Contains(index.New[uint32](1)))
	assert.Equal(t, uint64(1), s.Cardinality())
}

func TestSetMinMax(t *testing.T) {
	s := New()
	assert.True(t, s.Min().IsNone())
	assert.True(t, s.Max().IsNone())

	s = Of(ids(9, 3, math.MaxUint32-1)...)

	lo, ok := s.Min().Get()
	require.True(t, ok)
	assert.Equal(t, uint32(3), lo.Get())

	hi, ok := s.Max().Get()
	require.True(t, ok)
	assert.Equal(t, index.MaxValue[uint32](), hi)
}

func TestSetAll(t *testing.T) {
	rng := testutil.NewRNG(4711)
	vals := testutil.Sample[uint32](rng, 200)

	s := Of(ids(vals...)...)

	slices.Sort(vals)
	vals = slices.Compact(vals)

	got := slices.Collect(s.All())
	if diff := cmp.Diff(ids(vals...), got, cmpIndex); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestSetAllEarlyStop(t *testing.T) {
	s := Of(ids(1, 2, 3, 4)...)

	var got []index.U32
	for id := range s.All() {
		got = append(got, id)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, ids(1, 2), got)
}

func TestSetAddRange(t *testing.T) {
	s := New()
	s.AddRange(index.New[uint32](10), 0)
	assert.True(t, s.IsEmpty())

	s.AddRange(index.New[uint32](10), 3)
	assert.Equal(t, ids(10, 11, 12), slices.Collect(s.All()))

	s.Clear()
	s.AddRange(index.New[uint32](math.MaxUint32-3), 3)
	assert.Equal(t, uint64(3), s.Cardinality())
	assert.Equal(t, index.Some(index.MaxValue[uint32]()), s.Max())
}

func TestSetAddRangeReachingSentinelPanics(t *testing.T) {
	s := New()
	testutil.RequireTooLarge(t, func() {
		s.AddRange(index.New[uint32](math.MaxUint32-3), 4)
	})
	assert.True(t, s.IsEmpty())
}

func TestSetNth(t *testing.T) {
	s := Of(ids(40, 10, 30)...)

	assert.Equal(t, index.TryNew[uint32](10), s.Nth(0))
	assert.Equal(t, index.TryNew[uint32](30), s.Nth(1))
	assert.Equal(t, index.TryNew[uint32](40), s.Nth(2))
	assert.True(t, s.Nth(3).IsNone())
	assert.True(t, s.Nth(-1).IsNone())
}

func TestSetAlgebra(t *testing.T) {
	a := Of(ids(1, 2, 3)...)
	b := Of(ids(2, 3, 4)...)

	u := a.Clone()
	u.Union(b)
	assert.True(t, u.Equal(Of(ids(1, 2, 3, 4)...)))

	i := a.Clone()
	i.Intersect(b)
	assert.True(t, i.Equal(Of(ids(2, 3)...)))

	// Clones are independent.
	assert.Equal(t, uint64(3), a.Cardinality())
	assert.False(t, a.Equal(b))
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "{}", New().String())
	assert.Equal(t, "{0, 7, 42}", Of(ids(42, 0, 7)...).String())
}

func TestSetRejectsZeroIndex(t *testing.T) {
	s := Of(ids(1, 2)...)

	var zero index.U32
	testutil.RequireTooLarge(t, func() { s.Add(zero) })
	testutil.RequireTooLarge(t, func() { s.Remove(zero) })
	testutil.RequireTooLarge(t, func() { s.Contains(zero) })

	assert.Equal(t, uint64(2), s.Cardinality())
	assert.Equal(t, index.TryNew[uint32](2), s.Max())
	assert.Equal(t, "{1, 2}", s.String())
}
