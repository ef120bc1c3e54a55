package indexset

import (
	"iter"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/index"
)

// Set is a set of index.U32 values.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		rb: roaring.New(),
	}
}

// Of creates a set holding ids.
func Of(ids ...index.U32) *Set {
	s := New()
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// key returns the bitmap value of id. It panics with
// index.ErrIndexTooLarge for the zero index.U32, whose bits decode to the
// reserved maximum.
func key(id index.U32) uint32 {
	if id.NonMax().Raw() == 0 {
		panic(index.ErrIndexTooLarge)
	}
	return id.Get()
}

// Add adds an index to the set.
func (s *Set) Add(id index.U32) {
	s.rb.Add(key(id))
}

// AddRange adds the n consecutive indexes starting at from. It panics with
// index.ErrIndexTooLarge if the range reaches the reserved maximum.
func (s *Set) AddRange(from index.U32, n uint32) {
	if n == 0 {
		return
	}
	last := from.Add(n - 1)
	s.rb.AddRange(uint64(from.Get()), uint64(last.Get())+1)
}

// Remove removes an index from the set.
func (s *Set) Remove(id index.U32) {
	s.rb.Remove(key(id))
}

// Contains checks if an index is in the set.
func (s *Set) Contains(id index.U32) bool {
	return s.rb.Contains(key(id))
}

// Cardinality returns the number of indexes in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Min returns the smallest index, or None if the set is empty.
func (s *Set) Min() index.Option32 {
	if s.rb.IsEmpty() {
		return index.None[uint32]()
	}
	return index.Some(index.New(s.rb.Minimum()))
}

// Max returns the largest index, or None if the set is empty.
func (s *Set) Max() index.Option32 {
	if s.rb.IsEmpty() {
		return index.None[uint32]()
	}
	return index.Some(index.New(s.rb.Maximum()))
}

// Nth returns the k-th smallest index (0-based), or None if k is out of
// range.
func (s *Set) Nth(k int) index.Option32 {
	if k < 0 || uint64(k) >= s.rb.GetCardinality() {
		return index.None[uint32]()
	}
	v, err := s.rb.Select(uint32(k))
	if err != nil {
		return index.None[uint32]()
	}
	return index.Some(index.New(v))
}

// All returns an iterator over the set in ascending order.
func (s *Set) All() iter.Seq[index.U32] {
	return func(yield func(index.U32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(index.New(it.Next())) {
				return
			}
		}
	}
}

// Union adds every index of other to s.
func (s *Set) Union(other *Set) {
	s.rb.Or(other.rb)
}

// Intersect removes every index of s that is not in other.
func (s *Set) Intersect(other *Set) {
	s.rb.And(other.rb)
}

// Equal reports whether both sets hold the same indexes.
func (s *Set) Equal(other *Set) bool {
	return s.rb.Equals(other.rb)
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// Clear removes all indexes from the set.
func (s *Set) Clear() {
	s.rb.Clear()
}

// String renders the set as {a, b, c}.
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for id := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(id.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
