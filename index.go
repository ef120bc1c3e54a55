package index

import (
	"fmt"
	"log/slog"

	"github.com/hupe1980/index/internal/conv"
	"github.com/hupe1980/index/internal/core"
	"github.com/hupe1980/index/nonmax"
)

// Unsigned is satisfied by every supported width.
type Unsigned = core.Unsigned

// Index is a position in [0, Max(T)-1]. It has the memory layout of
// nonmax.NonMax[T].
type Index[T Unsigned] struct {
	n nonmax.NonMax[T]
}

type (
	U8   = Index[uint8]
	U16  = Index[uint16]
	U32  = Index[uint32]
	U64  = Index[uint64]
	Uint = Index[uint]
)

// New returns v as an Index. It panics with ErrIndexTooLarge if v is the
// maximum value of T.
func New[T Unsigned](v T) Index[T] {
	n, ok := nonmax.New(v).Get()
	if !ok {
		panic(tooLarge(nil))
	}
	return Index[T]{n: n}
}

// FromNonMax wraps n. It never panics.
func FromNonMax[T Unsigned](n nonmax.NonMax[T]) Index[T] {
	return Index[T]{n: n}
}

// FromInt converts a native int to an Index. It panics with
// ErrIndexTooLarge if v is negative, does not fit T, or is the maximum
// value of T.
func FromInt[T Unsigned](v int) Index[T] {
	t, err := conv.IntTo[T](v)
	if err != nil {
		panic(tooLarge(err))
	}
	return New(t)
}

// FromUint converts a native uint to an Index. It panics with
// ErrIndexTooLarge if v does not fit T or is the maximum value of T.
func FromUint[T Unsigned](v uint) Index[T] {
	t, err := conv.UintTo[T](v)
	if err != nil {
		panic(tooLarge(err))
	}
	return New(t)
}

// MaxValue returns the largest Index of width T.
func MaxValue[T Unsigned]() Index[T] {
	return Index[T]{n: nonmax.MaxValue[T]()}
}

// Get returns the index as a primitive value.
func (i Index[T]) Get() T {
	return i.n.Get()
}

// NonMax returns the underlying non-max value.
func (i Index[T]) NonMax() nonmax.NonMax[T] {
	return i.n
}

// Int returns the index as a native int. It panics with ErrIndexTooLarge if
// the value does not fit.
func (i Index[T]) Int() int {
	v, err := conv.ToInt(i.Get())
	if err != nil {
		panic(tooLarge(err))
	}
	return v
}

// Uint returns the index as a native uint. It panics with ErrIndexTooLarge
// if the value does not fit, which only happens for 64-bit indexes on
// 32-bit platforms.
func (i Index[T]) Uint() uint {
	v, err := conv.ToUint(i.Get())
	if err != nil {
		panic(tooLarge(err))
	}
	return v
}

// Add returns i + rhs. It panics with ErrIndexTooLarge if the sum reaches
// the maximum value of T or overflows.
func (i Index[T]) Add(rhs T) Index[T] {
	// The stored value is index+1 in [1, Max]. Adding rhs to it either
	// overflows or lands in [1, Max], which is exactly the encoding of a
	// valid sum, so no decode or re-encode is needed.
	// The zero Index holds the reserved bit pattern and is rejected too.
	sum, ok := core.CheckedAdd(i.n.Raw(), rhs)
	if !ok || i.n.Raw() == 0 {
		panic(tooLarge(nil))
	}
	n, _ := nonmax.FromRaw(sum).Get()
	return Index[T]{n: n}
}

// AddAssign sets i to i + rhs. On panic i is left unchanged.
func (i *Index[T]) AddAssign(rhs T) {
	*i = i.Add(rhs)
}

// Compare returns -1, 0 or +1 depending on whether i is less than, equal to
// or greater than o.
func (i Index[T]) Compare(o Index[T]) int {
	return i.n.Compare(o.n)
}

// Less reports whether i < o.
func (i Index[T]) Less(o Index[T]) bool {
	return i.n.Less(o.n)
}

func (i Index[T]) String() string {
	return i.n.String()
}

// Format implements fmt.Formatter. Every verb renders the index value.
func (i Index[T]) Format(f fmt.State, verb rune) {
	i.n.Format(f, verb)
}

// LogValue implements slog.LogValuer.
func (i Index[T]) LogValue() slog.Value {
	return i.n.LogValue()
}

// Compare orders two indexes. It is suitable for slices.SortFunc.
func Compare[T Unsigned](a, b Index[T]) int {
	return a.Compare(b)
}
