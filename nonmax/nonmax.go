package nonmax

import (
	"cmp"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/hupe1980/index/internal/core"
)

// Unsigned is satisfied by every supported width.
type Unsigned = core.Unsigned

// NonMax is an unsigned integer of width T that is never equal to the
// maximum value of T.
type NonMax[T Unsigned] struct {
	raw T // value + 1, never zero
}

type (
	U8   = NonMax[uint8]
	U16  = NonMax[uint16]
	U32  = NonMax[uint32]
	U64  = NonMax[uint64]
	Uint = NonMax[uint]
)

// New returns v as a NonMax, or None if v is the maximum value of T.
func New[T Unsigned](v T) Option[T] {
	// Max wraps to the zero bit pattern, which is None.
	return Option[T]{raw: v + 1}
}

// MaxValue returns the largest representable NonMax, the maximum of T minus one.
func MaxValue[T Unsigned]() NonMax[T] {
	return NonMax[T]{raw: core.Max[T]()}
}

// Get returns the value.
func (n NonMax[T]) Get() T {
	return n.raw - 1
}

// Raw returns the stored bit pattern, which is the value plus one.
func (n NonMax[T]) Raw() T {
	return n.raw
}

// Compare returns -1, 0 or +1 depending on whether n is less than, equal to
// or greater than o.
// The zero NonMax decodes to the maximum of T and sorts last.
func (n NonMax[T]) Compare(o NonMax[T]) int {
	return cmp.Compare(n.Get(), o.Get())
}

// Less reports whether n < o.
func (n NonMax[T]) Less(o NonMax[T]) bool {
	return n.Get() < o.Get()
}

// String returns the decimal representation of the value.
func (n NonMax[T]) String() string {
	return strconv.FormatUint(uint64(n.Get()), 10)
}

// Format implements fmt.Formatter. Every verb renders the value.
func (n NonMax[T]) Format(f fmt.State, verb rune) {
	core.Format(f, verb, n.Get())
}

// LogValue implements slog.LogValuer.
func (n NonMax[T]) LogValue() slog.Value {
	return slog.Uint64Value(uint64(n.Get()))
}

// Compare orders two values. It is suitable for slices.SortFunc.
func Compare[T Unsigned](a, b NonMax[T]) int {
	return a.Compare(b)
}
