package index

import (
	"fmt"
	"log/slog"

	"github.com/hupe1980/index/nonmax"
)

// Option is an Index that may be absent. It occupies exactly the storage of
// a T; absence uses the bit pattern no Index can hold.
type Option[T Unsigned] struct {
	o nonmax.Option[T]
}

type (
	Option8    = Option[uint8]
	Option16   = Option[uint16]
	Option32   = Option[uint32]
	Option64   = Option[uint64]
	OptionUint = Option[uint]
)

// None returns an absent Option.
func None[T Unsigned]() Option[T] {
	return Option[T]{}
}

// Some returns a present Option holding i.
func Some[T Unsigned](i Index[T]) Option[T] {
	return Option[T]{o: nonmax.Some(i.n)}
}

// TryNew is the non-panicking form of New: it returns None if v is the
// maximum value of T.
func TryNew[T Unsigned](v T) Option[T] {
	return Option[T]{o: nonmax.New(v)}
}

// FromRaw decodes a stored bit pattern as produced by Raw.
// Zero decodes to None.
func FromRaw[T Unsigned](raw T) Option[T] {
	return Option[T]{o: nonmax.FromRaw(raw)}
}

// Get returns the index and whether it is present.
func (o Option[T]) Get() (Index[T], bool) {
	n, ok := o.o.Get()
	return Index[T]{n: n}, ok
}

// IsSome reports whether an index is present.
func (o Option[T]) IsSome() bool { return o.o.IsSome() }

// IsNone reports whether the index is absent.
func (o Option[T]) IsNone() bool { return o.o.IsNone() }

// Or returns the index if present, otherwise def.
func (o Option[T]) Or(def Index[T]) Index[T] {
	return Index[T]{n: o.o.Or(def.n)}
}

// Raw returns the stored bit pattern: zero for None, the index plus one
// otherwise.
func (o Option[T]) Raw() T { return o.o.Raw() }

func (o Option[T]) String() string { return o.o.String() }

// Format implements fmt.Formatter. None renders as "None".
func (o Option[T]) Format(f fmt.State, verb rune) { o.o.Format(f, verb) }

// LogValue implements slog.LogValuer.
func (o Option[T]) LogValue() slog.Value { return o.o.LogValue() }
