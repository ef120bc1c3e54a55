package nonmax

import (
	"fmt"
	"log/slog"
)

const none = "None"

// Option is a NonMax that may be absent. It occupies exactly the storage of
// a T: absence is encoded by the bit pattern no NonMax uses.
type Option[T Unsigned] struct {
	raw T
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

// Some returns a present Option holding n.
func Some[T Unsigned](n NonMax[T]) Option[T] {
	return Option[T]{raw: n.raw}
}

// FromRaw decodes a stored bit pattern as produced by Raw.
// Zero decodes to None.
func FromRaw[T Unsigned](raw T) Option[T] {
	return Option[T]{raw: raw}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (NonMax[T], bool) {
	if o.raw == 0 {
		return NonMax[T]{}, false
	}
	return NonMax[T]{raw: o.raw}, true
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.raw != 0
}

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool {
	return o.raw == 0
}

// Or returns the value if present, otherwise def.
func (o Option[T]) Or(def NonMax[T]) NonMax[T] {
	if n, ok := o.Get(); ok {
		return n
	}
	return def
}

// Raw returns the stored bit pattern: zero for None, the value plus one
// otherwise.
func (o Option[T]) Raw() T {
	return o.raw
}

func (o Option[T]) String() string {
	if n, ok := o.Get(); ok {
		return n.String()
	}
	return none
}

// Format implements fmt.Formatter. None renders as "None".
func (o Option[T]) Format(f fmt.State, verb rune) {
	n, ok := o.Get()
	if !ok {
		// Only width and alignment apply to None.
		w, _ := f.Width()
		if f.Flag('-') {
			w = -w
		}
		fmt.Fprintf(f, "%*s", w, none)
		return
	}
	n.Format(f, verb)
}

// LogValue implements slog.LogValuer.
func (o Option[T]) LogValue() slog.Value {
	if n, ok := o.Get(); ok {
		return n.LogValue()
	}
	return slog.StringValue(none)
}
